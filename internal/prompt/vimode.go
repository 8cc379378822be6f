package prompt

// Mode is the line editor's input mode.
type Mode int

const (
	// ModeInsert is the regular typing mode.
	ModeInsert Mode = iota
	// ModeCommand is vi normal/command mode.
	ModeCommand
)

// ParseMode maps the string form used on the CLI to a Mode. Anything that
// is not a command-mode spelling counts as insert.
func ParseMode(s string) Mode {
	switch s {
	case "command", "normal", "vicmd":
		return ModeCommand
	}
	return ModeInsert
}

// Indicator returns the prompt character for the given mode: ":" in
// command mode, the configured default otherwise. It is evaluated on every
// keymap change so the prompt can be redrawn immediately.
func Indicator(mode Mode, promptChar string) string {
	if mode == ModeCommand {
		return ":"
	}
	if promptChar == "" {
		return "%"
	}
	return promptChar
}
