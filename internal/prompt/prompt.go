package prompt

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/Veraticus/promptline/internal/shared"
)

// Builder assembles the prompt template from state and layout options.
// Width is the terminal's column count; zero means the default width.
type Builder struct {
	State      *State
	Roles      map[string]lipgloss.Color
	Multiline  bool
	PromptChar string
	Width      int
}

// NewBuilder creates a Builder over state with the default palette.
func NewBuilder(state *State) *Builder {
	return &Builder{
		State: state,
		Roles: shared.DefaultRoles(),
	}
}

// Template returns the prompt's segment sequence. Host, path and branch
// placeholders read State; exit code and vi mode are resolved synchronously
// at render time.
func (b *Builder) Template() *Template {
	t := &Template{}
	t.AppendSlot(SlotHost)
	t.AppendSlot(SlotPath)
	t.AppendSlot(SlotBranch)
	t.AppendSlot(SlotExitCode)
	if b.Multiline {
		t.Append("\n")
	} else {
		t.Append(" ")
	}
	t.AppendSlot(SlotViMode)
	t.Append(" ")
	return t
}

// Directives renders the template to its directive form, colors still
// symbolic. Exit code and mode are read here, never cached.
func (b *Builder) Directives(exitCode int, mode Mode) string {
	pathMax, branchMax := segmentCaps(b.Width)
	return b.Template().Render(func(slot string) string {
		switch slot {
		case SlotHost:
			if b.State.HostSuffix == "" {
				return ""
			}
			return "%F{" + shared.RoleHost + "}" + b.State.HostSuffix + "%f "
		case SlotPath:
			return "%F{" + shared.RolePath + "}" + truncateText(b.State.PathDisplay, pathMax) + "%f"
		case SlotBranch:
			if b.State.BranchStatus == "" {
				return ""
			}
			return " %F{" + shared.RoleBranch + "}(" + truncateText(b.State.BranchStatus, branchMax) + ")%f"
		case SlotExitCode:
			if exitCode == 0 {
				return ""
			}
			return " %F{" + shared.RoleStatus + "}(" + strconv.Itoa(exitCode) + ")%f"
		case SlotViMode:
			return Indicator(mode, b.PromptChar)
		}
		return ""
	})
}

// Render produces the final prompt string: directives expanded to ANSI when
// the profile supports color, stripped otherwise.
func (b *Builder) Render(exitCode int, mode Mode, profile termenv.Profile) string {
	s := b.Directives(exitCode, mode)
	if profile == termenv.Ascii {
		return StripColors(s)
	}
	return Expand(s, b.Roles, profile)
}
