package prompt

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// A Template is an ordered sequence of literal segments and named
// placeholders. Placeholders are resolved at render time from a lookup
// function, so slow slots (branch status) can be fed from cached state
// while exit code and vi mode stay synchronous.
type Template struct {
	parts []part
}

type part struct {
	slot    string // non-empty for placeholders
	literal string
}

// Slot names understood by the builder.
const (
	SlotHost     = "host"
	SlotPath     = "path"
	SlotBranch   = "branch"
	SlotExitCode = "exitcode"
	SlotViMode   = "vimode"
)

// Append adds a literal segment.
func (t *Template) Append(literal string) {
	t.parts = append(t.parts, part{literal: literal})
}

// AppendSlot adds a named placeholder.
func (t *Template) AppendSlot(name string) {
	t.parts = append(t.parts, part{slot: name})
}

// Render resolves every placeholder through lookup and concatenates the
// result. The output may still contain color directives; pass it through
// Expand or StripColors depending on terminal capability.
func (t *Template) Render(lookup func(slot string) string) string {
	var sb strings.Builder
	for _, p := range t.parts {
		if p.slot != "" {
			sb.WriteString(lookup(p.slot))
			continue
		}
		sb.WriteString(p.literal)
	}
	return sb.String()
}

// Color directives embedded in rendered templates:
//
//	%F{name}  open foreground color (name is a role or hex color)
//	%K{name}  open background color
//	%f  %k    reset foreground / background
//
// Names are resolved through a role map; anything not in the map is treated
// as a literal color value.

// Expand replaces color directives with ANSI sequences for the given
// termenv profile. Directives with names missing from roles fall through to
// the raw value so hex colors work without registration. An Ascii profile
// has no sequences to emit, so expansion degenerates to stripping.
func Expand(s string, roles map[string]lipgloss.Color, profile termenv.Profile) string {
	if profile == termenv.Ascii {
		return StripColors(s)
	}
	var sb strings.Builder
	i := 0
	for i < len(s) {
		kind, name, next, ok := scanDirective(s, i)
		if !ok {
			sb.WriteByte(s[i])
			i++
			continue
		}
		switch kind {
		case 'F', 'K':
			value := name
			if c, found := roles[name]; found {
				value = string(c)
			}
			color := profile.Color(value)
			if color != nil {
				sb.WriteString(termenv.CSI + color.Sequence(kind == 'K') + "m")
			}
		case 'f':
			sb.WriteString(termenv.CSI + "39m")
		case 'k':
			sb.WriteString(termenv.CSI + "49m")
		}
		i = next
	}
	return sb.String()
}

// StripColors removes all color directives, leaving literal characters in
// their original order. Unbalanced braces discard the remainder of the
// input rather than looping. Removing a span can splice a literal "%"
// against a following "f", forming a fresh directive, so the scan repeats
// until the string stops changing; stripping is therefore idempotent.
func StripColors(s string) string {
	for {
		stripped := stripColorPass(s)
		if stripped == s {
			return stripped
		}
		s = stripped
	}
}

func stripColorPass(s string) string {
	var sb strings.Builder
	i := 0
	for i < len(s) {
		_, _, next, ok := scanDirective(s, i)
		if ok {
			i = next
			continue
		}
		sb.WriteByte(s[i])
		i++
	}
	return sb.String()
}

// scanDirective tries to read a color directive starting at i. It returns
// the directive kind ('F', 'K', 'f' or 'k'), the brace-enclosed name for
// open directives, and the index just past the directive. For an open
// directive whose closing brace is missing, next is len(s): the remainder
// is consumed silently.
func scanDirective(s string, i int) (kind byte, name string, next int, ok bool) {
	if s[i] != '%' || i+1 >= len(s) {
		return 0, "", 0, false
	}
	switch s[i+1] {
	case 'f', 'k':
		return s[i+1], "", i + 2, true
	case 'F', 'K':
		if i+2 >= len(s) || s[i+2] != '{' {
			return 0, "", 0, false
		}
		depth := 1
		j := i + 3
		for j < len(s) && depth > 0 {
			switch s[j] {
			case '{':
				depth++
			case '}':
				depth--
			}
			j++
		}
		if depth > 0 {
			// End of input inside the directive.
			return s[i+1], s[i+3:], len(s), true
		}
		return s[i+1], s[i+3 : j-1], j, true
	}
	return 0, "", 0, false
}
