package prompt

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

func TestBuilderDirectives(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		exitCode int
		mode     Mode
		expected string
	}{
		{
			name:     "path only, clean exit, insert mode",
			state:    State{PathDisplay: "~/src"},
			exitCode: 0,
			mode:     ModeInsert,
			expected: "%F{path}~/src%f % ",
		},
		{
			name:     "branch status shown in parens",
			state:    State{PathDisplay: "~", BranchStatus: "main ✹"},
			exitCode: 0,
			mode:     ModeInsert,
			expected: "%F{path}~%f %F{branch}(main ✹)%f % ",
		},
		{
			name:     "non-zero exit code rendered in parens",
			state:    State{PathDisplay: "~"},
			exitCode: 130,
			mode:     ModeInsert,
			expected: "%F{path}~%f %F{status}(130)%f % ",
		},
		{
			name:     "command mode swaps indicator",
			state:    State{PathDisplay: "~"},
			exitCode: 0,
			mode:     ModeCommand,
			expected: "%F{path}~%f : ",
		},
		{
			name:     "host suffix leads the prompt",
			state:    State{HostSuffix: "u@box", PathDisplay: "~"},
			exitCode: 0,
			mode:     ModeInsert,
			expected: "%F{host}u@box%f %F{path}~%f % ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := tt.state
			b := NewBuilder(&state)
			b.PromptChar = "%"
			got := b.Directives(tt.exitCode, tt.mode)
			if got != tt.expected {
				t.Errorf("Directives() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestBuilderMultiline(t *testing.T) {
	state := &State{PathDisplay: "~/src", BranchStatus: "main"}
	b := NewBuilder(state)
	b.Multiline = true
	b.PromptChar = "$"

	got := b.Directives(0, ModeInsert)
	if !strings.Contains(got, "\n") {
		t.Errorf("multiline prompt missing newline: %q", got)
	}
	if !strings.HasSuffix(got, "\n$ ") {
		t.Errorf("input line should be just the indicator: %q", got)
	}
}

func TestBuilderRenderAsciiStripsColors(t *testing.T) {
	state := &State{HostSuffix: "u@box", PathDisplay: "~/a/b", BranchStatus: "main ✭"}
	b := NewBuilder(state)
	b.PromptChar = "%"

	got := b.Render(1, ModeInsert, termenv.Ascii)
	want := "u@box ~/a/b (main ✭) (1) % "
	if got != want {
		t.Errorf("Render(ascii) = %q, want %q", got, want)
	}
}

func TestBuilderRenderColorExpandsDirectives(t *testing.T) {
	state := &State{PathDisplay: "~"}
	b := NewBuilder(state)
	b.PromptChar = "%"

	got := b.Render(0, ModeInsert, termenv.TrueColor)
	if strings.Contains(got, "%F{") {
		t.Errorf("color render left directives: %q", got)
	}
	if !strings.Contains(got, termenv.CSI) {
		t.Errorf("color render produced no escapes: %q", got)
	}
	// Stripping the ANSI output of an expansion and stripping the
	// directive form must agree on the literal characters.
	if StripColors(b.Directives(0, ModeInsert)) != "~ % " {
		t.Errorf("literal characters drifted: %q", StripColors(b.Directives(0, ModeInsert)))
	}
}

func TestBuilderTruncatesLongBranch(t *testing.T) {
	state := &State{
		PathDisplay:  "~",
		BranchStatus: strings.Repeat("verylongbranch/", 5),
	}
	b := NewBuilder(state)
	got := b.Render(0, ModeInsert, termenv.Ascii)
	if !strings.Contains(got, "…") {
		t.Errorf("expected ellipsis in truncated branch: %q", got)
	}
}

func TestBuilderWidthScalesTruncation(t *testing.T) {
	path := "~/src/some/unusually/deep/project/tree"
	state := &State{PathDisplay: path}
	b := NewBuilder(state)

	b.Width = 120
	if got := b.Render(0, ModeInsert, termenv.Ascii); !strings.Contains(got, path) {
		t.Errorf("wide terminal should keep the full path, got %q", got)
	}

	b.Width = 40
	got := b.Render(0, ModeInsert, termenv.Ascii)
	if strings.Contains(got, path) {
		t.Errorf("narrow terminal should truncate the path, got %q", got)
	}
	if !strings.Contains(got, "…") {
		t.Errorf("expected ellipsis at narrow width: %q", got)
	}
}

func TestSegmentCaps(t *testing.T) {
	tests := []struct {
		name      string
		width     int
		pathMax   int
		branchMax int
	}{
		{name: "default when unset", width: 0, pathMax: 40, branchMax: 32},
		{name: "scales up", width: 200, pathMax: 100, branchMax: 80},
		{name: "floors at minimum", width: 12, pathMax: 10, branchMax: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pathMax, branchMax := segmentCaps(tt.width)
			if pathMax != tt.pathMax || branchMax != tt.branchMax {
				t.Errorf("segmentCaps(%d) = (%d, %d), want (%d, %d)",
					tt.width, pathMax, branchMax, tt.pathMax, tt.branchMax)
			}
		})
	}
}

func TestIndicator(t *testing.T) {
	if got := Indicator(ModeCommand, "%"); got != ":" {
		t.Errorf("Indicator(command) = %q, want %q", got, ":")
	}
	if got := Indicator(ModeInsert, "$"); got != "$" {
		t.Errorf("Indicator(insert, $) = %q, want %q", got, "$")
	}
	if got := Indicator(ModeInsert, ""); got != "%" {
		t.Errorf("Indicator(insert, empty) = %q, want %q", got, "%")
	}
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"command", "normal", "vicmd"} {
		if ParseMode(s) != ModeCommand {
			t.Errorf("ParseMode(%q) should be command mode", s)
		}
	}
	for _, s := range []string{"insert", "", "viins"} {
		if ParseMode(s) != ModeInsert {
			t.Errorf("ParseMode(%q) should be insert mode", s)
		}
	}
}

func TestStateReset(t *testing.T) {
	s := &State{HostSuffix: "a", PathDisplay: "b", BranchStatus: "c"}
	s.Reset()
	if s.HostSuffix != "" || s.PathDisplay != "" || s.BranchStatus != "" {
		t.Errorf("Reset left state populated: %+v", s)
	}
}
