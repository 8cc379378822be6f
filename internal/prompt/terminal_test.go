package prompt

import (
	"testing"

	"github.com/muesli/termenv"
)

func TestColorProfileHonorsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if got := ColorProfile(); got != termenv.Ascii {
		t.Errorf("ColorProfile() with NO_COLOR = %v, want Ascii", got)
	}
}

func TestColorProfileDumbTerminal(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "dumb")
	if got := ColorProfile(); got != termenv.Ascii {
		t.Errorf("ColorProfile() with TERM=dumb = %v, want Ascii", got)
	}
}

func TestTerminalWidth(t *testing.T) {
	tests := []struct {
		name     string
		setupEnv func(*testing.T)
		minWidth int
		maxWidth int
	}{
		{
			name: "with PROMPTLINE_WIDTH override",
			setupEnv: func(t *testing.T) {
				t.Helper()
				t.Setenv("PROMPTLINE_WIDTH", "120")
			},
			minWidth: 120,
			maxWidth: 120,
		},
		{
			name: "with COLUMNS env var",
			setupEnv: func(t *testing.T) {
				t.Helper()
				t.Setenv("PROMPTLINE_WIDTH", "")
				t.Setenv("COLUMNS", "100")
			},
			minWidth: 100,
			maxWidth: 100,
		},
		{
			name: "no env vars",
			setupEnv: func(t *testing.T) {
				t.Helper()
				t.Setenv("PROMPTLINE_WIDTH", "")
				t.Setenv("COLUMNS", "")
			},
			minWidth: 20,  // whatever the test terminal reports
			maxWidth: 500, // or the 80 fallback
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupEnv(t)

			width := TerminalWidth()
			if width < tt.minWidth || width > tt.maxWidth {
				t.Errorf("Expected width between %d and %d, got %d",
					tt.minWidth, tt.maxWidth, width)
			}
		})
	}
}
