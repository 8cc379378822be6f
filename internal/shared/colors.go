// Package shared provides color definitions shared by all promptline commands.
package shared

import (
	"github.com/charmbracelet/lipgloss"
)

// Standard color definitions.
var (
	Red    = lipgloss.Color("#f38ba8")
	Green  = lipgloss.Color("#a6e3a1")
	Yellow = lipgloss.Color("#f9e2af")
	Blue   = lipgloss.Color("#89dceb")
	Cyan   = lipgloss.Color("#94e2d5")
)

// Catppuccin Mocha colors for prompt segments.
var (
	Lavender  = lipgloss.Color("#b4befe")
	Mauve     = lipgloss.Color("#cba6f7")
	Rosewater = lipgloss.Color("#f5e0dc")
	Sky       = lipgloss.Color("#89dceb")
	Peach     = lipgloss.Color("#fab387")
	Teal      = lipgloss.Color("#94e2d5")
	Base      = lipgloss.Color("#1e1e2e")
)

// Semantic role names used in color directives. The prompt builder emits
// directives like %F{path}; the renderer resolves them through DefaultRoles
// (or a config-overridden copy).
const (
	RoleStatus = "status"
	RoleHost   = "host"
	RolePath   = "path"
	RoleBranch = "branch"
)

// DefaultRoles maps the four semantic prompt roles to their default colors.
func DefaultRoles() map[string]lipgloss.Color {
	return map[string]lipgloss.Color{
		RoleStatus: Red,
		RoleHost:   Peach,
		RolePath:   Sky,
		RoleBranch: Green,
	}
}

// Styles for diagnostic output on stderr.
var (
	ErrorStyle   = lipgloss.NewStyle().Foreground(Red)
	WarningStyle = lipgloss.NewStyle().Foreground(Yellow)
	DebugStyle   = lipgloss.NewStyle().Foreground(Cyan)
)
