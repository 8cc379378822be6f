// Package prompt renders the shell prompt string: abbreviated path, host
// suffix, branch status, exit code and vi-mode indicator.
package prompt

// State holds the three variable prompt slots. It is reset at the start of
// each pre-display cycle and repopulated by the path abbreviator and the
// status scheduler; the renderer only reads it.
type State struct {
	HostSuffix   string
	PathDisplay  string
	BranchStatus string
}

// Reset empties all slots ahead of recomputation.
func (s *State) Reset() {
	s.HostSuffix = ""
	s.PathDisplay = ""
	s.BranchStatus = ""
}
