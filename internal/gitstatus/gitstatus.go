// Package gitstatus probes the git CLI for the branch name and a coarse
// dirty/ahead/behind summary used in the prompt.
package gitstatus

import (
	"context"
	"strings"
	"time"
)

// notARepoExit is git's exit code when run outside a repository.
const notARepoExit = 128

// gitTimeout bounds every git invocation so a slow repository can only delay
// the status, never hang the caller.
const gitTimeout = 2 * time.Second

// statusSymbols maps substrings of `git status` output to prompt symbols.
// The table is ordered; matched symbols are concatenated in table order so
// the result is deterministic for a given status text.
var statusSymbols = []struct {
	needle string
	symbol string
}{
	{"renamed:", "▸"},
	{"Your branch is ahead of", "⬆"},
	{"new file:", "✚"},
	{"Untracked files", "✭"},
	{"deleted:", "✖"},
	{"modified:", "✹"},
	{"Your branch is behind", "⬇"},
	{"have diverged", "⬍"},
}

// Prober queries git for prompt-relevant repository state.
type Prober struct {
	deps *Dependencies
}

// New creates a Prober. A nil deps gets production dependencies.
func New(deps *Dependencies) *Prober {
	if deps == nil {
		deps = NewDefaultDependencies()
	}
	return &Prober{deps: deps}
}

// Branch returns the current branch name, a short commit hash when HEAD is
// detached, or "" when dir is not inside a git repository.
func (p *Prober) Branch(ctx context.Context, dir string) string {
	output, err := p.deps.Runner.OutputContext(ctx, dir, "git", "symbolic-ref", "--quiet", "HEAD")
	if err == nil {
		ref := strings.TrimSpace(string(output))
		return strings.TrimPrefix(ref, "refs/heads/")
	}
	if exitCode(err) == notARepoExit {
		return ""
	}

	// Detached HEAD: symbolic-ref fails without the not-a-repository code.
	output, err = p.deps.Runner.OutputContext(ctx, dir, "git", "rev-parse", "--short", "HEAD")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(output))
}

// Symbols returns the concatenated change symbols for dir, or "" for a clean
// tree or a directory outside any repository.
func (p *Prober) Symbols(ctx context.Context, dir string) string {
	output, err := p.deps.Runner.OutputContext(ctx, dir, "git", "status")
	if err != nil {
		return ""
	}

	text := string(output)
	var sb strings.Builder
	for _, entry := range statusSymbols {
		if strings.Contains(text, entry.needle) {
			sb.WriteString(entry.symbol)
		}
	}
	return sb.String()
}

// Status composes the full branch-status string for the prompt: the branch
// label followed by any change symbols, or "" outside a repository.
func (p *Prober) Status(ctx context.Context, dir string) string {
	ctx, cancel := context.WithTimeout(ctx, gitTimeout)
	defer cancel()

	branch := p.Branch(ctx, dir)
	if branch == "" {
		return ""
	}

	symbols := p.Symbols(ctx, dir)
	if symbols == "" {
		return branch
	}
	return branch + " " + symbols
}
