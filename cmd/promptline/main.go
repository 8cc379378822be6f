// Package main implements the promptline CLI: it renders the prompt for
// one pre-display cycle and prints it to stdout.
package main

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/Veraticus/promptline/internal/config"
	"github.com/Veraticus/promptline/internal/gitstatus"
	"github.com/Veraticus/promptline/internal/prompt"
	"github.com/Veraticus/promptline/internal/scheduler"
	"github.com/Veraticus/promptline/internal/shared"
)

func main() {
	var (
		exitCode = pflag.Int("status", 0, "exit code of the last command")
		modeName = pflag.String("mode", "insert", "line editor mode: insert or command")
		dirFlag  = pflag.String("dir", "", "directory to render for (default: cwd)")
		noColor  = pflag.Bool("no-color", false, "disable color output")
		debug    = pflag.Bool("debug", false, "print diagnostics to stderr")
	)
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "promptline: %v\n", err)
		cfg = &config.Config{}
	}
	if *debug {
		cfg.Debug = true
	}
	debugf := func(format string, args ...any) {
		if cfg.Debug {
			fmt.Fprintln(os.Stderr, shared.DebugStyle.Render(fmt.Sprintf(format, args...)))
		}
	}

	dir := *dirFlag
	if dir == "" {
		if dir, err = os.Getwd(); err != nil {
			dir = "."
		}
	}
	home, _ := os.UserHomeDir()

	state := &prompt.State{}
	state.Reset()
	state.PathDisplay = prompt.AbbreviatePath(dir, home, cfg.Prompt.PathSegments)
	state.HostSuffix = hostSuffix()
	state.BranchStatus = branchStatus(cfg, dir, debugf)

	builder := prompt.NewBuilder(state)
	builder.Roles = rolesFromConfig(cfg)
	builder.Multiline = cfg.Prompt.Multiline
	builder.PromptChar = cfg.Prompt.Char
	builder.Width = prompt.TerminalWidth()

	profile := prompt.ColorProfile()
	if *noColor {
		profile = termenv.Ascii
	}

	//nolint:forbidigo // The prompt must go to stdout.
	fmt.Print(builder.Render(*exitCode, prompt.ParseMode(*modeName), profile))
}

// branchStatus resolves the git slot. A one-shot render has no dispatch
// turn to host the worker strategy, so the choice is between synchronous
// probing and the signal strategy's handoff file: show the last worker's
// result immediately and spawn a fresh worker for the next cycle.
func branchStatus(cfg *config.Config, dir string, debugf func(string, ...any)) string {
	probe := scheduler.ProbeEnvironment(cfg.Async.Method, nil)
	probe.WorkerAvailable = false
	method := scheduler.Choose(probe)
	debugf("async method: %s", method)

	prober := gitstatus.New(nil)
	if method != scheduler.MethodSignal {
		return prober.Status(context.Background(), dir)
	}

	// Keyed by the shell's pid so consecutive renders in one session
	// share the handoff and supersede each other's workers.
	handoff := scheduler.HandoffPath(os.Getppid())
	cached, err := scheduler.RefreshDetached(scheduler.NewDefaultLauncher(), dir, handoff)
	if err != nil {
		debugf("refresh status: %v", err)
		if cached == "" {
			// No worker and no cached result; at least this cycle is correct.
			return prober.Status(context.Background(), dir)
		}
	}
	return cached
}

// hostSuffix is user@host when the session is remote or running as root,
// empty otherwise.
func hostSuffix() string {
	if os.Getenv("SSH_CONNECTION") == "" && os.Getenv("SSH_TTY") == "" && os.Geteuid() != 0 {
		return ""
	}
	name := os.Getenv("USER")
	if name == "" {
		if u, err := user.Current(); err == nil {
			name = u.Username
		}
	}
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	host, _, _ = strings.Cut(host, ".")
	return name + "@" + host
}

func rolesFromConfig(cfg *config.Config) map[string]lipgloss.Color {
	roles := shared.DefaultRoles()
	overrides := map[string]string{
		shared.RoleStatus: cfg.Colors.Status,
		shared.RoleHost:   cfg.Colors.Host,
		shared.RolePath:   cfg.Colors.Path,
		shared.RoleBranch: cfg.Colors.Branch,
	}
	for role, value := range overrides {
		if value != "" {
			roles[role] = lipgloss.Color(value)
		}
	}
	return roles
}
