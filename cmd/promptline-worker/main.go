// Package main implements the detached status worker for the signal-based
// async strategy: compute git status, publish it to the handoff file, then
// poke the parent.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/Veraticus/promptline/internal/gitstatus"
	"github.com/Veraticus/promptline/internal/scheduler"
)

func main() {
	var (
		dir     = pflag.String("dir", ".", "directory to compute status for")
		notify  = pflag.Int("notify", 0, "pid to signal on completion (0 to skip)")
		out     = pflag.String("out", "", "handoff file to write the status to")
		timeout = pflag.Duration("timeout", 10*time.Second, "overall git timeout")
	)
	pflag.Parse()

	if *out == "" {
		fmt.Fprintln(os.Stderr, "promptline-worker: --out is required")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	status := gitstatus.New(nil).Status(ctx, *dir)

	if err := scheduler.WriteHandoff(*out, status); err != nil {
		fmt.Fprintf(os.Stderr, "promptline-worker: %v\n", err)
		os.Exit(1)
	}

	if *notify > 0 {
		// Best-effort: the parent may be gone already.
		_ = notifyParent(*notify)
	}
}
