//go:build !windows

package scheduler

import (
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"syscall"

	"golang.org/x/sys/unix"
)

// notifySignal subscribes ch to the worker-completion signal.
func notifySignal(ch chan os.Signal) {
	signal.Notify(ch, unix.SIGUSR1)
}

// stopSignal releases the subscription.
func stopSignal(ch chan os.Signal) {
	signal.Stop(ch)
}

// signalOwned reports whether SIGUSR1 delivery still reaches us. If
// surrounding code has set the signal to ignored, our workers would signal
// into the void.
func signalOwned() bool {
	return !signal.Ignored(unix.SIGUSR1)
}

// execLauncher spawns promptline-worker as a detached process.
type execLauncher struct {
	workerPath string
}

// NewDefaultLauncher locates the worker binary: the PROMPTLINE_WORKER
// override first, then a sibling of the current executable, then PATH
// lookup.
func NewDefaultLauncher() Launcher {
	if path := os.Getenv("PROMPTLINE_WORKER"); path != "" {
		return &execLauncher{workerPath: path}
	}
	path := "promptline-worker"
	if exe, err := os.Executable(); err == nil {
		sibling := exe + "-worker"
		if _, statErr := os.Stat(sibling); statErr == nil {
			path = sibling
		}
	}
	return &execLauncher{workerPath: path}
}

func (l *execLauncher) Spawn(dir string, notifyPid int, handoff string) (int, error) {
	cmd := exec.Command(l.workerPath,
		"--dir", dir,
		"--notify", strconv.Itoa(notifyPid),
		"--out", handoff,
	)
	// New session: the worker must survive redraw churn and never hold
	// the terminal.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("start worker: %w", err)
	}
	pid := cmd.Process.Pid
	// Reap in the background so superseded workers don't linger as
	// zombies.
	go func() { _ = cmd.Wait() }()
	return pid, nil
}

func (l *execLauncher) Terminate(pid int) error {
	if err := unix.Kill(pid, unix.SIGTERM); err != nil {
		return fmt.Errorf("terminate worker %d: %w", pid, err)
	}
	return nil
}
