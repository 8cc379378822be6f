//go:build windows

package scheduler

import (
	"errors"
	"os"
)

// Windows has no SIGUSR1; Choose never selects MethodSignal there. These
// stubs keep the package compiling.

func notifySignal(_ chan os.Signal) {}

func stopSignal(_ chan os.Signal) {}

func signalOwned() bool { return false }

type execLauncher struct{}

// NewDefaultLauncher returns a Launcher that always fails to spawn.
func NewDefaultLauncher() Launcher { return &execLauncher{} }

func (l *execLauncher) Spawn(_ string, _ int, _ string) (int, error) {
	return 0, errors.New("signal workers are not supported on windows")
}

func (l *execLauncher) Terminate(_ int) error { return nil }
