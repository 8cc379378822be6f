package scheduler

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// HandoffPath returns the per-session temp file a detached worker writes
// its status into. Keyed by the prompt process's pid; overwritten each
// cycle and left behind at session end.
func HandoffPath(pid int) string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("promptline-status-%d", pid))
}

// WriteHandoff writes the status atomically: a rename means the reader
// never sees a half-written file.
func WriteHandoff(path, status string) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(status+"\n"), 0o600); err != nil {
		return fmt.Errorf("write handoff: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("publish handoff: %w", err)
	}
	return nil
}

// RefreshDetached runs one signal-strategy cycle for a process with no
// dispatch loop of its own: return the previous cycle's status, terminate
// the superseded worker recorded beside the handoff, spawn a fresh one,
// and record its pid so the next invocation can supersede it. At most one
// worker stays outstanding per handoff file.
func RefreshDetached(launcher Launcher, dir, handoff string) (string, error) {
	cached := ReadHandoff(handoff)
	pidPath := handoff + ".pid"
	if prev := readWorkerPid(pidPath); prev != 0 {
		_ = launcher.Terminate(prev)
	}
	pid, err := launcher.Spawn(dir, 0, handoff)
	if err != nil {
		return cached, fmt.Errorf("spawn worker: %w", err)
	}
	if err := os.WriteFile(pidPath, []byte(strconv.Itoa(pid)+"\n"), 0o600); err != nil {
		return cached, fmt.Errorf("record worker pid: %w", err)
	}
	return cached, nil
}

func readWorkerPid(path string) int {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(content)))
	if err != nil || pid <= 0 {
		return 0
	}
	return pid
}

// ReadHandoff returns the first line of the handoff file, or "" if the
// file is unreadable. A missing file is the race between notification and
// write, and is not an error.
func ReadHandoff(path string) string {
	content, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	line, _, _ := strings.Cut(string(content), "\n")
	return line
}
