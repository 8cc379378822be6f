//go:build !windows

package main

import (
	"golang.org/x/sys/unix"
)

func notifyParent(pid int) error {
	return unix.Kill(pid, unix.SIGUSR1)
}
