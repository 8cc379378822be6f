//go:build windows

package main

import "errors"

func notifyParent(_ int) error {
	return errors.New("signal notification is not supported on windows")
}
