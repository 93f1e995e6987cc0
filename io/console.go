package io

import (
	"os"

	"golang.org/x/term"
)

// RawInput puts a terminal into raw mode, so that serial reads see each
// keystroke as it is typed instead of a line at a time. Files that are not
// terminals are left untouched. The returned restore function is always
// safe to call.
func RawInput(file *os.File) (restore func() error, err error) {
	restore = func() error { return nil }

	fd := int(file.Fd())
	if !term.IsTerminal(fd) {
		return
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return
	}

	restore = func() error {
		return term.Restore(fd, state)
	}

	return
}
