package main

import "errors"

var errInteractiveUnavailable = errors.New("interactive mode is not available; pass a source file to run")

// runREPL is where the CLI lands when no source file is given.
func runREPL() error {
	return errInteractiveUnavailable
}
