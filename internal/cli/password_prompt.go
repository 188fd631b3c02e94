package cli

import (
	"errors"
	"os"

	"golang.org/x/term"
)

// readPasswordNoEcho reads one line from the terminal with echo disabled.
func readPasswordNoEcho(stdin *os.File) ([]byte, error) {
	if stdin == nil {
		return nil, errors.New("stdin unavailable")
	}
	return term.ReadPassword(int(stdin.Fd()))
}
