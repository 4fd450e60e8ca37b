//go:build unix

package tile

import (
	"golang.org/x/sys/unix"
)

// getTerminalSize returns the terminal dimensions for the given output fd.
func getTerminalSize(fd int) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
