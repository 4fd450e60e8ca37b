// Package debug provides optional file-based debug logging.
//
// When the TILE_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise, logging is a no-op. A
// terminal UI library cannot log to the terminal it is drawing on, so this
// is the only logging surface in the module.
package debug

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	once sync.Once
	out  *os.File
)

// Logf appends a formatted message to the debug file, if one is
// configured.
func Logf(format string, args ...any) {
	once.Do(open)
	if out == nil {
		return
	}

	fmt.Fprintf(out, "%s %s\n", time.Now().Format("15:04:05.000"), fmt.Sprintf(format, args...))
}

func open() {
	path := os.Getenv("TILE_DEBUG")
	if path == "" {
		return
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	out = f
}
