package util

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	debugOut     io.Writer
	debugEnabled bool
	debugMu      sync.RWMutex
)

// ConfigureDebug enables or disables debug output and sets its destination.
// A nil writer means stderr.
func ConfigureDebug(enabled bool, w io.Writer) {
	debugMu.Lock()
	defer debugMu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	debugEnabled = enabled
	debugOut = w
}

// DebugEnabled reports whether debug output is on.
func DebugEnabled() bool {
	debugMu.RLock()
	defer debugMu.RUnlock()
	return debugEnabled
}

// Debugf writes a timestamped debug line when debugging is enabled
func Debugf(format string, args ...any) {
	debugMu.RLock()
	enabled, w := debugEnabled, debugOut
	debugMu.RUnlock()

	if !enabled || w == nil {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(w, "[%s] %s\n", timestamp, fmt.Sprintf(format, args...))
}
