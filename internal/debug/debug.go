// Package debug provides timestamped diagnostic output on stderr, enabled
// with the global --debug flag.
package debug

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.RWMutex
	enabled bool
	noColor bool
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[90m"
)

// SetDebug enables or disables debug mode.
func SetDebug(enable bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = enable
}

// SetNoColor disables colored debug output.
func SetNoColor(disable bool) {
	mu.Lock()
	defer mu.Unlock()
	noColor = disable
}

// IsEnabled returns whether debug mode is enabled.
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

func useColor() bool {
	mu.RLock()
	defer mu.RUnlock()
	return !noColor
}

// Debug prints a debug message with timestamp.
func Debug(format string, args ...interface{}) {
	if !IsEnabled() {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)

	if useColor() {
		fmt.Fprintf(os.Stderr, "%s[DEBUG]%s %s%s%s %s\n",
			colorCyan, colorReset, colorGray, timestamp, colorReset, msg)
	} else {
		fmt.Fprintf(os.Stderr, "[DEBUG] %s %s\n", timestamp, msg)
	}
}

// DebugSection prints a section header for debug output.
func DebugSection(section string) {
	Debug("=== %s ===", section)
}

// DebugValue prints key=value style debug info.
func DebugValue(key string, value interface{}) {
	Debug("%s = %v", key, value)
}
