package core

import (
	"os"
	"sync"

	"github.com/hashicorp/go-hclog"
)

var (
	defaultLoggerMu sync.RWMutex
	defaultLogger   = hclog.New(&hclog.LoggerOptions{
		Name:  "logicform",
		Level: hclog.Warn,
		Output: os.Stderr,
	})
)

// SetLogger replaces the package-wide default logger. It exists for hosting
// applications to redirect or silence logging; the kernel itself never
// mutates global state during a simplification run (see §9's "Global
// mutable state" note) — this is configuration, not working state.
func SetLogger(l hclog.Logger) {
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	defaultLogger = l
}

// Logger returns a named child of the current default logger. Each call
// reads the default at that moment; simplify.Simplify calls it once per
// run, so a SetLogger call affects every later run.
func Logger(name string) hclog.Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger.Named(name)
}
