package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "OVERLAY_DEBUG"

var (
	mu      sync.Mutex
	logFile *os.File
	logger  = zerolog.Nop()
	envOnce sync.Once
)

// Init directs debug logging to the file at path, creating parent
// directories as needed. The file is opened for append.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		return fmt.Errorf("debug log path is empty")
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	closeLocked()
	logFile = f
	logger = newLogger(f, zerolog.DebugLevel)
	return nil
}

// SetOutput sends debug logs to w at the given level. A console writer is
// used when human is true.
func SetOutput(w io.Writer, level zerolog.Level, human bool) {
	// Settle the env lookup before taking mu; Logger takes them in this order.
	envOnce.Do(func() {})

	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	if human {
		console := zerolog.NewConsoleWriter()
		console.Out = w
		console.TimeFormat = time.RFC3339
		w = console
	}
	logger = newLogger(w, level)
}

// Logger returns the shared debug logger. On first use it honours
// OVERLAY_DEBUG; without it the logger discards everything.
func Logger() zerolog.Logger {
	envOnce.Do(func() {
		path := os.Getenv(EnvVar)
		if path == "" {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		_ = initLocked(path)
	})

	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Close closes the debug log file, if any, and silences logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	logger = zerolog.Nop()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
