package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	once sync.Once
	base *slog.Logger
)

// Init configures the global JSON logger exactly once: stdout plus a
// size-rotated file. Call from main before anything logs.
func Init(component, filePath string) *slog.Logger {
	once.Do(func() {
		_ = os.MkdirAll(filepath.Dir(filePath), 0o755)

		rot := &lumberjack.Logger{
			Filename:   filePath,
			MaxSize:    50, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
		}
		mw := io.MultiWriter(os.Stdout, rot)

		h := slog.NewJSONHandler(mw, &slog.HandlerOptions{Level: slog.LevelInfo})
		base = slog.New(h).With("component", component)
	})
	return base
}

func Base() *slog.Logger {
	if base == nil {
		return Init("cafe", "./logs/app.log")
	}
	return base
}

// New returns a child logger that shares the global handler.
func New(component string) *slog.Logger {
	return Base().With("component", component)
}
