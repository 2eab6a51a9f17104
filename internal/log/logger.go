// Package log wraps slog with a small configuration surface shared by
// the GUI, the fetch CLI and the tools.
package log

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger initialization. Environment overrides:
//
//	RTG_LOG_LEVEL=debug|info|warn|error
//	RTG_LOG_FORMAT=text|json
//	RTG_LOG_FILE=<path>  (rotated file output instead of stderr)
type Options struct {
	Level  string
	Format string
	File   string
}

var (
	mu     sync.RWMutex
	logger *slog.Logger
)

// L returns the application logger, initializing from the environment
// on first use.
func L() *slog.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l != nil {
		return l
	}
	Init(FromEnv())
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Init configures the application logger and slog's default.
func Init(opts Options) {
	lvl := parseLevel(opts.Level)
	ho := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	switch {
	case strings.TrimSpace(opts.File) != "":
		w := &lj.Logger{Filename: opts.File, MaxSize: 10, MaxBackups: 3, MaxAge: 28, Compress: true}
		h = slog.NewJSONHandler(w, ho)
	case strings.EqualFold(opts.Format, "json"):
		h = slog.NewJSONHandler(os.Stderr, ho)
	default:
		h = slog.NewTextHandler(os.Stderr, ho)
	}

	l := slog.New(h).With(slog.String("app", "rizzthegrid"))
	mu.Lock()
	logger = l
	mu.Unlock()
	slog.SetDefault(l)
}

// FromEnv builds Options from RTG_LOG_* variables.
func FromEnv() Options {
	return Options{
		Level:  getenv("RTG_LOG_LEVEL", "info"),
		Format: getenv("RTG_LOG_FORMAT", "text"),
		File:   os.Getenv("RTG_LOG_FILE"),
	}
}

// WithComponent returns a logger tagged with a component name.
func WithComponent(name string) *slog.Logger {
	return L().With(slog.String("component", name))
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
