package logger

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	base *slog.Logger
	once sync.Once
)

// Init sets up the process-wide logger. Safe to call more than once; only the
// first call wins.
func Init(level string) {
	once.Do(func() {
		var lvl slog.Level
		switch strings.ToLower(level) {
		case "debug":
			lvl = slog.LevelDebug
		case "warn":
			lvl = slog.LevelWarn
		case "error":
			lvl = slog.LevelError
		default:
			lvl = slog.LevelInfo
		}
		h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
		base = slog.New(h)
	})
}

func get() *slog.Logger {
	if base == nil {
		Init("info")
	}
	return base
}

// normalize allows call sites to pass a bare error (or any odd trailing
// value) after the key/value pairs: Error("Repo:Get", err).
func normalize(args []any) []any {
	if len(args)%2 == 1 {
		last := args[len(args)-1]
		args = append(args[:len(args)-1], "error", last)
	}
	return args
}

func Debug(msg string, args ...any) {
	get().Debug(msg, normalize(args)...)
}

func Info(msg string, args ...any) {
	get().Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	get().Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	get().Error(msg, normalize(args)...)
}
