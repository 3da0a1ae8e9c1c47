package bslog

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// globalLogger is the single zerolog.Logger this module logs through.
// Trimmed from alog/logger.go's multi-channel map singleton: the
// evaluation core only ever needs one channel (reliability transitions
// and change notifications), so the channel-label indirection is dropped
// and only the "lazily build one singleton logger" shape is kept.
var (
	globalLogger zerolog.Logger
	once         sync.Once
)

// L returns the module-wide logger, initializing it with a console
// writer and Info level on first use.
func L() *zerolog.Logger {
	once.Do(func() {
		globalLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
			With().Timestamp().Logger().
			Level(zerolog.InfoLevel)
	})
	return &globalLogger
}

// SetLevel adjusts the global log level, e.g. to zerolog.DebugLevel for
// cmd/bsdemo's verbose mode.
func SetLevel(level zerolog.Level) {
	L() // ensure initialized
	globalLogger = globalLogger.Level(level)
}
