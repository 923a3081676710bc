// Package logger configures the global zerolog logger from command line options.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a go-flags option group.
type Logger struct {
	Level  string `long:"log-level"  env:"LOG_LEVEL"  description:"Log level" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error" default:"info"`
	Format string `long:"log-format" env:"LOG_FORMAT" description:"Log format" choice:"console" choice:"json" default:"console"`
	File   string `long:"log-file"   env:"LOG_FILE"   description:"Write logs to this file instead of stderr"`

	file *os.File
}

// Setup installs the global logger. Without a log file it writes to stderr.
func (l *Logger) Setup() {
	level, err := zerolog.ParseLevel(l.Level)
	if err != nil || l.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var out io.Writer = os.Stderr
	var ferr error
	if l.File != "" {
		var f *os.File
		if f, ferr = os.OpenFile(l.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); ferr == nil {
			l.file = f
			out = f
		}
	}
	log.Logger = l.build(out, l.file == nil)

	if ferr != nil {
		log.Warn().Err(ferr).Str("path", l.File).Msg("Cannot open log file, using stderr")
	}
}

// Detach stops writing to the terminal before a full-screen UI takes it
// over. Logs keep going to the log file if one is open and are dropped
// otherwise.
func (l *Logger) Detach() {
	if l.file != nil {
		return
	}
	log.Logger = zerolog.Nop()
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	log.Logger = zerolog.Nop()
	return err
}

// exit is replaced in tests.
var exit = os.Exit

// Fatal logs err at fatal level, closes the log file and exits with status 1.
// Use it instead of log.Fatal(), which exits without closing the file.
func (l *Logger) Fatal(err error, msg string) {
	log.WithLevel(zerolog.FatalLevel).Err(err).Msg(msg)
	_ = l.Close()
	exit(1)
}

func (l *Logger) build(out io.Writer, terminal bool) zerolog.Logger {
	if l.Format == "json" {
		return zerolog.New(out).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !terminal,
	}).With().Timestamp().Logger()
}
