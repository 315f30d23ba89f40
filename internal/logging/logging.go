package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects the log sinks.
type Options struct {
	Level zerolog.Level
	// Console receives human-readable output. Defaults to os.Stderr.
	Console io.Writer
	// Dir enables a rotating JSON log file inside it when non-empty.
	Dir  string
	File string
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds a logger with a console sink and, when Options.Dir is set, a
// rotating file sink. The returned Closer releases the file.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	consoleWriter := zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.RFC3339,
		NoColor:    !isTerminal(console),
	}

	var (
		writer io.Writer = consoleWriter
		closer io.Closer = nopCloser{}
	)
	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("creating log directory %q: %w", opts.Dir, err)
		}
		name := opts.File
		if name == "" {
			name = "xpcalc.log"
		}
		fileWriter := &lumberjack.Logger{
			Filename:   filepath.Join(opts.Dir, name),
			MaxSize:    16, // megabytes
			MaxBackups: 8,
			MaxAge:     90, // days
			Compress:   true,
		}
		writer = zerolog.MultiLevelWriter(consoleWriter, fileWriter)
		closer = fileWriter
	}

	logger := zerolog.New(writer).
		Level(opts.Level).
		With().
		Timestamp().
		Logger()
	return logger, closer, nil
}

// Init builds the logger and installs it as the global zerolog logger.
func Init(opts Options) (io.Closer, error) {
	logger, closer, err := New(opts)
	if err != nil {
		return nil, err
	}
	log.Logger = logger
	return closer, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
