// Wraps zerolog logger, ensuring the timestamp goes in the beginning.
package log

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

var Base zerolog.Logger

func init() {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.DurationFieldInteger = true
	zerolog.TimeFieldFormat = time.RFC3339Nano
	Base = zerolog.New(os.Stderr).With().Stack().Logger()
}

type Logger interface {
	Info() *zerolog.Event
	Warn() *zerolog.Event
	Error() *zerolog.Event
}

func Info() *zerolog.Event {
	return Base.Info().Timestamp()
}

func Warn() *zerolog.Event {
	return Base.Warn().Timestamp()
}

func Error() *zerolog.Event {
	return Base.Error().Timestamp()
}

// BaseLogger logs through the process-wide logger
type BaseLogger struct{}

func (BaseLogger) Info() *zerolog.Event {
	return Info()
}

func (BaseLogger) Warn() *zerolog.Event {
	return Warn()
}

func (BaseLogger) Error() *zerolog.Event {
	return Error()
}

// TaskLogger is for code that runs outside of a request, like CLI commands
type TaskLogger struct {
	TaskName string
}

func (l *TaskLogger) Info() *zerolog.Event {
	return Info().Str("task", l.TaskName)
}

func (l *TaskLogger) Warn() *zerolog.Event {
	return Warn().Str("task", l.TaskName)
}

func (l *TaskLogger) Error() *zerolog.Event {
	return Error().Str("task", l.TaskName)
}

// WriterLogger writes to its own destination instead of stderr
type WriterLogger struct {
	logger zerolog.Logger
}

func NewWriterLogger(w io.Writer) *WriterLogger {
	return &WriterLogger{
		logger: zerolog.New(w).With().Stack().Logger(),
	}
}

func (l *WriterLogger) Info() *zerolog.Event {
	return l.logger.Info().Timestamp()
}

func (l *WriterLogger) Warn() *zerolog.Event {
	return l.logger.Warn().Timestamp()
}

func (l *WriterLogger) Error() *zerolog.Event {
	return l.logger.Error().Timestamp()
}
