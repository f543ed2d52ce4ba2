// Package log is the host-side logger, a thin wrapper over zerolog.
package log

import (
	"errors"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

type LogFormat uint8

const (
	TextFormat LogFormat = iota
	JSONFormat
)

const DefaultLogFormat = TextFormat

const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

type Logger interface {
	Debug(msg string)
	Debugf(string, ...interface{})
	Info(msg string)
	Infof(string, ...interface{})
	Warn(msg string)
	Warnf(string, ...interface{})
	Error(msg string)
	Errorf(string, ...interface{})

	// Module returns a child logger tagging every line with module=name.
	Module(name string) Logger
}

func (l LogFormat) String() string {
	switch l {
	case TextFormat:
		return "text"
	case JSONFormat:
		return "json"
	}
	return "unknown"
}

// ParseLogFormat accepts "text" or "json"; the empty string is the default.
func ParseLogFormat(s string) (LogFormat, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return TextFormat, nil
	case "json":
		return JSONFormat, nil
	}
	return 0, errors.New("unknown log format " + s)
}

func defaultPartsOrder() []string {
	return []string{
		zerolog.TimestampFieldName,
		zerolog.LevelFieldName,
		zerolog.MessageFieldName,
	}
}

func selectFormatOutput(format LogFormat, output io.Writer) (io.Writer, error) {
	switch format {
	case TextFormat:
		return &zerolog.ConsoleWriter{
			Out:        output,
			NoColor:    true,
			TimeFormat: TimestampFormat,
			PartsOrder: defaultPartsOrder(),
		}, nil
	case JSONFormat:
		return output, nil
	default:
		return nil, errors.New("unknown formatter " + format.String())
	}
}

// CreateMainLogger builds the root logger. level is a zerolog level name
// such as "debug" or "info"; empty means info.
func CreateMainLogger(level string, format LogFormat, output io.Writer) (Logger, error) {
	lvl := zerolog.InfoLevel
	if level != "" {
		var err error
		if lvl, err = zerolog.ParseLevel(strings.ToLower(level)); err != nil {
			return nil, err
		}
	}
	w, err := selectFormatOutput(format, output)
	if err != nil {
		return nil, err
	}
	zl := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	return &zeroLogger{log: zl}, nil
}

// Nop discards everything.
func Nop() Logger {
	return &zeroLogger{log: zerolog.Nop()}
}

type zeroLogger struct {
	log zerolog.Logger
}

func (zl *zeroLogger) Debug(msg string) { zl.log.Debug().Msg(msg) }

func (zl *zeroLogger) Debugf(format string, args ...interface{}) {
	zl.log.Debug().Msgf(format, args...)
}

func (zl *zeroLogger) Info(msg string) { zl.log.Info().Msg(msg) }

func (zl *zeroLogger) Infof(format string, args ...interface{}) {
	zl.log.Info().Msgf(format, args...)
}

func (zl *zeroLogger) Warn(msg string) { zl.log.Warn().Msg(msg) }

func (zl *zeroLogger) Warnf(format string, args ...interface{}) {
	zl.log.Warn().Msgf(format, args...)
}

func (zl *zeroLogger) Error(msg string) { zl.log.Error().Msg(msg) }

func (zl *zeroLogger) Errorf(format string, args ...interface{}) {
	zl.log.Error().Msgf(format, args...)
}

func (zl *zeroLogger) Module(name string) Logger {
	return &zeroLogger{log: zl.log.With().Str("module", name).Logger()}
}
