// Package log carries a zerolog logger on the context.
package log

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

type AttrOption func(l zerolog.Context) zerolog.Context

// Scope names the component that logs.
func Scope(s string) AttrOption {
	return func(l zerolog.Context) zerolog.Context {
		return l.Str("s", s)
	}
}

// Operation names the list operation being applied.
func Operation(op string) AttrOption {
	return func(l zerolog.Context) zerolog.Context {
		return l.Str("op", op)
	}
}

// Script names the script and the line number being executed. A zero line
// is omitted.
func Script(name string, line int) AttrOption {
	return func(l zerolog.Context) zerolog.Context {
		if line == 0 {
			return l.Str("script", name)
		}
		return l.Str("script", name+":"+strconv.Itoa(line))
	}
}

func WithAttrs(ctx context.Context, opts ...AttrOption) context.Context {
	l := zerolog.Ctx(ctx).With()
	for _, opt := range opts {
		l = opt(l)
	}
	return l.Logger().WithContext(ctx)
}

func Tracef(ctx context.Context, msg string, args ...any) {
	zerolog.Ctx(ctx).Trace().Timestamp().Msgf(msg, args...)
}

func Debug(ctx context.Context, msg string) {
	zerolog.Ctx(ctx).Debug().Timestamp().Msg(msg)
}

func Debugf(ctx context.Context, msg string, args ...any) {
	zerolog.Ctx(ctx).Debug().Timestamp().Msgf(msg, args...)
}

func Infof(ctx context.Context, msg string, args ...any) {
	zerolog.Ctx(ctx).Info().Timestamp().Msgf(msg, args...)
}

func Error(ctx context.Context, err error, msg string) {
	zerolog.Ctx(ctx).Error().Err(err).Timestamp().Msg(msg)
}

// New returns a logger writing to stderr, as JSON or through a console writer.
func New(level zerolog.Level, json, noColor bool) *zerolog.Logger {
	if json {
		l := zerolog.New(os.Stderr).Level(level)
		return &l
	}

	w := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
		w.NoColor = noColor
		w.TimeFormat = time.DateTime
	})
	l := zerolog.New(w).Level(level)
	return &l
}

// InitGlobals creates a logger and installs it as the fallback for contexts
// that carry none.
func InitGlobals(level zerolog.Level, json, noColor bool) *zerolog.Logger {
	l := New(level, json, noColor)
	zerolog.SetGlobalLevel(level)
	zerolog.DefaultContextLogger = l
	return l
}
