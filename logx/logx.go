// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default [slog] logger used by
// the view tree and its tools, with colored level tags on terminals.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through [SetDefaultLogger] or the command line. It defaults
// to [slog.LevelInfo], [slog.LevelDebug] with the debug build tag,
// and [slog.LevelWarn] with the release build tag.
var UserLevel = defaultUserLevel

// level is the shared leveler for loggers made by this package,
// so that changes to [UserLevel] through [SetLevel] apply immediately.
var level = new(slog.LevelVar)

func init() {
	level.Set(UserLevel)
}

// SetLevel sets [UserLevel] and the level of all loggers
// made by [NewLogger].
func SetLevel(l slog.Level) {
	UserLevel = l
	level.Set(l)
}

// SetDefaultLogger sets the default logger to be a [NewLogger]
// writing to [os.Stderr] at [UserLevel].
func SetDefaultLogger() {
	level.Set(UserLevel)
	slog.SetDefault(NewLogger(os.Stderr))
}

// NewLogger returns a text logger writing to the given writer.
// The level tags are colored when the writer is a terminal that
// supports color; otherwise plain text is written.
func NewLogger(w io.Writer) *slog.Logger {
	out := termenv.NewOutput(w)
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey || len(groups) > 0 {
				return a
			}
			l, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(LevelString(out, l))
			return a
		},
	}))
}

// LevelString returns the name of the given level, styled
// with the color for that level on the given output.
func LevelString(out *termenv.Output, l slog.Level) string {
	s := out.String(l.String())
	switch {
	case l >= slog.LevelError:
		s = s.Foreground(out.Color("1")).Bold()
	case l >= slog.LevelWarn:
		s = s.Foreground(out.Color("3"))
	case l >= slog.LevelInfo:
		s = s.Foreground(out.Color("4"))
	default:
		s = s.Faint()
	}
	return s.String()
}
