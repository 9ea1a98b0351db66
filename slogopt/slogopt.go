// Package slogopt wires the default log/slog logger to whisparg arguments,
// so programs built on whisparg can expose --log-level and --log-json
// without declaring them by hand.
package slogopt

import (
	"io"
	"log/slog"
	"os"

	"github.com/idofront/whisparg"
)

// Preset declarations. They are plain values and may be customized with the
// usual builder methods before being passed to Configure via a session.
var (
	Level = whisparg.New[slog.Level]("log-level").
		Description("Log level (debug, info, warn, error).").
		Default(slog.LevelInfo)
	JSON = whisparg.New[whisparg.Flag]("log-json").
		Description("Emit logs as JSON.").
		Default(whisparg.FlagFalse)
)

// ParseLevel is a whisparg.ConvertFunc for slog.Level tokens such as "debug"
// or "warn".
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, err
	}
	return level, nil
}

// Configure resolves the preset arguments against the session and installs a
// matching handler as the slog default, writing to w.
func Configure(p *whisparg.Parser, w io.Writer) error {
	levelArg, err := whisparg.ParseFunc(p, Level, ParseLevel)
	if err != nil {
		return err
	}
	jsonArg, err := whisparg.Parse(p, JSON)
	if err != nil {
		return err
	}

	level, _ := levelArg.Value()
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if v, _ := jsonArg.Value(); v.Bool() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
	return nil
}

// ConfigureDefault is Configure writing to stderr.
func ConfigureDefault(p *whisparg.Parser) error {
	return Configure(p, os.Stderr)
}
