// Package logging configures the process slog.Logger from flags and config.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/joeycumines/behavior-tree-engine/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options are the resolved logging settings.
type Options struct {
	Level  slog.Level
	JSON   bool
	File   string
	MaxMB  int
	Files  int
	MaxAge int
}

// Resolve resolves log options from flags and config. Flag values take
// precedence; config values (including their env overrides) are used when
// flags have their zero value. A non-empty section lets options set in that
// command section override the global ones. cfg may be nil.
func Resolve(flagLevel, flagFile string, cfg *config.Config, section string) (Options, error) {
	schema := config.DefaultSchema()
	if cfg == nil {
		cfg = config.NewConfig()
	}
	resolveStr := func(key string) string {
		if section != "" {
			return schema.ResolveCommand(cfg, section, key)
		}
		return schema.Resolve(cfg, key)
	}
	resolveInt := func(key string, fallback int) (int, error) {
		v := resolveStr(key)
		if v == "" {
			return fallback, nil
		}
		i, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", key, err)
		}
		return i, nil
	}

	var opts Options

	levelStr := flagLevel
	if levelStr == "" {
		levelStr = resolveStr("log.level")
	}
	level, err := ParseLevel(levelStr)
	if err != nil {
		return opts, err
	}
	opts.Level = level

	switch format := strings.ToLower(resolveStr("log.format")); format {
	case "", "text":
	case "json":
		opts.JSON = true
	default:
		return opts, fmt.Errorf("invalid log format: %s", format)
	}

	opts.File = flagFile
	if opts.File == "" {
		opts.File = resolveStr("log.file")
	}

	if opts.MaxMB, err = resolveInt("log.max-size-mb", 10); err != nil {
		return opts, err
	}
	if opts.MaxMB <= 0 {
		opts.MaxMB = 10
	}
	if opts.Files, err = resolveInt("log.max-files", 5); err != nil {
		return opts, err
	}
	if opts.Files < 0 {
		opts.Files = 5
	}
	if opts.MaxAge, err = resolveInt("log.max-age-days", 0); err != nil {
		return opts, err
	}
	if opts.MaxAge < 0 {
		opts.MaxAge = 0
	}

	return opts, nil
}

// ParseLevel parses debug, info, warn or error, case-insensitively. An empty
// string is info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s", s)
	}
}

// New builds a logger for opts. Records go to the rotated log file when one
// is configured, otherwise to fallback. The returned closer must be closed
// when logging is done.
func New(opts Options, fallback io.Writer) (*slog.Logger, io.Closer) {
	w := fallback
	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		file := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxMB,
			MaxBackups: opts.Files,
			MaxAge:     opts.MaxAge,
		}
		w, closer = file, file
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.Level}
	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}
	return slog.New(handler), closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
