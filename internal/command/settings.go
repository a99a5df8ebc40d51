package command

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/joeycumines/behavior-tree-engine/internal/behaviortree"
	"github.com/joeycumines/behavior-tree-engine/internal/config"
	"github.com/joeycumines/behavior-tree-engine/internal/logging"
)

// logFlags are the logging flags shared by the tree commands.
type logFlags struct {
	level string
	file  string
}

func (f *logFlags) setup(fs *flag.FlagSet) {
	fs.StringVar(&f.level, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	fs.StringVar(&f.file, "log-file", "", "Log file path, rotated (default from config, else stderr)")
}

// logger builds the command logger, honoring log options set in section.
// The caller must close the returned closer.
func (f *logFlags) logger(cfg *config.Config, section string, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	opts, err := logging.Resolve(f.level, f.file, cfg, section)
	if err != nil {
		return nil, nil, err
	}
	logger, closer := logging.New(opts, stderr)
	return logger, closer, nil
}

// settings resolves a command option: the flag when it was set explicitly,
// otherwise the config (env → section → default).
type settings struct {
	fs      *flag.FlagSet
	cfg     *config.Config
	section string
}

func (s settings) flagSet(name string) (set bool) {
	if s.fs == nil {
		return false
	}
	s.fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return
}

func (s settings) value(name string) string {
	if s.flagSet(name) {
		return s.fs.Lookup(name).Value.String()
	}
	cfg := s.cfg
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return config.DefaultSchema().ResolveCommand(cfg, s.section, name)
}

func (s settings) getInt(name string) (int, error) {
	v, err := strconv.Atoi(s.value(name))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return v, nil
}

func (s settings) getBool(name string) (bool, error) {
	v, err := config.ParseBool(s.value(name))
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", name, err)
	}
	return v, nil
}

func (s settings) getDuration(name string) (time.Duration, error) {
	v, err := time.ParseDuration(s.value(name))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return v, nil
}

func (s settings) getStatus(name string) (behaviortree.Status, error) {
	v, err := behaviortree.ParseStatus(s.value(name))
	if err != nil {
		return behaviortree.Idle, fmt.Errorf("invalid %s: %w", name, err)
	}
	return v, nil
}
