package command

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/joeycumines/behavior-tree-engine/internal/behaviortree"
	"github.com/joeycumines/behavior-tree-engine/internal/config"
	"github.com/joeycumines/behavior-tree-engine/internal/example/agent"
)

// DemoCommand ticks the sample agent tree, tracing every action.
type DemoCommand struct {
	*BaseCommand
	config *config.Config
	flags  *flag.FlagSet
	log    logFlags
}

// NewDemoCommand creates a new demo command.
func NewDemoCommand(cfg *config.Config) *DemoCommand {
	return &DemoCommand{
		BaseCommand: NewBaseCommand(
			"demo",
			"Tick the sample agent tree and print its structure",
			"demo [options]",
		),
		config: cfg,
	}
}

// SetupFlags configures the flags for the demo command.
func (c *DemoCommand) SetupFlags(fs *flag.FlagSet) {
	c.flags = fs
	fs.Bool("initial", false, "Initial value of the agent (default from config)")
	fs.Int("ticks", 1, "Number of times to tick the tree (default from config)")
	fs.Bool("verbose", false, "Print the tree description after every tick")
	c.log.setup(fs)
}

// Execute builds the sample tree, and ticks it.
func (c *DemoCommand) Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if err := noArgs(args, stderr); err != nil {
		return err
	}

	s := settings{fs: c.flags, cfg: c.config, section: "demo"}
	initial, err := s.getBool("initial")
	if err != nil {
		return err
	}
	ticks, err := s.getInt("ticks")
	if err != nil {
		return err
	}
	if ticks < 0 {
		return fmt.Errorf("invalid ticks: %d", ticks)
	}
	verbose, err := s.getBool("verbose")
	if err != nil {
		return err
	}

	logger, closer, err := c.log.logger(c.config, s.section, stderr)
	if err != nil {
		return err
	}
	defer closer.Close()
	logger = logger.With("command", c.Name(), "run_id", uuid.NewString())

	a := agent.New(stdout, initial)
	root := agent.NewSampleTree(stdout, a)
	logger.Debug("assembled tree", "tree", behaviortree.Describe(root))

	for i := 1; i <= ticks; i++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("demo interrupted: %w", err)
		}
		status := root.Tick()
		_, _ = fmt.Fprintf(stdout, "tick %d: %s (agent=%t)\n", i, status, a.Val())
		logger.Info("tick", "n", i, "status", status.String(), "agent", a.Val())
		if verbose {
			_, _ = fmt.Fprintln(stdout, behaviortree.Describe(root))
		}
	}

	if !verbose {
		_, _ = fmt.Fprintln(stdout, behaviortree.Describe(root))
	}
	return nil
}
