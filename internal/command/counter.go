package command

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/joeycumines/behavior-tree-engine/internal/behaviortree"
	"github.com/joeycumines/behavior-tree-engine/internal/config"
	"github.com/joeycumines/behavior-tree-engine/internal/example/agent"
	bt "github.com/joeycumines/go-behaviortree"
)

// errTickLimit stops the ticker once the requested ticks have run.
var (
	errTickLimit   = errors.New("tick limit reached")
	errActionPanic = errors.New("action panicked")
)

// CounterCommand ticks a counter wrapped in a FreezeStatus, showing the
// latch stop the counter once its condition holds.
type CounterCommand struct {
	*BaseCommand
	config *config.Config
	flags  *flag.FlagSet
	log    logFlags
}

// NewCounterCommand creates a new counter command.
func NewCounterCommand(cfg *config.Config) *CounterCommand {
	return &CounterCommand{
		BaseCommand: NewBaseCommand(
			"counter",
			"Tick a latched counter tree, printing each result",
			"counter [options]",
		),
		config: cfg,
	}
}

// SetupFlags configures the flags for the counter command.
func (c *CounterCommand) SetupFlags(fs *flag.FlagSet) {
	c.flags = fs
	fs.Int("ticks", 5, "Number of times to tick the tree (default from config)")
	fs.Duration("interval", 0, "Delay between ticks, 0 ticks back to back (default from config)")
	fs.String("condition", agent.DefaultCondition, "Success condition, an expr-lang expression over count (default from config)")
	fs.String("freeze-status", "success", "Status the tree latches on (default from config)")
	fs.Bool("verbose", false, "Print the tree description after every tick")
	c.log.setup(fs)
}

// Execute builds the counter tree, and ticks it.
func (c *CounterCommand) Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if err := noArgs(args, stderr); err != nil {
		return err
	}

	s := settings{fs: c.flags, cfg: c.config, section: "counter"}
	ticks, err := s.getInt("ticks")
	if err != nil {
		return err
	}
	if ticks < 0 {
		return fmt.Errorf("invalid ticks: %d", ticks)
	}
	interval, err := s.getDuration("interval")
	if err != nil {
		return err
	}
	target, err := s.getStatus("freeze-status")
	if err != nil {
		return err
	}
	if target == behaviortree.Idle {
		return fmt.Errorf("invalid freeze-status: %s", target)
	}
	verbose, err := s.getBool("verbose")
	if err != nil {
		return err
	}
	counter, err := agent.NewCounter(s.value("condition"))
	if err != nil {
		return err
	}

	logger, closer, err := c.log.logger(c.config, s.section, stderr)
	if err != nil {
		return err
	}
	defer closer.Close()
	logger = logger.With("command", c.Name(), "run_id", uuid.NewString())

	tree := agent.NewCounterTree(counter, target)
	logger.Debug("assembled tree", "tree", behaviortree.Describe(tree), "condition", counter.Condition())

	r := &counterRun{
		tree:    tree,
		counter: counter,
		stdout:  stdout,
		logger:  logger,
		verbose: verbose,
	}

	if interval <= 0 {
		for i := 0; i < ticks; i++ {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("counter interrupted: %w", err)
			}
			status, err := r.safeTick()
			if err != nil {
				return err
			}
			r.tick(status)
		}
	} else if ticks > 0 {
		if err := r.runTicker(ctx, interval, ticks); err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintf(stdout, "final: %s (count=%d)\n", tree.Current(), counter.Count())
	return nil
}

// counterRun reports the results of each tick.
type counterRun struct {
	tree    *behaviortree.FreezeStatus
	counter *agent.Counter
	stdout  io.Writer
	logger  *slog.Logger
	verbose bool
	n       int
}

// safeTick ticks the tree once. A panic raised by the counter, e.g. a
// condition that fails at runtime, is returned as an error.
func (r *counterRun) safeTick() (status behaviortree.Status, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = actionPanic(v)
		}
	}()
	return r.tree.Tick(), nil
}

func actionPanic(v any) error {
	if err, ok := v.(error); ok {
		return fmt.Errorf("%w: %w", errActionPanic, err)
	}
	return fmt.Errorf("%w: %v", errActionPanic, v)
}

func (r *counterRun) tick(status behaviortree.Status) {
	r.n++
	_, _ = fmt.Fprintf(r.stdout, "tick %d: %s (count=%d)\n", r.n, status, r.counter.Count())
	r.logger.Info("tick", "n", r.n, "status", status.String(), "count", r.counter.Count())
	if r.verbose {
		_, _ = fmt.Fprintln(r.stdout, behaviortree.Describe(r.tree))
	}
}

// runTicker drives the tree from a go-behaviortree ticker, on the ticker's
// goroutine, until ticks have run or ctx is done. The tree is only touched
// by that goroutine until the ticker is done.
func (r *counterRun) runTicker(ctx context.Context, interval time.Duration, ticks int) error {
	node := behaviortree.ToBT(r.tree)
	ticker := bt.NewTicker(ctx, interval, bt.New(func([]bt.Node) (result bt.Status, err error) {
		defer func() {
			if v := recover(); v != nil {
				result, err = bt.Failure, actionPanic(v)
			}
		}()
		result, err = node.Tick()
		if err != nil {
			return result, err
		}
		status, err := behaviortree.StatusFromBT(result)
		if err != nil {
			return result, err
		}
		r.tick(status)
		if r.n >= ticks {
			return result, errTickLimit
		}
		return result, nil
	}))
	defer ticker.Stop()

	<-ticker.Done()
	switch err := ticker.Err(); {
	case err == nil, errors.Is(err, errTickLimit):
		return nil
	case errors.Is(err, errActionPanic):
		return err
	default:
		return fmt.Errorf("counter interrupted: %w", err)
	}
}
