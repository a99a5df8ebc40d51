package command

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/joeycumines/behavior-tree-engine/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run parses args with the command's flags, and executes it.
func run(t *testing.T, ctx context.Context, cmd Command, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cmd.SetupFlags(fs)
	require.NoError(t, fs.Parse(args))
	var out, errOut bytes.Buffer
	err = cmd.Execute(ctx, fs.Args(), &out, &errOut)
	return out.String(), errOut.String(), err
}

// unsetenv clears the logging env overrides for the duration of the test.
func unsetenv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"BTE_LOG_LEVEL", "BTE_LOG_FILE", "BTE_LOG_FORMAT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func loadConfig(t *testing.T, content string) *config.Config {
	t.Helper()
	cfg, err := config.LoadFromReader(strings.NewReader(content))
	require.NoError(t, err)
	return cfg
}

func TestRegistry(t *testing.T) {
	t.Parallel()
	registry := NewRegistry()
	registry.Register(NewVersionCommand("1.0.0"))
	registry.Register(NewHelpCommand(registry))

	assert.Equal(t, []string{"help", "version"}, registry.List())
	cmd, err := registry.Get("version")
	require.NoError(t, err)
	assert.Equal(t, "version", cmd.Name())

	_, err = registry.Get("missing")
	assert.EqualError(t, err, "command not found: missing")
}

func TestHelpCommand(t *testing.T) {
	t.Parallel()
	registry := NewRegistry()
	helper := NewHelpCommand(registry)
	registry.Register(helper)
	registry.Register(NewCounterCommand(config.NewConfig()))

	stdout, stderr, err := run(t, context.Background(), helper)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Available commands")
	assert.Contains(t, stdout, "counter")
	assert.Empty(t, stderr)

	stdout, _, err = run(t, context.Background(), helper, "counter")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Command: counter")
	assert.Contains(t, stdout, "-freeze-status")

	_, stderr, err = run(t, context.Background(), helper, "nope")
	require.Error(t, err)
	assert.Contains(t, stderr, "Unknown command: nope")
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()
	cmd := NewVersionCommand("9.9.9")
	stdout, _, err := run(t, context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, "bte version 9.9.9\n", stdout)

	_, stderr, err := run(t, context.Background(), cmd, "extra")
	require.ErrorIs(t, err, errUnexpectedArgs)
	assert.Contains(t, stderr, "unexpected arguments: [extra]")
}

func TestConfigCommand(t *testing.T) {
	t.Parallel()
	cfg := loadConfig(t, "verbose true\n[counter]\nticks 3\nbogus 1\n")

	stdout, _, err := run(t, context.Background(), NewConfigCommand(cfg), "-all")
	require.NoError(t, err)
	assert.Contains(t, stdout, "  verbose: true\n")
	assert.Contains(t, stdout, "  [counter]\n    bogus: 1\n    ticks: 3\n")

	stdout, _, err = run(t, context.Background(), NewConfigCommand(cfg), "validate")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1 issue(s)")
	assert.Contains(t, stdout, `"bogus"`)

	stdout, _, err = run(t, context.Background(), NewConfigCommand(cfg), "schema")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[counter] Options:")
	assert.Contains(t, stdout, "freeze-status")

	stdout, _, err = run(t, context.Background(), NewConfigCommand(cfg), "verbose")
	require.NoError(t, err)
	assert.Equal(t, "verbose: true\n", stdout)

	_, _, err = run(t, context.Background(), NewConfigCommand(cfg), "a", "b")
	require.Error(t, err)
}

func TestDemoCommand(t *testing.T) {
	t.Parallel()
	stdout, stderr, err := run(t, context.Background(), NewDemoCommand(config.NewConfig()))
	require.NoError(t, err)
	assert.Equal(t, "action_fail\n"+
		"action_success\n"+
		"action_success\n"+
		"Agent.FlipVal\n"+
		"Agent.FlipVal\n"+
		"tick 1: SUCCESS (agent=false)\n"+
		"{ SEQUENCE: root, { SELECTOR: a, { LEAF: leaf_fail }, { LEAF: leaf_success } }, { SEQUENCE: b, { LEAF: leaf_success } }, { LEAF: c }, { LEAF: d } }\n",
		stdout)
	assert.Contains(t, stderr, "msg=tick")
	assert.Contains(t, stderr, "run_id=")
}

func TestDemoCommand_ConfigAndFlags(t *testing.T) {
	t.Parallel()
	cfg := loadConfig(t, "[demo]\ninitial true\nticks 2\n")

	stdout, _, err := run(t, context.Background(), NewDemoCommand(cfg))
	require.NoError(t, err)
	assert.Contains(t, stdout, "tick 1: SUCCESS (agent=true)\n")
	assert.Contains(t, stdout, "tick 2: SUCCESS (agent=true)\n")

	stdout, _, err = run(t, context.Background(), NewDemoCommand(cfg), "-ticks", "1", "-initial=false")
	require.NoError(t, err)
	assert.Contains(t, stdout, "tick 1: SUCCESS (agent=false)\n")
	assert.NotContains(t, stdout, "tick 2")
}

func TestDemoCommand_Interrupted(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := run(t, ctx, NewDemoCommand(config.NewConfig()))
	require.ErrorIs(t, err, context.Canceled)
}

func TestCounterCommand(t *testing.T) {
	t.Parallel()
	stdout, _, err := run(t, context.Background(), NewCounterCommand(config.NewConfig()))
	require.NoError(t, err)
	assert.Equal(t, "tick 1: FAILURE (count=1)\n"+
		"tick 2: FAILURE (count=2)\n"+
		"tick 3: FAILURE (count=3)\n"+
		"tick 4: SUCCESS (count=4)\n"+
		"tick 5: SUCCESS (count=4)\n"+
		"final: SUCCESS (count=4)\n",
		stdout)
}

func TestCounterCommand_Options(t *testing.T) {
	t.Parallel()
	cfg := loadConfig(t, "[counter]\nticks 3\ncondition count >= 0\nfreeze-status failure\n")

	// count >= 0 always holds, so the failure latch is never reached
	stdout, _, err := run(t, context.Background(), NewCounterCommand(cfg))
	require.NoError(t, err)
	assert.Contains(t, stdout, "tick 3: SUCCESS (count=3)\n")
	assert.Contains(t, stdout, "final: SUCCESS (count=3)\n")

	stdout, _, err = run(t, context.Background(), NewCounterCommand(cfg), "-condition", "count > 100", "-ticks", "4")
	require.NoError(t, err)
	assert.Equal(t, "tick 1: FAILURE (count=1)\n"+
		"tick 2: FAILURE (count=1)\n"+
		"tick 3: FAILURE (count=1)\n"+
		"tick 4: FAILURE (count=1)\n"+
		"final: FAILURE (count=1)\n",
		stdout)
}

func TestCounterCommand_Ticker(t *testing.T) {
	t.Parallel()
	stdout, _, err := run(t, context.Background(), NewCounterCommand(config.NewConfig()), "-interval", "1ms", "-verbose")
	require.NoError(t, err)
	assert.Contains(t, stdout, "tick 5: SUCCESS (count=4)\n")
	assert.Contains(t, stdout, "{ FREEZE_STATUS: count_until (freeze=SUCCESS current=SUCCESS), { LEAF: increment } }\n")
	assert.NotContains(t, stdout, "tick 6")
	assert.Contains(t, stdout, "final: SUCCESS (count=4)\n")
}

func TestCounterCommand_TickerInterrupted(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := run(t, ctx, NewCounterCommand(config.NewConfig()), "-interval", "1h")
	require.ErrorIs(t, err, context.Canceled)
}

func TestCounterCommand_Invalid(t *testing.T) {
	t.Parallel()
	for _, args := range [][]string{
		{"-freeze-status", "idle"},
		{"-freeze-status", "done"},
		{"-condition", "count +"},
		{"-ticks", "-1"},
		{"unexpected"},
	} {
		_, _, err := run(t, context.Background(), NewCounterCommand(config.NewConfig()), args...)
		assert.Error(t, err, "%v", args)
	}
}

func TestCommands_SectionLogOptions(t *testing.T) {
	unsetenv(t)

	cfg := loadConfig(t, "[counter]\nlog.level error\nverbose true\n\n[demo]\nlog.level debug\nlog.format json\n")

	stdout, stderr, err := run(t, context.Background(), NewCounterCommand(cfg), "-ticks", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "{ FREEZE_STATUS: count_until")
	assert.Empty(t, stderr)

	_, stderr, err = run(t, context.Background(), NewDemoCommand(cfg))
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"assembled tree"`)
	assert.Contains(t, stderr, `"command":"demo"`)
}

func TestCounterCommand_ConditionPanics(t *testing.T) {
	t.Parallel()
	for _, args := range [][]string{
		{"-condition", "10 % count == 0"},
		{"-condition", "10 % count == 0", "-interval", "1ms"},
	} {
		stdout, _, err := run(t, context.Background(), NewCounterCommand(config.NewConfig()), args...)
		require.ErrorIs(t, err, errActionPanic, "%v", args)
		assert.Contains(t, err.Error(), `evaluate counter condition "10 % count == 0"`, "%v", args)
		assert.Contains(t, err.Error(), "integer divide by zero", "%v", args)
		assert.NotContains(t, stdout, "tick 1", "%v", args)
	}
}

func TestCommands_InvalidVerbose(t *testing.T) {
	t.Parallel()
	for _, content := range []string{"verbose junk\n", "[demo]\nverbose junk\n[counter]\nverbose junk\n"} {
		cfg := loadConfig(t, content)

		_, _, err := run(t, context.Background(), NewDemoCommand(cfg))
		require.Error(t, err, content)
		assert.Contains(t, err.Error(), "invalid verbose", content)

		_, _, err = run(t, context.Background(), NewCounterCommand(cfg))
		require.Error(t, err, content)
		assert.Contains(t, err.Error(), "invalid verbose", content)
	}
}
