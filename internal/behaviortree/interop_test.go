package behaviortree

import (
	"context"
	"errors"
	"testing"
	"time"

	bt "github.com/joeycumines/go-behaviortree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_BT(t *testing.T) {
	t.Parallel()
	for _, s := range []Status{Running, Success, Failure} {
		b, err := s.BT()
		require.NoError(t, err)
		back, err := StatusFromBT(b)
		require.NoError(t, err)
		assert.Equal(t, s, back)
	}

	_, err := Idle.BT()
	assert.Error(t, err)

	_, err = StatusFromBT(bt.Status(0))
	assert.Error(t, err)
}

func TestToBT_TicksNodeOnce(t *testing.T) {
	t.Parallel()
	var r recorder
	node := ToBT(NewSequence("seq", r.action("a", Success), r.action("b", Running)))

	status, err := node.Tick()
	require.NoError(t, err)
	assert.Equal(t, bt.Running, status)
	assert.Equal(t, []string{"a", "b"}, r.calls)
}

func TestToBT_ComposesWithGoBehaviortree(t *testing.T) {
	t.Parallel()
	var r recorder
	freeze := NewFreezeStatus("freeze", Success, r.action("once", Success))
	root := bt.New(bt.Sequence, ToBT(freeze), ToBT(r.action("after", Success)))

	for range 3 {
		status, err := root.Tick()
		require.NoError(t, err)
		require.Equal(t, bt.Success, status)
	}
	assert.Equal(t, 1, r.count("once"))
	assert.Equal(t, 3, r.count("after"))
}

func TestToBT_Ticker(t *testing.T) {
	t.Parallel()
	calls := make(chan struct{}, 16)
	action := Action(func() Status {
		select {
		case calls <- struct{}{}:
		default:
		}
		return Success
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ticker := bt.NewTicker(ctx, time.Millisecond, ToBT(action))
	defer ticker.Stop()

	select {
	case <-calls:
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for tick")
	}
}

func TestFromBT(t *testing.T) {
	t.Parallel()
	var ticks int
	inner := bt.New(func([]bt.Node) (bt.Status, error) {
		ticks++
		return bt.Failure, nil
	})
	root := NewSelector("root", FromBT(inner), FromBT(bt.New(bt.Sequence)))

	require.Equal(t, Success, root.Tick())
	assert.Equal(t, 1, ticks)
	assert.Equal(t, `{ SELECTOR: root, { ACTION }, { ACTION } }`, Describe(root))
}

func TestFromBT_ErrorPanics(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	action := FromBT(bt.New(func([]bt.Node) (bt.Status, error) {
		return bt.Failure, boom
	}))

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, boom)
	}()
	action.Tick()
	t.Fatal("expected panic")
}

func TestFromBT_UnknownStatusPanics(t *testing.T) {
	t.Parallel()
	action := FromBT(bt.New(func([]bt.Node) (bt.Status, error) {
		return bt.Status(0), nil
	}))
	assert.Panics(t, func() { action.Tick() })
}
