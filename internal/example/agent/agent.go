// Package agent is a sample driver for the behaviortree package: an agent
// with mutable state, tracing actions, and the trees the bte command runs.
package agent

import (
	"fmt"
	"io"

	"github.com/joeycumines/behavior-tree-engine/internal/behaviortree"
)

// Agent holds a single boolean, flipped by its action.
type Agent struct {
	w   io.Writer
	val bool
}

// New returns an Agent with an initial value, tracing to w. A nil w
// discards the trace.
func New(w io.Writer, val bool) *Agent {
	if w == nil {
		w = io.Discard
	}
	return &Agent{w: w, val: val}
}

// FlipVal negates the value, and always succeeds.
func (a *Agent) FlipVal() behaviortree.Status {
	_, _ = fmt.Fprintln(a.w, "Agent.FlipVal")
	a.val = !a.val
	return behaviortree.Success
}

// Val returns the current value.
func (a *Agent) Val() bool { return a.val }

// ActionSuccess returns an action which writes its name to w, and succeeds.
func ActionSuccess(w io.Writer) behaviortree.Action {
	return trace(w, "action_success", behaviortree.Success)
}

// ActionFail returns an action which writes its name to w, and fails.
func ActionFail(w io.Writer) behaviortree.Action {
	return trace(w, "action_fail", behaviortree.Failure)
}

func trace(w io.Writer, name string, status behaviortree.Status) behaviortree.Action {
	if w == nil {
		w = io.Discard
	}
	return func() behaviortree.Status {
		_, _ = fmt.Fprintln(w, name)
		return status
	}
}
