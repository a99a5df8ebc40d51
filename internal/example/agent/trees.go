package agent

import (
	"io"

	"github.com/joeycumines/behavior-tree-engine/internal/behaviortree"
)

// NewSampleTree assembles the demo tree, tracing actions to w:
//
//	                  root(SEQ)
//	           /            \     \  \
//	     a(SEL)            b(SEQ)  c  d
//	      / \                |
//	leaf_fail leaf_success  leaf_success
//
// leaf_success is one shared instance. Both c and d flip the agent, c via a
// closure and d via a method value.
func NewSampleTree(w io.Writer, agent *Agent) *behaviortree.Sequence {
	root := behaviortree.NewSequence("root")
	a := behaviortree.NewSelector("a")
	b := behaviortree.NewSequence("b")

	leafSuccess := behaviortree.NewLeaf("leaf_success", ActionSuccess(w))
	leafFail := behaviortree.NewLeaf("leaf_fail", ActionFail(w))

	c := behaviortree.NewLeaf("c", nil)
	c.SetAction(func() behaviortree.Status { return agent.FlipVal() })

	d := behaviortree.NewLeaf("d", agent.FlipVal)

	a.SetChildren(leafFail, leafSuccess)
	b.SetChildren(leafSuccess)
	root.SetChildren(a, b, c, d)

	return root
}

// NewCounterTree wraps the counter's increment in a FreezeStatus, latching
// on target, so it stops counting once that status is reached.
func NewCounterTree(counter *Counter, target behaviortree.Status) *behaviortree.FreezeStatus {
	return behaviortree.NewFreezeStatus("count_until", target,
		behaviortree.NewLeaf("increment", counter.Increment),
	)
}
