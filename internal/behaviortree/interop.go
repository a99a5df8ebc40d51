package behaviortree

import (
	"fmt"

	bt "github.com/joeycumines/go-behaviortree"
)

// BT converts s to the equivalent go-behaviortree status. Idle has no
// equivalent, and results in an error.
func (s Status) BT() (bt.Status, error) {
	switch s {
	case Running:
		return bt.Running, nil
	case Success:
		return bt.Success, nil
	case Failure:
		return bt.Failure, nil
	default:
		return bt.Failure, fmt.Errorf("behaviortree: no go-behaviortree equivalent for %s", s)
	}
}

// StatusFromBT converts a go-behaviortree status.
func StatusFromBT(s bt.Status) (Status, error) {
	switch s {
	case bt.Running:
		return Running, nil
	case bt.Success:
		return Success, nil
	case bt.Failure:
		return Failure, nil
	default:
		return Idle, fmt.Errorf("behaviortree: unknown go-behaviortree status %d", int(s))
	}
}

// ToBT exposes n as a go-behaviortree leaf. Each tick of the returned node
// ticks n exactly once. The subtree of n is not exposed as bt children, since
// n already evaluates it.
func ToBT(n Node) bt.Node {
	return bt.New(func([]bt.Node) (bt.Status, error) {
		return n.Tick().BT()
	})
}

// FromBT wraps a go-behaviortree node as an Action, i.e. an opaque child.
// An error returned by the node, or an unknown status, is raised as a panic
// carrying the error, as there is no other way for an Action to fail.
func FromBT(n bt.Node) Action {
	return func() Status {
		status, err := n.Tick()
		if err != nil {
			panic(fmt.Errorf("behaviortree: go-behaviortree tick: %w", err))
		}
		result, err := StatusFromBT(status)
		if err != nil {
			panic(err)
		}
		return result
	}
}
