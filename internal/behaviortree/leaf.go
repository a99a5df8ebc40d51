package behaviortree

import (
	"fmt"
)

// Leaf is a named node wrapping a single Action.
type Leaf struct {
	name   string
	action Action
}

// NewLeaf constructs a Leaf. The action may be nil, and bound later via
// SetAction, but it must be set before the first tick.
func NewLeaf(name string, action Action) *Leaf {
	return &Leaf{name: name, action: action}
}

// SetAction binds the action invoked by Tick.
func (n *Leaf) SetAction(action Action) { n.action = action }

// Tick invokes the action exactly once, returning its result unchanged.
// Panics if no action has been bound.
func (n *Leaf) Tick() Status {
	if n.action == nil {
		panic(fmt.Sprintf("behaviortree: leaf %q ticked without an action", n.name))
	}
	return n.action()
}

// Name returns the display name.
func (n *Leaf) Name() string { return n.name }

// Kind returns KindLeaf.
func (n *Leaf) Kind() Kind { return KindLeaf }

// Children returns nil. The wrapped action is invoked, not owned.
func (n *Leaf) Children() []Node { return nil }

func (n *Leaf) node() {}
