package behaviortree

import (
	"slices"
)

// Kind identifies the variant of a Node, for diagnostics.
type Kind string

const (
	KindSequence     Kind = "SEQUENCE"
	KindSelector     Kind = "SELECTOR"
	KindLeaf         Kind = "LEAF"
	KindFreezeStatus Kind = "FREEZE_STATUS"
	KindCacheStatus  Kind = "CACHE_STATUS"
	// KindAction is reported by bare actions, which carry no identity.
	KindAction Kind = "ACTION"
)

// Node is the capability shared by every node kind.
//
// The set of implementations is closed: Sequence, Selector, Leaf,
// FreezeStatus, CacheStatus and Action.
type Node interface {
	// Tick evaluates the node, and returns its Status.
	Tick() Status

	// Name returns the display name. It is used only for diagnostics.
	Name() string

	// Kind returns the node's variant.
	Kind() Kind

	// Children returns the node's children, in evaluation order. The returned
	// slice is a copy, but the nodes it references are not.
	Children() []Node

	node()
}

// Action is a zero-argument callable supplied by the driver. It may have
// arbitrary side effects, which are neither inspected nor isolated.
//
// An Action is also a Node, with no name and no children, so it may be used
// as a child directly.
type Action func() Status

// Tick invokes the action. A nil action panics, as for an unbound Leaf.
func (a Action) Tick() Status {
	if a == nil {
		panic(`behaviortree: tick of nil action`)
	}
	return a()
}

// Name returns "", actions have no identity.
func (a Action) Name() string { return `` }

// Kind returns KindAction.
func (a Action) Kind() Kind { return KindAction }

// Children returns nil.
func (a Action) Children() []Node { return nil }

func (a Action) node() {}

// children holds an ordered child list, shared by the composite kinds.
type children struct {
	list []Node
}

// SetChildren replaces the child list. The slice is copied, the nodes are not.
func (c *children) SetChildren(nodes ...Node) {
	c.list = slices.Clone(nodes)
}

// Children returns a copy of the child list.
func (c *children) Children() []Node {
	return slices.Clone(c.list)
}

var (
	_ Node = Action(nil)
	_ Node = (*Sequence)(nil)
	_ Node = (*Selector)(nil)
	_ Node = (*Leaf)(nil)
	_ Node = (*FreezeStatus)(nil)
	_ Node = (*CacheStatus)(nil)
)
