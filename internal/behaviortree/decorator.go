package behaviortree

import (
	"fmt"
)

// FreezeStatus evaluates its children as a Sequence, until that evaluation
// yields the configured status. From then on it returns that status on every
// tick, without ticking its children again.
type FreezeStatus struct {
	children
	name    string
	target  Status
	current Status
}

// NewFreezeStatus constructs a FreezeStatus which latches on target.
// Panics if target is not one of Running, Success or Failure.
func NewFreezeStatus(name string, target Status, children ...Node) *FreezeStatus {
	mustLatchTarget(KindFreezeStatus, name, target)
	n := &FreezeStatus{name: name, target: target, current: Idle}
	n.SetChildren(children...)
	return n
}

// Tick returns the latched status if the last evaluation yielded the target.
// Otherwise it evaluates the children as a Sequence, and stores the result.
func (n *FreezeStatus) Tick() Status {
	if n.current == n.target {
		return n.current
	}
	n.current = sequence(n.list)
	return n.current
}

// Target returns the status the node latches on.
func (n *FreezeStatus) Target() Status { return n.target }

// Current returns the result of the last evaluation, or Idle if the node has
// never been ticked.
func (n *FreezeStatus) Current() Status { return n.current }

// Name returns the display name.
func (n *FreezeStatus) Name() string { return n.name }

// Kind returns KindFreezeStatus.
func (n *FreezeStatus) Kind() Kind { return KindFreezeStatus }

func (n *FreezeStatus) node() {}

// CacheStatus ticks a single child, until it returns the configured status.
// From then on it returns that status on every tick, without ticking the
// child again.
type CacheStatus struct {
	name    string
	target  Status
	current Status
	child   Node
}

// NewCacheStatus constructs a CacheStatus which latches on target. The child
// may be nil, and bound later via SetChild, but it must be set before the
// first tick. Panics if target is not one of Running, Success or Failure.
func NewCacheStatus(name string, target Status, child Node) *CacheStatus {
	mustLatchTarget(KindCacheStatus, name, target)
	return &CacheStatus{name: name, target: target, current: Idle, child: child}
}

// SetChild binds the wrapped child.
func (n *CacheStatus) SetChild(child Node) { n.child = child }

// Tick returns the latched status if the last evaluation yielded the target.
// Otherwise it ticks the child, and stores the result. Ticking without a
// child panics.
func (n *CacheStatus) Tick() Status {
	if n.current == n.target {
		return n.current
	}
	if n.child == nil {
		panic(fmt.Sprintf("behaviortree: cache status %q ticked without a child", n.name))
	}
	n.current = n.child.Tick()
	return n.current
}

// Target returns the status the node latches on.
func (n *CacheStatus) Target() Status { return n.target }

// Current returns the result of the last evaluation, or Idle if the node has
// never been ticked.
func (n *CacheStatus) Current() Status { return n.current }

// Name returns the display name.
func (n *CacheStatus) Name() string { return n.name }

// Kind returns KindCacheStatus.
func (n *CacheStatus) Kind() Kind { return KindCacheStatus }

// Children returns the wrapped child, or nil if none is bound.
func (n *CacheStatus) Children() []Node {
	if n.child == nil {
		return nil
	}
	return []Node{n.child}
}

func (n *CacheStatus) node() {}

// mustLatchTarget rejects targets that would latch before the first tick, or
// are not statuses at all.
func mustLatchTarget(kind Kind, name string, target Status) {
	if target == Idle || !target.Valid() {
		panic(fmt.Sprintf("behaviortree: %s %q: invalid latch status %s", kind, name, target))
	}
}
