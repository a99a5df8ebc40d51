/*
Package behaviortree implements a small, synchronous behavior tree engine.

# Nodes

A tree is assembled from a closed set of node kinds:

  - Sequence ticks its children in order until one does not succeed.
  - Selector ticks its children in order until one does not fail.
  - Leaf invokes a single Action.
  - FreezeStatus evaluates its children as a sequence, and latches once the
    result equals its configured status.
  - CacheStatus ticks a single child, and latches once the result equals its
    configured status.

An Action is itself a Node, so a bare func() Status may be used directly as a
child. Bare actions have no name, and are described as an opaque marker.

# Ticking

Every call to Node.Tick performs one depth-first, left-to-right walk of the
reachable subtree on the calling goroutine, and returns one Status. Running
is an ordinary result: a node that reports Running is simply re-evaluated
from the top on the next tick. There are no timeouts, no cancellation, and no
recovery of panics raised by actions.

# Shared nodes

Nodes are pointers. Adding the same *FreezeStatus (or any other node) to the
children of two parents shares one instance, so both parents observe a single
latch. Nothing in this package is safe for concurrent use; callers that tick
trees sharing nodes from multiple goroutines must synchronize externally.

# Assembly errors

Ticking a Leaf with no Action, or a CacheStatus with no child, panics. So does
constructing a latch decorator with Idle as its target. These are wiring bugs
in the caller, and are not reported as a Status.

# go-behaviortree

ToBT exposes any Node as a github.com/joeycumines/go-behaviortree Node, so
trees built here can be driven by bt.NewTicker or composed with bt.Sequence,
bt.Memorize and friends. FromBT goes the other way, wrapping a bt.Node as an
Action.
*/
package behaviortree
