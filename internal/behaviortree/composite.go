package behaviortree

// Sequence ticks its children in order, returning the first Running or
// Failure result. If every child succeeds, or there are none, it returns
// Success.
type Sequence struct {
	children
	name string
}

// NewSequence constructs a Sequence with the given children.
func NewSequence(name string, children ...Node) *Sequence {
	n := &Sequence{name: name}
	n.SetChildren(children...)
	return n
}

// Tick evaluates the children with Sequence semantics.
func (n *Sequence) Tick() Status { return sequence(n.list) }

// Name returns the display name.
func (n *Sequence) Name() string { return n.name }

// Kind returns KindSequence.
func (n *Sequence) Kind() Kind { return KindSequence }

func (n *Sequence) node() {}

// Selector ticks its children in order, returning the first Running or
// Success result. If every child fails, or there are none, it returns
// Failure.
type Selector struct {
	children
	name string
}

// NewSelector constructs a Selector with the given children.
func NewSelector(name string, children ...Node) *Selector {
	n := &Selector{name: name}
	n.SetChildren(children...)
	return n
}

// Tick evaluates the children with Selector semantics.
func (n *Selector) Tick() Status { return selector(n.list) }

// Name returns the display name.
func (n *Selector) Name() string { return n.name }

// Kind returns KindSelector.
func (n *Selector) Kind() Kind { return KindSelector }

func (n *Selector) node() {}

func sequence(children []Node) Status {
	return iterate(children, Failure, Success)
}

func selector(children []Node) Status {
	return iterate(children, Success, Failure)
}

// iterate ticks children in order. A Running or stop result is returned
// immediately, without ticking the remaining children. Otherwise, done is
// returned.
func iterate(children []Node, stop, done Status) Status {
	for _, child := range children {
		if status := child.Tick(); status == Running || status == stop {
			return status
		}
	}
	return done
}
