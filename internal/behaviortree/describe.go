package behaviortree

import (
	"reflect"
	"strings"
)

// Describe renders a node and its subtree as a nested structure, e.g.
//
//	{ SEQUENCE: root, { SELECTOR: a, { LEAF: fail }, { LEAF: ok } } }
//
// Stateful decorators include their configuration and current status. Bare
// actions render as "{ ACTION }". Describe never ticks nor mutates the tree.
// The format is intended for humans, and may change.
func Describe(n Node) string {
	var b strings.Builder
	describe(&b, n)
	return b.String()
}

func describe(b *strings.Builder, n Node) {
	if isNil(n) {
		b.WriteString(`{ NIL }`)
		return
	}

	b.WriteString(`{ `)
	b.WriteString(string(n.Kind()))
	if n.Kind() != KindAction {
		b.WriteString(`: `)
		b.WriteString(n.Name())
	}

	switch n := n.(type) {
	case *FreezeStatus:
		writeLatch(b, `freeze`, n.target, n.current)
	case *CacheStatus:
		writeLatch(b, `cache`, n.target, n.current)
	}

	for _, child := range n.Children() {
		b.WriteString(`, `)
		describe(b, child)
	}

	b.WriteString(` }`)
}

func writeLatch(b *strings.Builder, label string, target, current Status) {
	b.WriteString(` (`)
	b.WriteString(label)
	b.WriteByte('=')
	b.WriteString(target.String())
	b.WriteString(` current=`)
	b.WriteString(current.String())
	b.WriteByte(')')
}

// isNil catches both a nil interface and a typed nil, e.g. (*Leaf)(nil).
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	switch v := reflect.ValueOf(n); v.Kind() {
	case reflect.Pointer, reflect.Func:
		return v.IsNil()
	}
	return false
}
