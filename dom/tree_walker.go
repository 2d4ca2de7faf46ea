package dom

import (
	"iter"

	"github.com/pkg/errors"
)

// TraversalKind selects the topology, the direction and, for descendant
// walks, the emission order of a TreeWalker.
type TraversalKind uint8

const (
	ShadowAncestors TraversalKind = iota + 1
	ShadowDescendantsRootFirst
	ShadowDescendantsRootLast
	ComposedAncestors
	ComposedDescendantsRootFirst
	ComposedDescendantsRootLast
)

var (
	ErrInvalidStartNode          = errors.New("start node is neither an element nor a text node")
	ErrUnrecognizedTraversalKind = errors.New("unrecognized traversal kind")
)

// TreeWalker walks a component tree from a fixed start node, in either the
// shadow or the composed topology, emitting the nodes that match its filter.
// A walker is immutable and carries no cursor: every call to Nodes or
// ForEach is an independent traversal, and walks may be started from inside
// the consumer of another walk.
//
// The walker only reads the tree. Mutating the tree while a walk is in
// flight is undefined.
type TreeWalker struct {
	start     *Node
	composed  bool
	rootFirst bool
	ancestors bool
	filter    NodeFilter
}

// NewTreeWalker builds a walker over start. A nil filter means elements
// only. The start node must be an element or a text node: text nodes are
// leaves, so they can head an ancestor walk or stand as a one-node
// descendant walk, but comments and fragments have no place in either
// topology.
func NewTreeWalker(start *Node, kind TraversalKind, filter NodeFilter) (*TreeWalker, error) {
	if start == nil {
		return nil, errors.Wrap(ErrInvalidStartNode, "nil node")
	}
	if !start.IsElement() && !start.IsTextNode() {
		return nil, errors.Wrapf(ErrInvalidStartNode, "node %q of type %d", start.NodeName, start.NodeType)
	}

	t := &TreeWalker{start: start, filter: filter}
	if t.filter == nil {
		t.filter = FilterElement
	}
	switch kind {
	case ShadowAncestors:
		t.ancestors = true
	case ShadowDescendantsRootFirst:
		t.rootFirst = true
	case ShadowDescendantsRootLast:
	case ComposedAncestors:
		t.composed = true
		t.ancestors = true
	case ComposedDescendantsRootFirst:
		t.composed = true
		t.rootFirst = true
	case ComposedDescendantsRootLast:
		t.composed = true
	default:
		return nil, errors.Wrapf(ErrUnrecognizedTraversalKind, "kind %d", kind)
	}
	return t, nil
}

func (t *TreeWalker) parentOf(n *Node) *Node {
	if t.composed {
		return n.ComposedParentNode()
	}
	return n.ParentNode
}

func (t *TreeWalker) childrenOf(n *Node) NodeList {
	if t.composed {
		return n.ComposedChildNodes()
	}
	return n.ChildNodes
}

// visit runs one depth-first pass below n. The filter gates emission only;
// a non-matching node is still descended into. A false from yield stops the
// whole walk: it propagates through every enclosing frame, so no further
// node is visited or emitted once the consumer declines one.
func (t *TreeWalker) visit(n *Node, yield func(*Node) bool) bool {
	if t.rootFirst && t.filter(n) && !yield(n) {
		return false
	}
	if n.IsElement() {
		for _, child := range t.childrenOf(n) {
			if !t.visit(child, yield) {
				return false
			}
		}
	}
	if !t.rootFirst && t.filter(n) && !yield(n) {
		return false
	}
	return true
}

// climb emits the start node and its successive parents up to the root.
func (t *TreeWalker) climb(yield func(*Node) bool) {
	for n := t.start; n != nil; n = t.parentOf(n) {
		if t.filter(n) && !yield(n) {
			return
		}
	}
}

// Nodes returns the walk as a lazy sequence. Each range over the sequence
// is a fresh traversal; breaking out of the range stops the walk with no
// further nodes visited.
func (t *TreeWalker) Nodes() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if t.ancestors {
			t.climb(yield)
			return
		}
		t.visit(t.start, yield)
	}
}

// ForEach runs the walk eagerly, calling fn once per matching node. fn
// reports whether the walk should continue; returning false aborts the rest
// of the walk before ForEach returns. ForEach and Nodes emit the same nodes
// in the same order and truncate at the same point for the same stop.
func (t *TreeWalker) ForEach(fn func(n *Node) bool) {
	if t.ancestors {
		t.climb(fn)
		return
	}
	t.visit(t.start, fn)
}
