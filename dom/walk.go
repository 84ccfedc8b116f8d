package dom

import (
	"iter"

	"github.com/heathj/htmltree/dom/tag"
)

// Predicate decides whether a traversal descends into a node.
type Predicate func(NodeRef) bool

// Visitor receives the nodes of a depth-first walk. Enter is called before
// the children of a node, Leave after them. A node rejected by Filter is
// skipped together with its subtree and neither hook sees it. Nil fields
// are ignored; a nil Filter accepts every node.
type Visitor struct {
	Filter Predicate
	Enter  func(n NodeRef, depth int)
	Leave  func(n NodeRef, depth int)
}

// IsStructural reports whether n is a markup element. Text, comment,
// doctype, end-of-file and undefined nodes are not.
func (t *Tree) IsStructural(n NodeRef) bool {
	return !t.Tag(n).IsPseudo()
}

// Everything accepts every node.
func Everything(NodeRef) bool {
	return true
}

// Walk visits n and its descendants depth-first, left to right. n is
// visited at depth 0.
func (t *Tree) Walk(n NodeRef, v Visitor) {
	t.walk(n, 0, &v)
}

func (t *Tree) walk(n NodeRef, depth int, v *Visitor) {
	if v.Filter != nil && !v.Filter(n) {
		return
	}
	if v.Enter != nil {
		v.Enter(n, depth)
	}
	for c := t.FirstChild(n); c != None; c = t.NextSibling(c) {
		t.walk(c, depth+1, v)
	}
	if v.Leave != nil {
		v.Leave(n, depth)
	}
}

// Preorder yields n and its descendants with their depth relative to n,
// in the order Walk would enter them. keep works like Visitor.Filter.
func (t *Tree) Preorder(n NodeRef, keep Predicate) iter.Seq2[NodeRef, int] {
	t.get(n)
	return func(yield func(NodeRef, int) bool) {
		t.preorder(n, 0, keep, yield)
	}
}

func (t *Tree) preorder(n NodeRef, depth int, keep Predicate, yield func(NodeRef, int) bool) bool {
	if keep != nil && !keep(n) {
		return true
	}
	if !yield(n, depth) {
		return false
	}
	for c := t.FirstChild(n); c != None; c = t.NextSibling(c) {
		if !t.preorder(c, depth+1, keep, yield) {
			return false
		}
	}
	return true
}

// ElementsByTag returns every node below or at n whose tag is id, in
// document order.
func (t *Tree) ElementsByTag(n NodeRef, id tag.ID) []NodeRef {
	var found []NodeRef
	for c := range t.Preorder(n, nil) {
		if t.Tag(c) == id {
			found = append(found, c)
		}
	}
	return found
}
