// Package dom holds the parsed document: an arena of tagged nodes with
// ordered attributes, and depth-first traversal over it.
//
// A Tree owns all of its nodes. A NodeRef is an index into the tree's
// arena and is only meaningful for the tree that created it. Parent and
// sibling links are indices too, so nothing is freed node by node: Destroy
// drops the whole arena at once.
package dom

import (
	"iter"

	"github.com/heathj/htmltree/dom/tag"
	"github.com/pkg/errors"
)

// NodeRef is a handle to a node of a Tree. The zero value refers to no
// node.
type NodeRef uint32

// None refers to no node.
const None NodeRef = 0

const rootRef NodeRef = 1

// Limits bounds the growth of a Tree. A zero field means no limit.
type Limits struct {
	MaxNodes      int
	MaxAttributes int
}

type treeConfig struct {
	limits Limits
}

// Option configures a Tree.
type Option func(*treeConfig)

// WithLimits caps the number of nodes and attributes a tree may hold.
func WithLimits(l Limits) Option {
	return func(c *treeConfig) {
		c.limits = l
	}
}

type node struct {
	tag                                        tag.ID
	attrs                                      AttributeList
	data                                       string
	parent, firstChild, lastChild, nextSibling NodeRef
}

// Tree is an arena of nodes rooted at a document node.
type Tree struct {
	config    treeConfig
	nodes     []node
	numAttrs  int
	destroyed bool
}

// NewTree returns a tree holding only its document node. The document
// node has the Undefined tag.
func NewTree(opts ...Option) *Tree {
	t := &Tree{}
	for _, opt := range opts {
		opt(&t.config)
	}
	// slot 0 backs None so that the zero NodeRef never aliases a node
	t.nodes = make([]node, 2, 64)
	return t
}

// Root returns the document node.
func (t *Tree) Root() NodeRef {
	t.check()
	return rootRef
}

// Len returns the number of nodes in the tree, the document node included.
func (t *Tree) Len() int {
	if t.destroyed {
		return 0
	}
	return len(t.nodes) - 1
}

// Destroy releases the arena. Every NodeRef obtained from t becomes
// invalid, and any further use of t other than Len panics.
func (t *Tree) Destroy() {
	t.nodes = nil
	t.numAttrs = 0
	t.destroyed = true
}

// CreateNode allocates a detached node.
func (t *Tree) CreateNode(id tag.ID) (NodeRef, error) {
	t.check()
	if limit := t.config.limits.MaxNodes; limit > 0 && t.Len() >= limit {
		return None, errors.Wrapf(ErrOutOfMemory, "node arena is full at %d nodes", limit)
	}
	t.nodes = append(t.nodes, node{tag: id})
	return NodeRef(len(t.nodes) - 1), nil
}

// AppendChild links child as the last child of parent. The child must be
// detached; it may not be the root or an ancestor of parent. On error the
// tree is left as it was.
func (t *Tree) AppendChild(parent, child NodeRef) error {
	t.check()
	if !t.valid(parent) || !t.valid(child) {
		return errors.Wrapf(ErrInvalidOperation, "append %d to %d: no such node", child, parent)
	}
	if child == rootRef {
		return errors.Wrap(ErrInvalidOperation, "the document node cannot be a child")
	}
	if p := t.nodes[child].parent; p != None {
		return errors.Wrapf(ErrInvalidOperation, "node %d already has parent %d", child, p)
	}
	for a := parent; a != None; a = t.nodes[a].parent {
		if a == child {
			return errors.Wrapf(ErrInvalidOperation, "node %d is an ancestor of %d", child, parent)
		}
	}

	p := &t.nodes[parent]
	if p.lastChild == None {
		p.firstChild = child
	} else {
		t.nodes[p.lastChild].nextSibling = child
	}
	p.lastChild = child
	t.nodes[child].parent = parent
	return nil
}

// SetAttribute appends a to the attributes of n.
func (t *Tree) SetAttribute(n NodeRef, a Attribute) error {
	t.check()
	if !t.valid(n) {
		return errors.Wrapf(ErrInvalidOperation, "set attribute on %d: no such node", n)
	}
	if limit := t.config.limits.MaxAttributes; limit > 0 && t.numAttrs >= limit {
		return errors.Wrapf(ErrOutOfMemory, "attribute storage is full at %d attributes", limit)
	}
	if err := t.nodes[n].attrs.Append(a); err != nil {
		return err
	}
	t.numAttrs++
	return nil
}

// SetData sets the character data of n. Text and comment nodes keep
// their contents here, doctype nodes their name. Undefined element nodes
// keep the element name they had in the source.
func (t *Tree) SetData(n NodeRef, data string) error {
	t.check()
	if !t.valid(n) {
		return errors.Wrapf(ErrInvalidOperation, "set data on %d: no such node", n)
	}
	t.nodes[n].data = data
	return nil
}

// Tag returns the tag of n.
func (t *Tree) Tag(n NodeRef) tag.ID {
	return t.get(n).tag
}

// TagName is the registry name of the tag of n.
func (t *Tree) TagName(n NodeRef) string {
	return t.get(n).tag.String()
}

// Data returns what SetData stored on n, or "".
func (t *Tree) Data(n NodeRef) string {
	return t.get(n).data
}

// Attributes returns the attributes of n. Appending to the returned list
// does not change the tree.
func (t *Tree) Attributes(n NodeRef) AttributeList {
	return t.get(n).attrs.view()
}

// Parent returns the parent of n, or None for the root and for nodes
// that were never appended.
func (t *Tree) Parent(n NodeRef) NodeRef {
	return t.get(n).parent
}

// FirstChild returns the first child of n or None.
func (t *Tree) FirstChild(n NodeRef) NodeRef {
	return t.get(n).firstChild
}

// LastChild returns the most recently appended child of n or None.
func (t *Tree) LastChild(n NodeRef) NodeRef {
	return t.get(n).lastChild
}

// NextSibling returns the node appended after n to the same parent, or
// None if n is the last child.
func (t *Tree) NextSibling(n NodeRef) NodeRef {
	return t.get(n).nextSibling
}

// Children yields the children of n in append order.
func (t *Tree) Children(n NodeRef) iter.Seq[NodeRef] {
	t.get(n)
	return func(yield func(NodeRef) bool) {
		for c := t.FirstChild(n); c != None; c = t.NextSibling(c) {
			if !yield(c) {
				return
			}
		}
	}
}

// FindFirst returns the first node below or at n, in pre-order, whose tag
// is id.
func (t *Tree) FindFirst(n NodeRef, id tag.ID) (NodeRef, bool) {
	for c := range t.Preorder(n, nil) {
		if t.nodes[c].tag == id {
			return c, true
		}
	}
	return None, false
}

func (t *Tree) valid(n NodeRef) bool {
	return n != None && int(n) < len(t.nodes)
}

func (t *Tree) get(n NodeRef) *node {
	t.check()
	if !t.valid(n) {
		panic(errors.Errorf("dom: invalid node reference %d", n))
	}
	return &t.nodes[n]
}

func (t *Tree) check() {
	if t.destroyed {
		panic("dom: use of destroyed tree")
	}
}
