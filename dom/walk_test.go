package dom

import (
	"fmt"
	"strings"
	"testing"

	"github.com/heathj/htmltree/dom/tag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mixedTree builds
//
//	html
//	  head
//	  body class="x"
//	    p
//	    -text
//	    div
//	      !--
func mixedTree(t *testing.T) *Tree {
	t.Helper()
	tree := NewTree()
	html := build(t, tree, tree.Root(), tag.HTML)[0]
	kids := build(t, tree, html, tag.Head, tag.Body)
	require.NoError(t, tree.SetAttribute(kids[1], Attr("class", "x")))
	inner := build(t, tree, kids[1], tag.P, tag.Text, tag.Div)
	build(t, tree, inner[2], tag.Comment)
	return tree
}

func collect(tree *Tree, n NodeRef, keep Predicate) []string {
	var out []string
	for c, depth := range tree.Preorder(n, keep) {
		out = append(out, fmt.Sprintf("%d:%s", depth, tree.TagName(c)))
	}
	return out
}

func TestPreorder(t *testing.T) {
	tree := mixedTree(t)
	html := tree.FirstChild(tree.Root())

	tests := []struct {
		name string
		keep Predicate
		want []string
	}{
		{"unfiltered", nil, []string{"0:html", "1:head", "1:body", "2:p", "2:-text", "2:div", "3:!--"}},
		{"everything", Everything, []string{"0:html", "1:head", "1:body", "2:p", "2:-text", "2:div", "3:!--"}},
		{"structural", tree.IsStructural, []string{"0:html", "1:head", "1:body", "2:p", "2:div"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collect(tree, html, tt.keep))
		})
	}
}

func TestPreorderStopsEarly(t *testing.T) {
	tree := mixedTree(t)
	var seen int
	for range tree.Preorder(tree.Root(), nil) {
		seen++
		if seen == 3 {
			break
		}
	}
	assert.Equal(t, 3, seen)
}

func TestPreorderRootFirst(t *testing.T) {
	tree := mixedTree(t)
	var order []NodeRef
	for n := range tree.Preorder(tree.Root(), nil) {
		order = append(order, n)
	}
	require.NotEmpty(t, order)
	assert.Equal(t, tree.Root(), order[0])
	assert.Len(t, order, tree.Len())
}

func TestWalkBracketing(t *testing.T) {
	tree := mixedTree(t)
	html := tree.FirstChild(tree.Root())

	var b strings.Builder
	tree.Walk(html, Visitor{
		Filter: tree.IsStructural,
		Enter: func(n NodeRef, _ int) {
			b.WriteString("(" + tree.Tag(n).Symbol())
		},
		Leave: func(NodeRef, int) {
			b.WriteString(")")
		},
	})
	assert.Equal(t, "(HTML(HEAD)(BODY(P)(DIV)))", b.String())
}

func TestWalkDepths(t *testing.T) {
	tree := mixedTree(t)
	var entered, left []string
	tree.Walk(tree.Root(), Visitor{
		Enter: func(n NodeRef, depth int) {
			entered = append(entered, fmt.Sprintf("%d:%s", depth, tree.TagName(n)))
		},
		Leave: func(n NodeRef, depth int) {
			left = append(left, fmt.Sprintf("%d:%s", depth, tree.TagName(n)))
		},
	})
	assert.Equal(t, []string{"0:-undef", "1:html", "2:head", "2:body", "3:p", "3:-text", "3:div", "4:!--"}, entered)
	assert.Equal(t, []string{"2:head", "3:p", "3:-text", "4:!--", "3:div", "2:body", "1:html", "0:-undef"}, left)
}

func TestWalkEmptyTree(t *testing.T) {
	tree := NewTree()
	var visits int
	tree.Walk(tree.Root(), Visitor{Enter: func(NodeRef, int) { visits++ }})
	assert.Equal(t, 1, visits)

	visits = 0
	for c := range tree.Children(tree.Root()) {
		tree.Walk(c, Visitor{Enter: func(NodeRef, int) { visits++ }})
	}
	assert.Equal(t, 0, visits)
}

func TestTextBetweenSiblings(t *testing.T) {
	tree := NewTree()
	kids := build(t, tree, tree.Root(), tag.P, tag.Text, tag.P)
	require.NoError(t, tree.SetData(kids[1], "between"))

	var structural, all []NodeRef
	for c := range tree.Children(tree.Root()) {
		for n := range tree.Preorder(c, tree.IsStructural) {
			structural = append(structural, n)
		}
		for n := range tree.Preorder(c, Everything) {
			all = append(all, n)
		}
	}
	assert.Equal(t, []NodeRef{kids[0], kids[2]}, structural)
	assert.Equal(t, kids, all)
}

func TestIsStructural(t *testing.T) {
	tree := NewTree()
	for id := tag.ID(0); int(id) < tag.Count(); id++ {
		n, err := tree.CreateNode(id)
		require.NoError(t, err)
		switch id {
		case tag.Undefined, tag.Text, tag.Comment, tag.Doctype, tag.EndOfFile:
			assert.False(t, tree.IsStructural(n), id.String())
		default:
			assert.True(t, tree.IsStructural(n), id.String())
		}
	}
}
