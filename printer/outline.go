package printer

import (
	"strconv"
	"strings"

	"github.com/heathj/htmltree/dom"
	"github.com/heathj/htmltree/dom/tag"
	tp "github.com/xlab/treeprint"
)

// Outline draws the subtree under n with box-drawing characters, below a
// "." line. Text and comment nodes show a quoted excerpt of their data.
func Outline(t *dom.Tree, n dom.NodeRef) string {
	p := tp.New()
	outline(p, t, n)
	return p.String()
}

func outline(p tp.Tree, t *dom.Tree, n dom.NodeRef) {
	if t.FirstChild(n) == dom.None {
		p.AddNode(label(t, n))
		return
	}
	branch := p.AddBranch(label(t, n))
	for c := range t.Children(n) {
		outline(branch, t, c)
	}
}

const excerptLen = 24

func label(t *dom.Tree, n dom.NodeRef) string {
	id := t.Tag(n)
	switch id {
	case tag.Text, tag.Comment:
		data := t.Data(n)
		if r := []rune(data); len(r) > excerptLen {
			data = string(r[:excerptLen]) + "…"
		}
		return id.String() + " " + strconv.Quote(data)
	case tag.Doctype:
		return id.String() + " " + t.Data(n)
	}
	var b strings.Builder
	b.WriteString(elementName(t, n))
	for a := range t.Attributes(n).All() {
		b.WriteString(" " + a.Name)
		if a.HasValue {
			b.WriteString("=" + strconv.Quote(a.Value))
		}
	}
	return b.String()
}
