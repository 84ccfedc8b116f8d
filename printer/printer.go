// Package printer renders a dom.Tree as text.
//
// Dump and SExpr are the two output forms of the command line tools; HTML
// and Outline are mostly useful when debugging the parser.
package printer

import (
	"bufio"
	"io"
	"strings"

	"github.com/heathj/htmltree/dom"
	"github.com/heathj/htmltree/dom/tag"
	"github.com/pkg/errors"
)

// Dump writes every node below the document root, one per line. Each line
// is indented with one tab per level and looks like a start tag:
//
//	<html>
//		<head>
//		<body class="x">
//			<-text>
//
// The document node itself is not printed.
func Dump(w io.Writer, t *dom.Tree) error {
	bw := bufio.NewWriter(w)
	for c := range t.Children(t.Root()) {
		for n, depth := range t.Preorder(c, dom.Everything) {
			bw.WriteString(strings.Repeat("\t", depth))
			bw.WriteString("<" + elementName(t, n))
			for a := range t.Attributes(n).All() {
				bw.WriteString(" " + a.Name)
				if a.HasValue {
					bw.WriteString(`="` + a.Value + `"`)
				}
			}
			bw.WriteString(">\n")
		}
	}
	return errors.Wrap(bw.Flush(), "write tag dump")
}

// elementName is the tag name of n, or the name an unknown element had in
// the source.
func elementName(t *dom.Tree, n dom.NodeRef) string {
	if t.Tag(n) == tag.Undefined {
		if name := t.Data(n); name != "" {
			return name
		}
	}
	return t.TagName(n)
}

// SExpr writes the element tree under start as an s-expression, e.g.
//
//	(HTML(HEAD)(BODY(class 'x')))
//
// Only structural nodes are printed; text, comments and the like are left
// out together with anything below them. Attributes come first, as
// (name 'value') pairs, followed by the children.
func SExpr(w io.Writer, t *dom.Tree, start dom.NodeRef) error {
	bw := bufio.NewWriter(w)
	t.Walk(start, dom.Visitor{
		Filter: t.IsStructural,
		Enter: func(n dom.NodeRef, _ int) {
			bw.WriteString("(" + t.Tag(n).Symbol())
			for a := range t.Attributes(n).All() {
				bw.WriteString("(" + a.Name + " '" + a.Value + "')")
			}
		},
		Leave: func(dom.NodeRef, int) {
			bw.WriteByte(')')
		},
	})
	return errors.Wrap(bw.Flush(), "write s-expression")
}

// SExprDocument writes the s-expression of the first <html> element of
// the document followed by a newline. A document without one produces
// just the newline.
func SExprDocument(w io.Writer, t *dom.Tree) error {
	if html, ok := t.FindFirst(t.Root(), tag.HTML); ok {
		if err := SExpr(w, t, html); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return errors.Wrap(err, "write s-expression")
}
