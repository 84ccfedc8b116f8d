package printer

import (
	"bufio"
	"io"
	"strings"

	"github.com/heathj/htmltree/dom"
	"github.com/heathj/htmltree/dom/tag"
	"github.com/pkg/errors"
)

// https://html.spec.whatwg.org/#escapingString
func escapeString(s string, attrVal bool) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "\u00A0", "&nbsp;")
	if attrVal {
		s = strings.ReplaceAll(s, "\"", "&quot;")
	} else {
		s = strings.ReplaceAll(s, "<", "&lt;")
		s = strings.ReplaceAll(s, ">", "&gt;")
	}
	return s
}

// https://html.spec.whatwg.org/#void-elements
func isVoid(id tag.ID) bool {
	switch id {
	case tag.Area, tag.Base, tag.BaseFont, tag.BgSound, tag.BR, tag.Col, tag.Embed,
		tag.Frame, tag.HR, tag.Img, tag.Input, tag.KeyGen, tag.Link, tag.Meta,
		tag.Param, tag.Source, tag.Track, tag.WBR:
		return true
	}
	return false
}

func isRawText(id tag.ID) bool {
	switch id {
	case tag.Style, tag.Script, tag.XMP, tag.IFrame, tag.NoEmbed, tag.NoFrames, tag.PlainText, tag.NoScript:
		return true
	}
	return false
}

// HTML serializes the children of n back to markup.
// https://html.spec.whatwg.org/#serialising-html-fragments
func HTML(w io.Writer, t *dom.Tree, n dom.NodeRef) error {
	bw := bufio.NewWriter(w)
	serializeChildren(bw, t, n)
	return errors.Wrap(bw.Flush(), "write html")
}

func serializeChildren(w *bufio.Writer, t *dom.Tree, n dom.NodeRef) {
	if isVoid(t.Tag(n)) {
		return
	}
	for child := range t.Children(n) {
		switch id := t.Tag(child); id {
		case tag.Text:
			if isRawText(t.Tag(n)) {
				w.WriteString(t.Data(child))
			} else {
				w.WriteString(escapeString(t.Data(child), false))
			}
		case tag.Comment:
			w.WriteString("<!--" + t.Data(child) + "-->")
		case tag.Doctype:
			w.WriteString("<!DOCTYPE " + t.Data(child) + ">")
		case tag.EndOfFile:
		default:
			name := elementName(t, child)
			w.WriteString("<" + name)
			for a := range t.Attributes(child).All() {
				w.WriteString(" " + a.Name + `="` + escapeString(a.Value, true) + `"`)
			}
			w.WriteString(">")
			if isVoid(id) {
				continue
			}
			serializeChildren(w, t, child)
			w.WriteString("</" + name + ">")
		}
	}
}
