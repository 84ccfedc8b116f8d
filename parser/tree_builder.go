package parser

import (
	"github.com/heathj/htmltree/dom"
	"github.com/heathj/htmltree/dom/tag"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
)

// treeBuilder copies an x/net/html node graph into a dom.Tree.
type treeBuilder struct {
	tree    *dom.Tree
	log     *logrus.Entry
	unknown map[string]int
}

func (p *Parser) newBuilder() *treeBuilder {
	return &treeBuilder{
		tree:    dom.NewTree(dom.WithLimits(p.config.limits)),
		log:     p.config.log,
		unknown: make(map[string]int),
	}
}

func (b *treeBuilder) insert(parent dom.NodeRef, n *html.Node) error {
	id, ok := b.tagFor(n)
	if !ok {
		return nil
	}

	ref, err := b.tree.CreateNode(id)
	if err != nil {
		return errors.Wrapf(err, "create <%s>", n.Data)
	}
	switch n.Type {
	case html.ElementNode:
		if id == tag.Undefined {
			if err := b.tree.SetData(ref, n.Data); err != nil {
				return err
			}
		}
		for _, a := range n.Attr {
			name := a.Key
			if a.Namespace != "" {
				name = a.Namespace + ":" + a.Key
			}
			if err := b.tree.SetAttribute(ref, dom.Attr(name, a.Val)); err != nil {
				return errors.Wrapf(err, "attribute %s of <%s>", name, n.Data)
			}
		}
	case html.TextNode, html.CommentNode, html.DoctypeNode, html.RawNode:
		if err := b.tree.SetData(ref, n.Data); err != nil {
			return err
		}
	}
	if err := b.tree.AppendChild(parent, ref); err != nil {
		return err
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := b.insert(ref, c); err != nil {
			return err
		}
	}
	return nil
}

func (b *treeBuilder) tagFor(n *html.Node) (tag.ID, bool) {
	switch n.Type {
	case html.ElementNode:
		id := tag.Lookup(n.Data)
		if id == tag.Undefined {
			b.unknown[n.Data]++
		}
		return id, true
	case html.TextNode, html.RawNode:
		return tag.Text, true
	case html.CommentNode:
		return tag.Comment, true
	case html.DoctypeNode:
		return tag.Doctype, true
	default:
		b.log.WithField("type", n.Type).Debug("skipping node")
		return tag.Undefined, false
	}
}

func (b *treeBuilder) done() {
	for name, count := range b.unknown {
		b.log.WithFields(logrus.Fields{
			"tag":   name,
			"count": count,
		}).Debug("unknown tag name")
	}
	b.log.WithField("nodes", b.tree.Len()).Debug("tree built")
}
