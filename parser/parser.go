// Package parser builds a dom.Tree from HTML input.
//
// Tokenization and tree construction follow the HTML parsing algorithm
// as implemented by golang.org/x/net/html; this package maps the result
// onto the arena tree.
// https://html.spec.whatwg.org/multipage/parsing.html
package parser

import (
	"io"

	"github.com/heathj/htmltree/dom"
	"github.com/heathj/htmltree/dom/tag"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type htmlParserConfig struct {
	limits           dom.Limits
	scriptingEnabled bool
	log              *logrus.Entry
}

// Option configures a Parser.
type Option func(*htmlParserConfig)

// WithLimits bounds the size of the trees the parser builds.
func WithLimits(l dom.Limits) Option {
	return func(c *htmlParserConfig) {
		c.limits = l
	}
}

// WithLogger sets the logger. The default logs through the standard
// logrus logger with a component field.
func WithLogger(log *logrus.Entry) Option {
	return func(c *htmlParserConfig) {
		c.log = log
	}
}

// WithScripting sets the scripting flag, which decides how <noscript>
// content is parsed.
func WithScripting(enabled bool) Option {
	return func(c *htmlParserConfig) {
		c.scriptingEnabled = enabled
	}
}

type Parser struct {
	input  io.Reader
	config htmlParserConfig
}

func NewParser(htmlIn io.Reader, opts ...Option) *Parser {
	p := &Parser{
		input: htmlIn,
		config: htmlParserConfig{
			scriptingEnabled: true,
			log:              logrus.WithField("component", "parser"),
		},
	}
	for _, opt := range opts {
		opt(&p.config)
	}
	return p
}

// Parse reads the whole input and returns the document tree. The caller
// owns the tree and should Destroy it when done.
func (p *Parser) Parse() (*dom.Tree, error) {
	doc, err := html.ParseWithOptions(p.input, html.ParseOptionEnableScripting(p.config.scriptingEnabled))
	if err != nil {
		return nil, errors.Wrap(err, "parse html")
	}

	b := p.newBuilder()
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if err := b.insert(b.tree.Root(), c); err != nil {
			b.tree.Destroy()
			return nil, err
		}
	}
	b.done()
	return b.tree, nil
}

// ParseFragment parses the input as the contents of an element with the
// given tag, the way innerHTML is parsed. The resulting nodes are the
// children of the returned tree's root.
// https://html.spec.whatwg.org/multipage/parsing.html#html-fragment-parsing-algorithm
func (p *Parser) ParseFragment(context tag.ID) (*dom.Tree, error) {
	if context.IsPseudo() {
		return nil, errors.Wrapf(dom.ErrInvalidOperation, "fragment context %q is not an element", context)
	}
	name := context.String()
	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     name,
		DataAtom: atom.Lookup([]byte(name)),
	}
	nodes, err := html.ParseFragmentWithOptions(p.input, ctx, html.ParseOptionEnableScripting(p.config.scriptingEnabled))
	if err != nil {
		return nil, errors.Wrapf(err, "parse html fragment in <%s>", name)
	}

	b := p.newBuilder()
	for _, n := range nodes {
		if err := b.insert(b.tree.Root(), n); err != nil {
			b.tree.Destroy()
			return nil, err
		}
	}
	b.done()
	return b.tree, nil
}

// Parse is shorthand for NewParser(r, opts...).Parse().
func Parse(r io.Reader, opts ...Option) (*dom.Tree, error) {
	return NewParser(r, opts...).Parse()
}
