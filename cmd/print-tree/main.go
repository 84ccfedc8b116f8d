// Command print-tree parses an HTML file and prints every node of the
// document as an indented start tag.
package main

import (
	"io"

	"github.com/heathj/htmltree/dom"
	"github.com/heathj/htmltree/internal/cli"
	"github.com/heathj/htmltree/printer"
)

func main() {
	cli.Main(cli.Command{
		Name:  "print-tree",
		Usage: "Prints the parsed tree, one tab of indentation per level.",
		Formats: map[string]cli.PrintFunc{
			"dump": printer.Dump,
			"outline": func(w io.Writer, t *dom.Tree) error {
				_, err := io.WriteString(w, printer.Outline(t, t.Root()))
				return err
			},
			"html": func(w io.Writer, t *dom.Tree) error {
				return printer.HTML(w, t, t.Root())
			},
		},
		Default: "dump",
	})
}
