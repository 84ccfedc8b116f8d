// Command html2sexpr converts the element tree of an HTML file, starting
// at <html>, into an s-expression on stdout.
package main

import (
	"github.com/heathj/htmltree/internal/cli"
	"github.com/heathj/htmltree/printer"
)

func main() {
	cli.Main(cli.Command{
		Name:  "html2sexpr",
		Usage: "Converts the html tag tree into an s-expression.",
		Formats: map[string]cli.PrintFunc{
			"sexpr": printer.SExprDocument,
		},
		Default: "sexpr",
	})
}
