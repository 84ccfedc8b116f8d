// Package cli holds what the command line tools have in common: argument
// checking, logging setup and loading a file into a tree.
package cli

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/heathj/htmltree/dom"
	"github.com/heathj/htmltree/parser"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// PrintFunc writes a tree to w.
type PrintFunc func(w io.Writer, t *dom.Tree) error

// Command describes one of the tools.
type Command struct {
	Name  string
	Usage string
	// Formats maps the values accepted by -format to printers. The flag is
	// only registered when there is more than one.
	Formats map[string]PrintFunc
	Default string
}

// Main runs c with the process arguments and exits.
func Main(c Command) {
	os.Exit(c.Run(os.Args[1:], os.Stdout, os.Stderr))
}

// Run parses args, loads the named file, prints it and returns the exit
// status.
func (c Command) Run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet(c.Name, flag.ContinueOnError)
	flags.SetOutput(stderr)
	verbose := flags.Bool("v", false, "log debug output to stderr")
	maxNodes := flags.Int("max-nodes", 0, "fail on documents with more nodes (0 means no limit)")
	format := &c.Default
	if len(c.Formats) > 1 {
		format = flags.String("format", c.Default, "output format: "+strings.Join(slices.Sorted(maps.Keys(c.Formats)), ", "))
	}
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Use: %s [flags] <path_to_html_file>\n", c.Name)
		if c.Usage != "" {
			fmt.Fprintln(stderr, c.Usage)
		}
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return 1
	}

	printTree, ok := c.Formats[*format]
	if !ok {
		fmt.Fprintf(stderr, "unknown format %q\n", *format)
		flags.Usage()
		return 1
	}

	log := newLogger(stderr, *verbose)
	path := flags.Arg(0)
	if err := run(path, dom.Limits{MaxNodes: *maxNodes}, log, printTree, stdout); err != nil {
		log.WithError(err).WithField("file", path).Error("failed")
		return 1
	}
	return 0
}

func run(path string, limits dom.Limits, log *logrus.Entry, printTree PrintFunc, stdout io.Writer) error {
	html, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "can't open html file")
	}
	log.WithFields(logrus.Fields{"file": path, "bytes": len(html)}).Debug("loaded")

	tree, err := parser.NewParser(bytes.NewReader(html),
		parser.WithLimits(limits),
		parser.WithLogger(log.WithField("component", "parser")),
	).Parse()
	if err != nil {
		return err
	}
	defer tree.Destroy()

	return printTree(stdout, tree)
}

func newLogger(w io.Writer, verbose bool) *logrus.Entry {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.WarnLevel)
	}
	return logrus.NewEntry(l)
}
