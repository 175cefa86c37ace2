// Command pjsonlint is a thin CLI front-end over package pjson: it reads a
// document from a file argument (or stdin), resolves Features from flags,
// parses it with the default internal/value Builder, and either prints the
// decoded value tree or the formatted Error Journal.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kalenwatt/pjson"
	"github.com/kalenwatt/pjson/internal/value"
)

// errLintFailed signals a document that failed to parse; runLint has
// already printed the Error Journal itself, so main exits non-zero without
// printing this error's text again.
var errLintFailed = errors.New("pjsonlint: document failed validation")

type lintOptions struct {
	strict                       bool
	allowComments                bool
	allowSingleQuotes            bool
	allowNumericKeys             bool
	allowDroppedNullPlaceholders bool
	allowSpecialFloats           bool
	rejectDupKeys                bool
	failIfExtra                  bool
	strictRoot                   bool
	stackLimit                   int
	verbose                      bool
}

func (o *lintOptions) features() pjson.Features {
	if o.strict {
		return pjson.StrictFeatures()
	}
	return pjson.Features{
		AllowComments:                o.allowComments,
		AllowSingleQuotes:            o.allowSingleQuotes,
		AllowNumericKeys:             o.allowNumericKeys,
		AllowDroppedNullPlaceholders: o.allowDroppedNullPlaceholders,
		AllowSpecialFloats:           o.allowSpecialFloats,
		RejectDupKeys:                o.rejectDupKeys,
		FailIfExtra:                  o.failIfExtra,
		StrictRoot:                   o.strictRoot,
		StackLimit:                   o.stackLimit,
		CollectComments:              o.allowComments,
	}
}

func newRootCommand() *cobra.Command {
	opts := &lintOptions{}

	cmd := &cobra.Command{
		Use:           "pjsonlint [FILE]",
		Short:         "Parse a JSON document and report its value tree or its errors",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.strict, "strict", false, "use the strict feature preset (overrides the individual allow-* flags)")
	flags.BoolVar(&opts.allowComments, "allow-comments", true, "allow // and /* */ comments")
	flags.BoolVar(&opts.allowSingleQuotes, "allow-single-quotes", false, "allow single-quoted strings")
	flags.BoolVar(&opts.allowNumericKeys, "allow-numeric-keys", false, "allow bare numbers as object member names")
	flags.BoolVar(&opts.allowDroppedNullPlaceholders, "allow-dropped-null-placeholders", false, "treat an omitted array/object value as null")
	flags.BoolVar(&opts.allowSpecialFloats, "allow-special-floats", false, "allow NaN, Infinity, -Infinity literals")
	flags.BoolVar(&opts.rejectDupKeys, "reject-dup-keys", false, "fail on duplicate object keys instead of letting the later one win")
	flags.BoolVar(&opts.failIfExtra, "fail-if-extra", false, "fail if non-whitespace content follows the root value")
	flags.BoolVar(&opts.strictRoot, "strict-root", false, "require the root value to be an array or object")
	flags.IntVar(&opts.stackLimit, "stack-limit", 1000, "maximum nesting depth")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "trace parser state transitions to stderr")

	return cmd
}

func runLint(cmd *cobra.Command, args []string, opts *lintOptions) error {
	data, err := readInput(cmd, args)
	if err != nil {
		return errors.Wrap(err, "pjsonlint: reading input")
	}

	p := pjson.NewParser(opts.features())
	if opts.verbose {
		log := logrus.New()
		log.SetOutput(cmd.ErrOrStderr())
		log.SetLevel(logrus.TraceLevel)
		p.Logger = log
	}

	var b value.TreeBuilder
	root := b.NewNull()
	ok, journal := p.Parse(data, b, root)
	if !ok {
		fmt.Fprint(cmd.ErrOrStderr(), journal)
		return errLintFailed
	}
	if journal != "" {
		fmt.Fprint(cmd.ErrOrStderr(), journal)
	}
	fmt.Fprintln(cmd.OutOrStdout(), root.(*value.Value).Dump())
	return nil
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if err != errLintFailed {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
