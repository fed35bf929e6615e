package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"fixture-generator/internal/config"
	"fixture-generator/internal/spec"
)

func (a *app) inspectCmd() *cobra.Command {
	var (
		tree bool
		dump bool
	)

	cmd := &cobra.Command{
		Use:         "inspect [structure-file]",
		Short:       "Summarize a structure file (default spec_file)",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{configAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.SpecFile
			if len(args) > 0 {
				path = args[0]
			}

			if path == "" {
				return fmt.Errorf("%w: no structure file given and spec_file is not set", config.ErrInvalid)
			}

			s, err := spec.Load(path)
			if err != nil {
				return fmt.Errorf("loading specification: %w", err)
			}

			out := cmd.OutOrStdout()
			summarize(out, path, s)

			if tree {
				printTree(out, s)
			}

			if dump {
				spew.Fdump(out, s.Fields())
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&tree, "tree", false, "print the element hierarchy")
	cmd.Flags().BoolVar(&dump, "dump", false, "dump every field with go-spew")

	return cmd
}

func summarize(w io.Writer, path string, s *spec.Specification) {
	_, _ = fmt.Fprintf(w, "%s\n", path)
	_, _ = fmt.Fprintf(w, "  format:   %s\n", s.Format)
	_, _ = fmt.Fprintf(w, "  elements: %d\n", s.Len())
	_, _ = fmt.Fprintf(w, "  required: %d\n", len(s.Select(spec.Required)))
	_, _ = fmt.Fprintf(w, "  optional: %d\n", len(s.Select(spec.Optional)))

	counts := s.CountByOccurrence()
	for _, c := range []spec.OccurrenceClass{spec.ExactlyOne, spec.OneOrMore, spec.ZeroOrOne, spec.ZeroOrMore, spec.Other} {
		if counts[c] > 0 {
			_, _ = fmt.Fprintf(w, "  %-8s  %d\n", c, counts[c])
		}
	}
}

func printTree(w io.Writer, s *spec.Specification) {
	s.Hierarchy().Walk(func(path []string, n *spec.Node) {
		line := strings.Repeat("  ", len(path)) + n.Name
		if n.Field != nil {
			line += fmt.Sprintf(" [%s]", n.Field.Occurrence)
		}

		_, _ = fmt.Fprintln(w, line)
	})
}
