package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fixture-generator/internal/config"
	"fixture-generator/internal/diagnostic"
	"fixture-generator/internal/extract"
	"fixture-generator/internal/format"
	"fixture-generator/internal/spec"
	"fixture-generator/internal/tabular"
)

func (a *app) extractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract",
		Short: "Extract the field specification from the input table",
		Long: `Locates the field table in input_path (the first row holding a
"Source Occurs" cell), detects the document family from its values and
writes <output_path>/<FORMAT>_structure.json.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _, diags, err := a.extract(cmd)
			if err != nil {
				return err
			}

			a.conclude(cmd, diags)

			return nil
		},
	}
}

// extract runs the extraction step and returns the specification with the
// path it was saved to. A table without an occurrence column is not a
// run-level failure: its empty specification is saved and returned with an
// error diagnostic, leaving nothing to generate.
func (a *app) extract(cmd *cobra.Command) (*spec.Specification, string, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	if a.cfg.InputPath == "" {
		return nil, "", diags, fmt.Errorf("%w: input_path is not set", config.ErrInvalid)
	}

	table, err := tabular.Read(a.cfg.InputPath, a.cfg.LocateOptions())
	if err != nil {
		return nil, "", diags, fmt.Errorf("reading field table: %w", err)
	}

	tag := format.DetectTable(table.Source, table.Cells(), a.cfg.FormatOverride)

	a.logger.Info("field table located",
		zap.String("source", table.Source),
		zap.String("sheet", table.Sheet),
		zap.Int("header_row", table.HeaderRow),
		zap.Int("rows", len(table.Rows)),
		zap.Stringer("format", tag))

	s, diags, err := extract.New(tag, a.logger).Extract(table)

	report(cmd.ErrOrStderr(), diags)

	switch {
	case errors.Is(err, extract.ErrMissingOccurrenceColumn):
		a.logger.Warn("nothing to generate", zap.Error(err))
	case err != nil:
		return nil, "", diags, fmt.Errorf("extracting specification: %w", err)
	}

	path := a.cfg.StructurePath(tag)
	if err := spec.Save(s, path); err != nil {
		return nil, "", diags, fmt.Errorf("saving structure file: %w", err)
	}

	a.logger.Info("structure file written", zap.String("path", path), zap.Int("elements", s.Len()))

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "extracted %d elements (%s) to %s\n", s.Len(), tag, path)

	return s, path, diags, nil
}
