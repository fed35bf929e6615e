package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fixture-generator/internal/common"
	"fixture-generator/internal/config"
	"fixture-generator/internal/diagnostic"
	"fixture-generator/internal/document"
	"fixture-generator/internal/fixture"
	"fixture-generator/internal/spec"
)

const passBoth = "both"

func (a *app) generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate [required|optional|both]",
		Short: "Generate fixtures from spec_file and max_file",
		Long: `Writes one fixture per selected field into output_directory, each a copy
of max_file with that field removed or commented out, plus a manifest of
the element names. "both" (the default) runs the required pass and then
the optional pass.`,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{spec.Required.String(), spec.Optional.String(), passBoth},
		RunE: func(cmd *cobra.Command, args []string) error {
			passes, err := parsePasses(args)
			if err != nil {
				return err
			}

			if a.cfg.SpecFile == "" {
				return fmt.Errorf("%w: spec_file is not set", config.ErrInvalid)
			}

			s, err := spec.Load(a.cfg.SpecFile)
			if err != nil {
				return fmt.Errorf("loading specification: %w", err)
			}

			diags, err := a.generate(cmd, s, a.cfg.SpecFile, passes)
			if err != nil {
				return err
			}

			a.conclude(cmd, diags)

			return nil
		},
	}
}

func (a *app) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Extract the specification, then generate required and optional fixtures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, path, diags, err := a.extract(cmd)
			if err != nil {
				return err
			}

			passDiags, err := a.generate(cmd, s, path, []spec.Requirement{spec.Required, spec.Optional})
			if err != nil {
				return err
			}

			diags.Merge(passDiags)
			a.conclude(cmd, diags)

			return nil
		},
	}
}

func parsePasses(args []string) ([]spec.Requirement, error) {
	pass, ok := common.First(args)
	if !ok || pass == passBoth {
		return []spec.Requirement{spec.Required, spec.Optional}, nil
	}

	r, ok := spec.ParseRequirement(pass)
	if !ok {
		return nil, fmt.Errorf("unknown pass %q", pass)
	}

	return []spec.Requirement{r}, nil
}

// generate runs the requested passes over max_file, recording fixtures in the
// ledger when one is configured. The diagnostics of all passes are returned.
func (a *app) generate(
	cmd *cobra.Command,
	s *spec.Specification,
	specFile string,
	passes []spec.Requirement,
) (diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	ctx := cmd.Context()

	if a.cfg.MaxFile == "" {
		return diags, fmt.Errorf("%w: max_file is not set", config.ErrInvalid)
	}

	sample, err := fixture.LoadSample(a.cfg.MaxFile, a.cfg.FormatOverride, document.WithIndent(a.cfg.Indent))
	if err != nil {
		return diags, err
	}

	if s.Len() > 0 && s.Format != sample.Document.Format() {
		a.logger.Warn("specification and sample families differ",
			zap.Stringer("specification", s.Format),
			zap.Stringer("sample", sample.Document.Format()))
	}

	rec, err := a.openRecorder(ctx, cmd.Name(), specFile, sample)
	if err != nil {
		return diags, err
	}
	defer rec.close()

	gen := fixture.New(a.cfg.FixtureOptions(), nil, a.logger)
	out := cmd.OutOrStdout()

	for _, r := range passes {
		res, err := gen.Generate(ctx, s, r, sample)
		if err != nil {
			return diags, fmt.Errorf("generating %s fixtures: %w", r, err)
		}

		report(cmd.ErrOrStderr(), res.Diagnostics)
		diags.Merge(res.Diagnostics)

		_, _ = fmt.Fprintf(out, "%s: %d of %d fields mutated (%s, %s)\n",
			r, len(res.Fixtures), res.Selected, res.Format, res.Mode)

		if common.IsEmpty(res.Fixtures) {
			continue
		}

		_, _ = fmt.Fprintf(out, "%s: manifest %s\n", r, res.Manifest)

		if err := rec.record(ctx, res); err != nil {
			return diags, err
		}
	}

	return diags, rec.finish(ctx)
}

// conclude prints the closing line of a command. Error diagnostics are
// reported but do not fail the command; only run-level errors do.
func (a *app) conclude(cmd *cobra.Command, d diagnostic.Diagnostics) {
	out := cmd.OutOrStdout()

	if !d.HasErrors() {
		_, _ = fmt.Fprintf(out, "done: %d warning(s), %d info\n", len(d.Warnings), len(d.Infos))

		return
	}

	a.logger.Warn("finished with error diagnostics", zap.Error(d.Error()))

	_, _ = fmt.Fprintf(out, "done with %d error(s), %d warning(s), %d info\n",
		len(d.Errors), len(d.Warnings), len(d.Infos))
}
