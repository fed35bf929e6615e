package fixture

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"fixture-generator/internal/common"
	"fixture-generator/internal/diagnostic"
	"fixture-generator/internal/document"
	"fixture-generator/internal/format"
	"fixture-generator/internal/mutate"
	"fixture-generator/internal/output"
	"fixture-generator/internal/spec"
)

const dirPerm = 0o755

// Options configures a Generator. The value is fixed for the generator's lifetime.
type Options struct {
	OutputDirectory string
	// Prefix is prepended to every fixture name. Indexed naming falls back
	// to DefaultPrefix when empty.
	Prefix       string
	Naming       Naming
	Mode         mutate.Mode
	PathPrefixes []string
	// Workers bounds concurrent field mutations; values below 2 run sequentially.
	Workers int
}

// Sample is the maximal document fixtures are derived from.
type Sample struct {
	// Path is the file the sample was read from; its extension names the fixtures.
	Path     string
	Document document.Document
}

// LoadSample reads a sample document, classifying it with the override table.
// A sample of no known family is kept as raw text so that Generate reports it.
func LoadSample(path string, overrides map[string]string, opts ...document.Option) (Sample, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Sample{}, fmt.Errorf("failed to read sample %s: %w", path, err)
	}

	tag := format.Classify(path, content, overrides)

	doc, err := document.Parse(content, tag, opts...)
	switch {
	case errors.Is(err, document.ErrUnsupportedFormat):
		return Sample{Path: path, Document: document.NewText(tag, content)}, nil
	case err != nil:
		return Sample{}, fmt.Errorf("failed to parse sample %s as %s: %w", path, tag, err)
	}

	return Sample{Path: path, Document: doc}, nil
}

// Extension returns the fixture file extension.
func (s Sample) Extension() string {
	if ext := common.Ext(s.Path); ext != "" {
		return ext
	}

	return s.Document.Format().Extension()
}

// Fixture is one generated file.
type Fixture struct {
	// Index is the field's 1-based position among the selected fields.
	Index     int
	Field     *spec.FieldSpec
	FieldPath string
	Filename  string
	// Count is the number of nodes the mutation touched.
	Count int
}

// Result summarizes one requirement pass.
type Result struct {
	Requirement spec.Requirement
	Format      format.Tag
	Mode        mutate.Mode
	// Selected is the number of fields matching the requirement.
	Selected int
	Fixtures []Fixture
	// Manifest is the manifest file name, empty when no fixture was produced.
	Manifest    string
	Diagnostics diagnostic.Diagnostics
}

// ElementNames returns the element names of the produced fixtures in order.
func (r *Result) ElementNames() []string {
	names := make([]string, len(r.Fixtures))
	for i, f := range r.Fixtures {
		names[i] = f.Field.ElementName
	}

	return names
}

// Generator produces fixtures.
type Generator struct {
	opts     Options
	registry *mutate.Registry
	logger   *zap.Logger
}

// New creates a generator. A nil registry means mutate.DefaultRegistry.
func New(opts Options, registry *mutate.Registry, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}

	if registry == nil {
		registry = mutate.DefaultRegistry(logger)
	}

	if opts.PathPrefixes == nil {
		opts.PathPrefixes = DefaultPathPrefixes
	}

	return &Generator{opts: opts, registry: registry, logger: logger}
}

// slot holds the outcome of one selected field.
type slot struct {
	fixture *Fixture
	path    string
	reason  error
}

// Generate runs one requirement pass over the sample.
//
// Fields absent from the sample, malformed paths and unparsable documents
// are reported in Result.Diagnostics. A family without a strategy skips the
// pass with a diagnostic. Errors are returned only for run-level failures
// such as an unwritable output directory or a cancelled context.
func (g *Generator) Generate(ctx context.Context, s *spec.Specification, r spec.Requirement, sample Sample) (*Result, error) {
	tag := sample.Document.Format()
	result := &Result{Requirement: r, Format: tag, Mode: g.opts.Mode}

	logger := g.logger.With(
		zap.Stringer("requirement", r),
		zap.Stringer("format", tag),
		zap.Stringer("mode", g.opts.Mode))

	strategy, err := g.registry.Lookup(tag)
	if err != nil {
		result.Diagnostics.AddError(diagnostic.CodeUnsupportedFormat, err.Error(), "", sample.Path)
		logger.Warn("skipping pass", zap.Error(err))

		return result, nil
	}

	fields := s.Select(r)
	result.Selected = len(fields)

	logger.Info("generating fixtures", zap.Int("fields", len(fields)))

	if err := os.MkdirAll(g.opts.OutputDirectory, dirPerm); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	slots := make([]slot, len(fields))
	ext := sample.Extension()

	process := func(i int) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		out, err := g.generateOne(strategy, fields[i], i+1, sample, ext, r)
		if err != nil {
			return err
		}

		slots[i] = out

		return nil
	}

	if err := g.run(ctx, len(fields), process); err != nil {
		return nil, err
	}

	for i, sl := range slots {
		f := fields[i]

		if sl.fixture == nil {
			addReason(&result.Diagnostics, f.ElementName, sl.path, sl.reason)
			logger.Info("field skipped",
				zap.String("element", f.ElementName),
				zap.String("path", sl.path),
				zap.NamedError("reason", sl.reason))

			continue
		}

		result.Fixtures = append(result.Fixtures, *sl.fixture)
		logger.Info("fixture generated",
			zap.String("element", f.ElementName),
			zap.String("file", sl.fixture.Filename))
	}

	if common.IsEmpty(result.Fixtures) {
		logger.Info("no fixtures produced")

		return result, nil
	}

	manifest := output.File{
		Filename: ManifestName(r),
		Content:  []byte(strings.Join(result.ElementNames(), "\n") + "\n"),
	}

	if err := output.WriteFiles([]output.File{manifest}, g.opts.OutputDirectory); err != nil {
		return nil, err
	}

	result.Manifest = manifest.Filename

	logger.Info("pass complete",
		zap.Int("fixtures", len(result.Fixtures)),
		zap.Int("skipped", result.Selected-len(result.Fixtures)),
		zap.String("manifest", manifest.Filename))

	return result, nil
}

// run calls fn for every index, sequentially or on a bounded errgroup.
func (g *Generator) run(ctx context.Context, n int, fn func(i int) error) error {
	if g.opts.Workers < 2 {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}

		return nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.opts.Workers)

	for i := 0; i < n; i++ {
		i := i
		if egCtx.Err() != nil {
			break
		}

		eg.Go(func() error {
			return fn(i)
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}

func (g *Generator) generateOne(
	strategy mutate.Strategy,
	f *spec.FieldSpec,
	index int,
	sample Sample,
	ext string,
	r spec.Requirement,
) (slot, error) {
	path := FieldPath(f, sample.Document.Format(), g.opts.PathPrefixes)

	out, err := strategy.Mutate(sample.Document.Clone(), path, g.opts.Mode)
	if err != nil {
		return slot{}, fmt.Errorf("mutating %s: %w", f.ElementName, err)
	}

	if !out.Changed {
		return slot{path: path, reason: out.Reason}, nil
	}

	content, err := out.Document.Encode()
	if err != nil {
		return slot{}, fmt.Errorf("encoding fixture for %s: %w", f.ElementName, err)
	}

	name := g.opts.fileName(r, f.ElementName, index, ext)

	if err := output.WriteFile(filepath.Join(g.opts.OutputDirectory, name), content); err != nil {
		return slot{}, fmt.Errorf("writing fixture %s: %w", name, err)
	}

	return slot{
		path: path,
		fixture: &Fixture{
			Index:     index,
			Field:     f,
			FieldPath: path,
			Filename:  name,
			Count:     out.Count,
		},
	}, nil
}

func addReason(d *diagnostic.Diagnostics, element, path string, reason error) {
	msg := "field not mutated"
	if reason != nil {
		msg = reason.Error()
	}

	switch {
	case errors.Is(reason, mutate.ErrMalformedFieldPath):
		d.AddWarning(diagnostic.CodeMalformedFieldPath, msg, element, path)
	case errors.Is(reason, mutate.ErrDocumentParse):
		d.AddError(diagnostic.CodeDocumentParseFailure, msg, element, path)
	default:
		d.AddInfo(diagnostic.CodeFieldNotFound, msg, element, path)
	}
}
