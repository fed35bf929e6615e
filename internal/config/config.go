package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap/zapcore"

	"fixture-generator/internal/fixture"
	"fixture-generator/internal/format"
	"fixture-generator/internal/mutate"
	"fixture-generator/internal/spec"
	"fixture-generator/internal/tabular"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("invalid configuration")

// Config is the run configuration.
type Config struct {
	// SpecFile is the structure file read by the generate command.
	SpecFile string `yaml:"spec_file"`
	// MaxFile is the maximal sample document.
	MaxFile         string `yaml:"max_file"`
	OutputDirectory string `yaml:"output_directory"`
	OutputPrefix    string `yaml:"output_prefix"`
	// ModificationMode is "remove" or "comment".
	ModificationMode string `yaml:"modification_mode"`
	// FormatOverride forces the format of an input, keyed by path or file name.
	FormatOverride map[string]string `yaml:"format_override"`

	// InputPath is the field-design workbook read by the extract command.
	InputPath string `yaml:"input_path"`
	// OutputPath receives "<FORMAT>_structure.json".
	OutputPath string `yaml:"output_path"`
	Sheet      string `yaml:"sheet"`
	HeaderRow  int    `yaml:"header_row"`

	// Naming is "indexed" or "legacy".
	Naming       string   `yaml:"naming"`
	PathPrefixes []string `yaml:"path_prefixes"`
	Indent       int      `yaml:"indent"`
	Workers      int      `yaml:"workers"`
	LedgerPath   string   `yaml:"ledger_path"`
	LogLevel     string   `yaml:"log_level"`

	// dir is the directory relative paths were resolved against.
	dir string
}

// Default returns the configuration used when no file sets an option.
func Default() Config {
	return Config{
		OutputDirectory:  "output",
		OutputPath:       "output",
		ModificationMode: mutate.Remove.String(),
		Naming:           fixture.Indexed.String(),
		PathPrefixes:     append([]string(nil), fixture.DefaultPathPrefixes...),
		Indent:           2,
		Workers:          1,
		LogLevel:         "info",
	}
}

// Validate checks enumerated options.
func (c Config) Validate() error {
	var problems []string

	if _, ok := mutate.ParseMode(c.ModificationMode); !ok {
		problems = append(problems, fmt.Sprintf("modification_mode %q (want remove or comment)", c.ModificationMode))
	}

	if _, ok := fixture.ParseNaming(c.Naming); !ok {
		problems = append(problems, fmt.Sprintf("naming %q (want indexed or legacy)", c.Naming))
	}

	for path, tag := range c.FormatOverride {
		if _, ok := format.ParseTag(tag); !ok {
			problems = append(problems, fmt.Sprintf("format_override[%s] %q", path, tag))
		}
	}

	if c.Workers < 0 {
		problems = append(problems, fmt.Sprintf("workers %d", c.Workers))
	}

	if c.Indent < 0 {
		problems = append(problems, fmt.Sprintf("indent %d", c.Indent))
	}

	if c.HeaderRow < 0 {
		problems = append(problems, fmt.Sprintf("header_row %d", c.HeaderRow))
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); c.LogLevel != "" && err != nil {
		problems = append(problems, fmt.Sprintf("log_level %q", c.LogLevel))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}

	return nil
}

// Mode returns the parsed modification mode.
func (c Config) Mode() mutate.Mode {
	m, _ := mutate.ParseMode(c.ModificationMode)

	return m
}

// FixtureOptions returns the generator options.
func (c Config) FixtureOptions() fixture.Options {
	naming, _ := fixture.ParseNaming(c.Naming)

	return fixture.Options{
		OutputDirectory: c.OutputDirectory,
		Prefix:          c.OutputPrefix,
		Naming:          naming,
		Mode:            c.Mode(),
		PathPrefixes:    c.PathPrefixes,
		Workers:         c.Workers,
	}
}

// LocateOptions returns the manual header-row fallback.
func (c Config) LocateOptions() tabular.LocateOptions {
	return tabular.LocateOptions{Sheet: c.Sheet, HeaderRow: c.HeaderRow}
}

// StructurePath returns where extraction writes the structure file of a family.
func (c Config) StructurePath(tag format.Tag) string {
	return filepath.Join(c.OutputPath, spec.StructureFileName(tag))
}

// Dir returns the directory of the loaded config file, or "" for defaults.
func (c Config) Dir() string {
	return c.dir
}
