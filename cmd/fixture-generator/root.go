package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"fixture-generator/internal/config"
	"fixture-generator/internal/diagnostic"
)

// configAnnotation marks commands that run with defaults when no config file exists.
const configAnnotation = "config-optional"

// app is the state shared by all commands of one invocation.
type app struct {
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
	runID  string
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "fixture-generator",
		Short: "Generate negative-test fixtures from a field-design table",
		Long: `fixture-generator reads a field-design table, classifies every field as
required or optional by its occurrence, and writes one fixture per field:
a copy of a maximal sample document with exactly that field removed or
commented out.

Supported sample families: JSON, YAML, XML, EDI-X12, EDIFACT and IDOC.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "",
		"configuration file (default config/config.json, then config/config.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.extractCmd(),
		a.generateCmd(),
		a.runCmd(),
		a.inspectCmd(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := a.loadConfig(cmd.Annotations[configAnnotation] != "")
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel, a.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.cfg = cfg
	a.runID = uuid.NewString()
	a.logger = logger.With(zap.String("run_id", a.runID), zap.String("command", cmd.Name()))

	return nil
}

func (a *app) loadConfig(optional bool) (config.Config, error) {
	path, err := config.Find(a.configPath)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}

		return config.Config{}, err
	}

	return config.Load(path)
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if verbose {
		zc = zap.NewDevelopmentConfig()
	}

	if level != "" {
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, err
		}

		zc.Level = lvl
	}

	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return zc.Build()
}

// report prints diagnostics, errors and warnings first.
func report(w io.Writer, d diagnostic.Diagnostics) {
	for _, item := range d.All() {
		_, _ = fmt.Fprintf(w, "%s: %s\n", item.Severity, item)
	}
}
