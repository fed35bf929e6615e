package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixture-generator/internal/fixture"
	"fixture-generator/internal/format"
	"fixture-generator/internal/mutate"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad_JSON(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "config.json", `{
  "spec_file": "../output/JSON_structure.json",
  "max_file": "../input/sampleMax.json",
  "output_directory": "/tmp/fixtures",
  "output_prefix": "PO_",
  "modification_mode": "comment",
  "format_override": {"sampleMax.txt": "IDOC"}
}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	dir := filepath.Dir(path)
	assert.Equal(t, dir, cfg.Dir())
	assert.Equal(t, filepath.Join(filepath.Dir(dir), "output", "JSON_structure.json"), cfg.SpecFile)
	assert.Equal(t, filepath.Join(filepath.Dir(dir), "input", "sampleMax.json"), cfg.MaxFile)
	assert.Equal(t, "/tmp/fixtures", cfg.OutputDirectory)
	assert.Equal(t, mutate.CommentOut, cfg.Mode())

	assert.Equal(t, "IDOC", cfg.FormatOverride["sampleMax.txt"])
	assert.Equal(t, "IDOC", cfg.FormatOverride[filepath.Join(dir, "sampleMax.txt")])

	opts := cfg.FixtureOptions()
	assert.Equal(t, "PO_", opts.Prefix)
	assert.Equal(t, fixture.Indexed, opts.Naming)
	assert.Equal(t, []string{"/JSON/", "JSON/"}, opts.PathPrefixes)
	assert.Equal(t, 1, opts.Workers)
}

func TestLoad_YAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "config.yaml", `
input_path: spec.xlsx
output_path: out
sheet: Mapping (T)
header_row: 5
naming: legacy
path_prefixes: ["/ROOT/"]
workers: 4
indent: 4
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	dir := filepath.Dir(path)
	assert.Equal(t, filepath.Join(dir, "spec.xlsx"), cfg.InputPath)
	assert.Equal(t, filepath.Join(dir, "out", "EDI-X12_structure.json"), cfg.StructurePath(format.EDIX12))
	assert.Equal(t, "Mapping (T)", cfg.LocateOptions().Sheet)
	assert.Equal(t, 5, cfg.LocateOptions().HeaderRow)
	assert.Equal(t, fixture.Legacy, cfg.FixtureOptions().Naming)
	assert.Equal(t, []string{"/ROOT/"}, cfg.PathPrefixes)
	assert.Equal(t, 4, cfg.Indent)
	assert.Equal(t, mutate.Remove, cfg.Mode(), "mode defaults to remove")
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"mode", `modification_mode: erase`},
		{"naming", `naming: numbered`},
		{"override", `format_override: {a.txt: CSV}`},
		{"workers", `workers: -1`},
		{"log level", `log_level: loud`},
		{"type", `workers: many`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.content))
			require.ErrorIs(t, err, ErrInvalid)
		})
	}

	_, err := Parse([]byte("{"))
	require.Error(t, err)
}

func TestLoad_Missing(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestFind(t *testing.T) {
	t.Parallel()

	got, err := Find("custom.yaml")
	require.NoError(t, err)
	assert.Equal(t, "custom.yaml", got)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	require.NoError(t, Default().Validate())
}
