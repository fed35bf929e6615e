package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPaths are tried in order when no config file is given.
var DefaultPaths = []string{
	filepath.Join("config", "config.json"),
	filepath.Join("config", "config.yaml"),
	"config.json",
	"config.yaml",
}

// Find returns explicit when set, otherwise the first existing default path.
func Find(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	for _, p := range DefaultPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("no config file found (tried %v): %w", DefaultPaths, fs.ErrNotExist)
}

// Load reads, defaults, resolves and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return Config{}, fmt.Errorf("resolving config directory: %w", err)
	}

	cfg.resolve(dir)

	return cfg, nil
}

// Parse decodes config content over Default and validates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
		}

		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// resolve makes every relative path absolute against dir. Override keys are
// kept as written and added in resolved form.
func (c *Config) resolve(dir string) {
	c.dir = dir

	for _, p := range []*string{
		&c.SpecFile, &c.MaxFile, &c.OutputDirectory, &c.InputPath, &c.OutputPath, &c.LedgerPath,
	} {
		*p = resolvePath(dir, *p)
	}

	if len(c.FormatOverride) == 0 {
		return
	}

	overrides := make(map[string]string, 2*len(c.FormatOverride))
	for k, v := range c.FormatOverride {
		overrides[k] = v
		overrides[resolvePath(dir, k)] = v
	}

	c.FormatOverride = overrides
}

func resolvePath(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(dir, p)
}
