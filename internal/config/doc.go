// Package config loads the run configuration.
//
// The file is YAML or JSON (read with the YAML decoder, JSON being a subset)
// and keeps the option names of the original tool: spec_file, max_file,
// output_directory, output_prefix, modification_mode and format_override,
// plus the extraction and generation settings documented on Config.
//
// Relative paths are resolved against the directory of the config file.
// A Config is built once at startup and passed by value afterwards.
package config
