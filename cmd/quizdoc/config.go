package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the directories the converter reads from and writes to.
type Config struct {
	DirectoryPaths DirectoryPaths `yaml:"directory_paths"`
}

// DirectoryPaths names the input, archive, and output directories.
type DirectoryPaths struct {
	RawHTML    string `yaml:"raw_html"`
	ParsedHTML string `yaml:"parsed_html"`
	Output     string `yaml:"output"`
}

// DefaultConfig returns the configuration used when no file exists, with
// every directory under base.
func DefaultConfig(base string) *Config {
	return &Config{
		DirectoryPaths: DirectoryPaths{
			RawHTML:    filepath.Join(base, "raw_html"),
			ParsedHTML: filepath.Join(base, "parsed_html"),
			Output:     filepath.Join(base, "output"),
		},
	}
}

// LoadConfig reads the configuration at path. A missing file yields the
// defaults relative to the working directory. Empty entries keep their
// defaults; relative entries are resolved against the file's directory.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig(".")

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var file Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	base := filepath.Dir(path)
	resolve := func(dst *string, value string) {
		if value == "" {
			return
		}
		if !filepath.IsAbs(value) {
			value = filepath.Join(base, value)
		}
		*dst = value
	}
	resolve(&cfg.DirectoryPaths.RawHTML, file.DirectoryPaths.RawHTML)
	resolve(&cfg.DirectoryPaths.ParsedHTML, file.DirectoryPaths.ParsedHTML)
	resolve(&cfg.DirectoryPaths.Output, file.DirectoryPaths.Output)
	return cfg, nil
}

// EnsureDirs creates every configured directory.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.DirectoryPaths.RawHTML, c.DirectoryPaths.ParsedHTML, c.DirectoryPaths.Output} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
