// Package config holds compiler-wide constants and the project-level
// configuration file format read by cmd/lambdawg.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Version is the compiler's release string, embedded at build time via
// -ldflags "-X github.com/lambdawg/lambdawg/internal/config.Version=...".
var Version = "dev"

// SourceFileExt is the canonical Lambdawg source extension.
const SourceFileExt = ".lwg"

// SourceFileExtensions lists every extension HasSourceExt recognizes as
// a Lambdawg source file.
var SourceFileExtensions = []string{".lwg", ".lambdawg"}

// HasSourceExt reports whether path ends in a recognized source extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) > len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// ProjectConfig is the shape of a lambdawg.yaml project file: defaults
// for driver.Options that the CLI applies unless overridden by flags
// (SPEC_FULL.md §10.2).
type ProjectConfig struct {
	SkipTypeCheck bool   `yaml:"skipTypeCheck"`
	OutDir        string `yaml:"outDir"`
	Entry         string `yaml:"entry"`
}

// LoadProjectConfig reads and parses a lambdawg.yaml file at path. A
// missing file is not an error: it returns a zero-value ProjectConfig so
// callers can treat "no file" and "empty file" identically.
func LoadProjectConfig(path string) (ProjectConfig, error) {
	var cfg ProjectConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
