package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Sriram-PR/doc-reducer/pkg/utils"
)

// Page formats understood by the reducer.
const (
	FormatSphinx   = "sphinx"   // nested section containers
	FormatNotebook = "notebook" // flat heading/content stream
)

// AppConfig holds the global application configuration
type AppConfig struct {
	LogLevel               string   `yaml:"log_level,omitempty"`
	NumWorkers             int      `yaml:"num_workers"`
	OutputDir              string   `yaml:"output_dir,omitempty"`
	DefaultFormat          string   `yaml:"default_format,omitempty"` // "sphinx" or "notebook"
	RootSelector           string   `yaml:"root_selector,omitempty"`  // overrides the per-format default
	IgnoredHeadings        []string `yaml:"ignored_headings,omitempty"`
	IgnoredHeadingPatterns []string `yaml:"ignored_heading_patterns,omitempty"` // Regex patterns for headings to exclude
}

// Load reads and unmarshals an AppConfig from a YAML file.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, utils.WrapErrorf(utils.ErrFilesystem, "reading config '%s': %v", path, err)
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, utils.WrapErrorf(utils.ErrParsing, "YAML config '%s': %v", path, err)
	}
	return &cfg, nil
}
