package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sriram-PR/doc-reducer/pkg/utils"
)

func TestValidate_AppliesDefaults(t *testing.T) {
	cfg := &AppConfig{}

	warnings, err := cfg.Validate()
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.NumWorkers)
	assert.Equal(t, FormatSphinx, cfg.DefaultFormat)
	assert.NotEmpty(t, warnings)
}

func TestValidate_AcceptsExplicitValues(t *testing.T) {
	cfg := &AppConfig{NumWorkers: 8, DefaultFormat: FormatNotebook}

	warnings, err := cfg.Validate()
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, 8, cfg.NumWorkers)
	assert.Equal(t, FormatNotebook, cfg.DefaultFormat)
}

func TestValidate_RejectsUnknownFormat(t *testing.T) {
	cfg := &AppConfig{NumWorkers: 1, DefaultFormat: "asciidoc"}

	_, err := cfg.Validate()
	assert.ErrorIs(t, err, utils.ErrConfigValidation)
}

func TestValidate_RejectsBadPattern(t *testing.T) {
	cfg := &AppConfig{NumWorkers: 1, DefaultFormat: FormatSphinx, IgnoredHeadingPatterns: []string{"("}}

	_, err := cfg.Validate()
	assert.ErrorIs(t, err, utils.ErrConfigValidation)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
num_workers: 2
default_format: notebook
ignored_headings:
  - authors
  - about
ignored_heading_patterns:
  - '^Appendix'
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.NumWorkers)
	assert.Equal(t, FormatNotebook, cfg.DefaultFormat)
	assert.Equal(t, []string{"authors", "about"}, cfg.IgnoredHeadings)

	patterns, err := cfg.CompiledIgnoredPatterns()
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	assert.True(t, patterns[0].MatchString("Appendix A"))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, utils.ErrFilesystem)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("num_workers: [not an int"), 0644))

	_, err := Load(path)
	assert.ErrorIs(t, err, utils.ErrParsing)
}
