package config

import (
	"fmt"
	"regexp"

	"github.com/Sriram-PR/doc-reducer/pkg/utils"
)

// Validate checks AppConfig fields and applies sensible defaults.
// Returns collected warnings and any fatal error.
// Modifies receiver in place to apply defaults.
func (c *AppConfig) Validate() (warnings []string, err error) {
	// NumWorkers
	if c.NumWorkers <= 0 {
		warnings = append(warnings, "num_workers should be > 0, defaulting to 4")
		c.NumWorkers = 4
	}

	// DefaultFormat
	switch c.DefaultFormat {
	case "":
		warnings = append(warnings, fmt.Sprintf("default_format not specified, defaulting to '%s'", FormatSphinx))
		c.DefaultFormat = FormatSphinx
	case FormatSphinx, FormatNotebook:
		// valid
	default:
		return warnings, utils.WrapErrorf(utils.ErrConfigValidation,
			"default_format must be '%s' or '%s', got '%s'", FormatSphinx, FormatNotebook, c.DefaultFormat)
	}

	// IgnoredHeadingPatterns must compile
	if _, err := c.CompiledIgnoredPatterns(); err != nil {
		return warnings, err
	}

	return warnings, nil
}

// CompiledIgnoredPatterns compiles the configured heading-exclusion regexes.
func (c *AppConfig) CompiledIgnoredPatterns() ([]*regexp.Regexp, error) {
	return utils.CompileRegexPatterns(c.IgnoredHeadingPatterns)
}
