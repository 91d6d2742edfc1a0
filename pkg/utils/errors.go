package utils

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// --- Sentinel Errors for Categorization ---
var (
	ErrMissingRoot      = errors.New("missing document root")      // Nil/absent root passed to a walk
	ErrContentSelector  = errors.New("content selector not found") // Root container selector matched nothing
	ErrParsing          = errors.New("parsing error")              // Wraps specific parsing error (HTML, URL, YAML)
	ErrFilesystem       = errors.New("filesystem error")           // Wraps os errors
	ErrConfigValidation = errors.New("configuration validation error")
)

// WrapErrorf wraps a sentinel error with formatted detail so callers can
// still match it with errors.Is.
func WrapErrorf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}

// CategorizeError maps an error to a predefined category string for logging/metrics.
func CategorizeError(err error) string {
	if err == nil {
		return "None"
	}

	switch {
	case errors.Is(err, ErrMissingRoot):
		return "Content_MissingRoot"
	case errors.Is(err, ErrContentSelector):
		return "Content_SelectorNotFound"
	case errors.Is(err, ErrParsing):
		errMsg := err.Error()
		if strings.Contains(errMsg, "URL") {
			return "Content_ParsingURL"
		}
		if strings.Contains(errMsg, "HTML") {
			return "Content_ParsingHTML"
		}
		if strings.Contains(errMsg, "YAML") {
			return "Content_ParsingYAML"
		}
		return "Content_ParsingOther"
	case errors.Is(err, ErrFilesystem):
		if errors.Is(err, os.ErrPermission) {
			return "Filesystem_Permission"
		}
		if errors.Is(err, os.ErrNotExist) {
			return "Filesystem_NotExist"
		}
		return "Filesystem_Other"
	case errors.Is(err, ErrConfigValidation):
		return "Config_Validation"
	}

	return "Unknown"
}
