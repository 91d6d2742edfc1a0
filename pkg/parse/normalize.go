package parse

import (
	"net"
	"net/url"
	"strings"

	"github.com/Sriram-PR/doc-reducer/pkg/utils"
)

// NormalizeURL standardizes a page URL so it can serve as the base for
// section fragment URLs.
// It lowercases the scheme and host, removes default ports (80 for http, 443 for https), removes trailing slashes from paths (unless root "/"), ensures empty path becomes "/", and removes fragments and query strings
// Does not modify the input *url.URL
func NormalizeURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	// Work on a copy
	normalized := *u

	normalized.Scheme = strings.ToLower(normalized.Scheme)
	normalized.Host = strings.ToLower(normalized.Host)

	// Remove default ports
	host, port, err := net.SplitHostPort(normalized.Host)
	if err == nil { // Host included a port
		if (normalized.Scheme == "http" && port == "80") ||
			(normalized.Scheme == "https" && port == "443") {
			normalized.Host = host
		}
	}

	if normalized.Path == "" {
		normalized.Path = "/"
	} else if len(normalized.Path) > 1 && strings.HasSuffix(normalized.Path, "/") {
		normalized.Path = normalized.Path[:len(normalized.Path)-1]
	}

	// A base URL must not already carry a fragment or query: section URLs
	// are built as base + "#" + id.
	normalized.Fragment = ""
	normalized.RawQuery = ""

	return normalized.String()
}

// ParseBaseURL parses a page URL string using the stricter
// url.ParseRequestURI (requiring a scheme) and normalizes it for use as a
// section URL base. Returns the normalized string, the parsed URL, and an
// error wrapping ErrParsing on failure.
func ParseBaseURL(urlStr string) (string, *url.URL, error) {
	parsed, err := url.ParseRequestURI(urlStr)
	if err != nil {
		return "", nil, utils.WrapErrorf(utils.ErrParsing, "invalid page URL '%s': %v", urlStr, err)
	}
	return NormalizeURL(parsed), parsed, nil
}
