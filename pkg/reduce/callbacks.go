package reduce

import "strings"

// CleanFunc transforms extracted heading or content text. Both walk
// strategies accept heading and content cleaners as pluggable callbacks.
type CleanFunc func(string) string

// CleanSphinxHeading strips the trailing pilcrow left behind by Sphinx
// headerlink anchors.
func CleanSphinxHeading(s string) string {
	return strings.TrimRight(s, "¶")
}

// CleanSphinxContent trims surrounding whitespace from extracted content.
func CleanSphinxContent(s string) string {
	return strings.TrimSpace(s)
}

// CleanNotebookHeading strips pilcrows and surrounding whitespace from
// notebook cell headings.
func CleanNotebookHeading(s string) string {
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(s), "¶"))
}

// CleanNotebookContent collapses the literal "\n" escape sequences, real
// newlines and stray backslashes that notebook rendering leaves in cell
// text. Applying it to already-clean text is a no-op.
func CleanNotebookContent(s string) string {
	s = strings.ReplaceAll(s, `\n`, " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, `\`, "")
	return strings.TrimSpace(s)
}
