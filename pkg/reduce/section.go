package reduce

// Section is one self-contained unit of reduced page content. Content holds
// only the text that belongs directly to this section; text inside nested
// containers is factored into separately emitted child sections.
type Section struct {
	Content  string   `json:"content"`
	Headings []string `json:"headings"` // root-to-leaf; the last element is this section's own heading
	URL      string   `json:"url"`      // base page URL plus fragment identifier

	// Heading-tag level per chain entry, parallel to Headings. Tracked so
	// that a stream whose first heading is not an h1 still truncates
	// correctly on the next same-level heading.
	levels []int
}

// HeaderLevel reports the hierarchical depth of this section. 1 corresponds
// to an "H1" section.
func (s Section) HeaderLevel() int {
	return len(s.Headings)
}

// NewSection derives the section opened by crossing a heading boundary. A
// deeper heading extends the current chain; a same-or-shallower heading
// closes the open subsections at or below its level and replaces them.
// The receiver is not modified.
func (s Section) NewSection(tag, header, url string) Section {
	level := HeadingLevel(tag)
	if level < 1 {
		level = len(s.Headings) + 1
	}

	levels := s.levels
	if len(levels) != len(s.Headings) {
		// Chain was seeded externally; assume one entry per level, h1 first.
		levels = make([]int, len(s.Headings))
		for i := range levels {
			levels[i] = i + 1
		}
	}

	keep := len(levels)
	for keep > 0 && levels[keep-1] >= level {
		keep--
	}

	headings := append([]string(nil), s.Headings[:keep]...)
	kept := append([]int(nil), levels[:keep]...)
	return Section{
		Headings: append(headings, header),
		URL:      url,
		levels:   append(kept, level),
	}
}
