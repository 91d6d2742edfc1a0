package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Sriram-PR/doc-reducer/pkg/reduce"
	"github.com/Sriram-PR/doc-reducer/pkg/utils"
)

// SectionRecord is the flat search-index record built from one reduced
// section. Records are self-contained: everything the index needs about a
// section travels with it.
type SectionRecord struct {
	ObjectID    string    `json:"object_id"`          // Deterministic: same section, same ID
	BaseURL     string    `json:"base_url"`           // Canonical URL of the source page
	URL         string    `json:"url"`                // Section anchor URL
	H1          string    `json:"h1,omitempty"`       // Page headline
	Headings    []string  `json:"headings"`           // Root-to-leaf heading chain
	Content     string    `json:"content"`            // Plain-text content of this section only
	ContentHash string    `json:"content_hash"`       // SHA-256 hex of Content
	HeaderLevel int       `json:"header_level"`       // len(Headings)
	Keywords    []string  `json:"keywords,omitempty"` // Page-level keywords
	IndexedAt   time.Time `json:"indexed_at"`
}

// NewSectionRecord builds a record from a section without mutating it.
// ObjectID is a SHA-1 UUID over the section URL and heading chain, so
// re-indexing the same page overwrites rather than duplicates.
func NewSectionRecord(s reduce.Section, baseURL, h1 string, keywords []string, now time.Time) SectionRecord {
	key := s.URL + "|" + strings.Join(s.Headings, " > ")
	return SectionRecord{
		ObjectID:    uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String(),
		BaseURL:     baseURL,
		URL:         s.URL,
		H1:          h1,
		Headings:    append([]string(nil), s.Headings...),
		Content:     s.Content,
		ContentHash: utils.HashString(s.Content),
		HeaderLevel: s.HeaderLevel(),
		Keywords:    append([]string(nil), keywords...),
		IndexedAt:   now.UTC(),
	}
}
