package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sriram-PR/doc-reducer/pkg/reduce"
	"github.com/Sriram-PR/doc-reducer/pkg/utils"
)

func sampleSection() reduce.Section {
	return reduce.Section{
		Content:  "Widget basics.",
		Headings: []string{"Using Widgets", "Basics"},
		URL:      "https://example.com/learn/widgets.html#basics",
	}
}

func TestNewSectionRecord_Fields(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	rec := NewSectionRecord(sampleSection(), "https://example.com/learn/widgets.html", "Using Widgets", []string{"widgets"}, now)

	assert.Equal(t, "https://example.com/learn/widgets.html", rec.BaseURL)
	assert.Equal(t, "https://example.com/learn/widgets.html#basics", rec.URL)
	assert.Equal(t, "Using Widgets", rec.H1)
	assert.Equal(t, []string{"Using Widgets", "Basics"}, rec.Headings)
	assert.Equal(t, "Widget basics.", rec.Content)
	assert.Equal(t, utils.HashString("Widget basics."), rec.ContentHash)
	assert.Equal(t, 2, rec.HeaderLevel)
	assert.Equal(t, now, rec.IndexedAt)
}

func TestNewSectionRecord_DeterministicObjectID(t *testing.T) {
	a := NewSectionRecord(sampleSection(), "base", "h1", nil, time.Now())
	b := NewSectionRecord(sampleSection(), "base", "h1", nil, time.Now().Add(time.Hour))

	require.NotEmpty(t, a.ObjectID)
	assert.Equal(t, a.ObjectID, b.ObjectID)
}

func TestNewSectionRecord_DistinctSectionsDistinctIDs(t *testing.T) {
	s := sampleSection()
	other := s
	other.Headings = []string{"Using Widgets"}
	other.URL = "https://example.com/learn/widgets.html#tutorial"

	a := NewSectionRecord(s, "base", "h1", nil, time.Now())
	b := NewSectionRecord(other, "base", "h1", nil, time.Now())
	assert.NotEqual(t, a.ObjectID, b.ObjectID)
}

func TestNewSectionRecord_DoesNotAliasSection(t *testing.T) {
	s := sampleSection()
	rec := NewSectionRecord(s, "base", "h1", nil, time.Now())

	rec.Headings[0] = "mutated"
	assert.Equal(t, "Using Widgets", s.Headings[0])
}
