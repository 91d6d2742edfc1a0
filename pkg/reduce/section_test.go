package reduce

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSection_DeeperHeadingAppends(t *testing.T) {
	s := Section{}
	s = s.NewSection("h1", "Intro", "https://example.com/#intro")
	s = s.NewSection("h2", "Details", "https://example.com/#details")

	assert.Equal(t, []string{"Intro", "Details"}, s.Headings)
	assert.Equal(t, 2, s.HeaderLevel())
	assert.Equal(t, "https://example.com/#details", s.URL)
}

func TestNewSection_SameLevelReplaces(t *testing.T) {
	s := Section{}
	s = s.NewSection("h1", "Intro", "#a")
	s = s.NewSection("h2", "First", "#b")
	s = s.NewSection("h2", "Second", "#c")

	assert.Equal(t, []string{"Intro", "Second"}, s.Headings)
}

func TestNewSection_ShallowerHeadingDropsExcess(t *testing.T) {
	s := Section{}
	s = s.NewSection("h1", "A", "#a")
	s = s.NewSection("h2", "B", "#b")
	s = s.NewSection("h3", "C", "#c")
	s = s.NewSection("h2", "D", "#d")

	assert.Equal(t, []string{"A", "D"}, s.Headings)
}

func TestNewSection_NonH1Stream(t *testing.T) {
	// Streams whose first heading is an h2 still replace on the next h2
	// instead of stacking.
	s := Section{}
	s = s.NewSection("h2", "Topic", "#t")
	assert.Equal(t, []string{"Topic"}, s.Headings)

	s = s.NewSection("h2", "Next", "#n")
	assert.Equal(t, []string{"Next"}, s.Headings)
}

func TestNewSection_SeededChain(t *testing.T) {
	// Chains seeded externally (no tag levels recorded) behave as if
	// h1-rooted.
	s := Section{Headings: []string{"Intro"}}

	sub := s.NewSection("h2", "Sub", "#s")
	assert.Equal(t, []string{"Intro", "Sub"}, sub.Headings)

	top := s.NewSection("h1", "New", "#n")
	assert.Equal(t, []string{"New"}, top.Headings)
}

func TestNewSection_DoesNotMutateReceiver(t *testing.T) {
	s := Section{}
	s = s.NewSection("h1", "A", "#a")
	s = s.NewSection("h2", "B", "#b")

	_ = s.NewSection("h2", "C", "#c")
	assert.Equal(t, []string{"A", "B"}, s.Headings)
}

func TestNewSection_ClearsContent(t *testing.T) {
	s := Section{Content: "accumulated", Headings: []string{"A"}}
	next := s.NewSection("h2", "B", "#b")
	assert.Empty(t, next.Content)
}
