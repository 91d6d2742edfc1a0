package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectInputs_Pairs(t *testing.T) {
	inputs, err := collectInputs([]string{
		"https://example.com/a.html=pages/a.html",
		"https://example.com/b.html=pages/b.html",
	}, "")
	require.NoError(t, err)
	require.Len(t, inputs, 2)
	assert.Equal(t, "https://example.com/a.html", inputs[0].url)
	assert.Equal(t, "pages/a.html", inputs[0].path)
}

func TestCollectInputs_BareFileWithURL(t *testing.T) {
	inputs, err := collectInputs([]string{"page.html"}, "https://example.com/page.html")
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.Equal(t, "https://example.com/page.html", inputs[0].url)
	assert.Equal(t, "page.html", inputs[0].path)
}

func TestCollectInputs_BareFileWithoutURL(t *testing.T) {
	_, err := collectInputs([]string{"page.html"}, "")
	assert.Error(t, err)
}

func TestCollectInputs_MultipleBareFiles(t *testing.T) {
	_, err := collectInputs([]string{"a.html", "b.html"}, "https://example.com/")
	assert.Error(t, err)
}

func TestCollectInputs_Empty(t *testing.T) {
	_, err := collectInputs(nil, "")
	assert.Error(t, err)
}
