package reduce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasClass(t *testing.T) {
	node, _ := findNode(t, `<div id="d" class="section highlight  wide"></div>`, "#d")

	assert.True(t, HasClass(node, "section"))
	assert.True(t, HasClass(node, "wide"))
	assert.False(t, HasClass(node, "sect"))
	assert.False(t, HasClass(nil, "section"))
}

func TestCloneTree_DetachedFromSource(t *testing.T) {
	node, doc := findNode(t, `<div id="d"><p>keep</p><span class="noise">drop</span></div>`, "#d")

	clone := cloneTree(node)
	dropByClass(clone, "noise")

	assert.Equal(t, "keep", textContent(clone))
	assert.Equal(t, "keepdrop", doc.Find("#d").Text())
	assert.Nil(t, clone.Parent)
}

func TestDropByClass_NestedMatches(t *testing.T) {
	node, _ := findNode(t, `<div id="d"><div><div class="cell_output">a</div></div><div class="cell_output">b</div><p>c</p></div>`, "#d")

	clone := cloneTree(node)
	dropByClass(clone, "cell_output")
	assert.Equal(t, "c", textContent(clone))
}

func TestTextContent_DocumentOrder(t *testing.T) {
	node, _ := findNode(t, `<div id="d">one <em>two</em> three</div>`, "#d")
	require.Equal(t, "one two three", textContent(node))
}
