package reduce

import (
	"golang.org/x/net/html"

	"github.com/Sriram-PR/doc-reducer/pkg/utils"
)

// Class markers used by notebook-rendering pipelines.
const (
	renderedHTMLClass = "jp-RenderedHTMLCommon" // rendered markdown cell output
	codeMirrorClass   = "CodeMirror"            // code cell display block
)

// IterNotebookSections walks a flat heading/content stream (the shape
// produced by notebook-rendering pipelines, where headings and content are
// siblings with no container nesting) and returns its sections in document
// order. A new section is flushed each time a heading boundary is crossed;
// a heading immediately followed by another heading produces no empty
// intermediate section. A document without headings yields nothing.
func IterNotebookSections(root *html.Node, baseURL string, headingFn, contentFn CleanFunc) ([]Section, error) {
	if root == nil {
		return nil, utils.ErrMissingRoot
	}

	var sections []Section
	current := Section{}

	for _, el := range NotebookContentElements(root) {
		if HeadingLevel(el.Data) > 0 {
			if len(current.Headings) > 0 && current.Content != "" {
				sections = append(sections, current)
			}
			header := textContent(el)
			if headingFn != nil {
				header = headingFn(header)
			}
			// Missing heading ids degrade to an empty fragment.
			current = current.NewSection(el.Data, header, baseURL+"#"+nodeAttr(el, "id"))
			continue
		}

		text := textContent(el)
		if contentFn != nil {
			text = contentFn(text)
		}
		current.Content += " " + text
	}

	if len(current.Headings) > 0 {
		sections = append(sections, current)
	}
	return sections, nil
}

// NotebookContentElements flattens the inconsistent grouping wrappers of a
// notebook-rendered page into the elements the flat-stream walk should treat
// as atomic units:
//
//   - a rendered-rich-content block yields its immediate children, opaquely
//   - a code-display block yields itself as one unit
//   - a generic div wrapper is recursed into
//   - anything else is skipped entirely
func NotebookContentElements(root *html.Node) []*html.Node {
	if root == nil || root.Type != html.ElementNode {
		return nil
	}
	switch {
	case HasClass(root, renderedHTMLClass):
		return elementChildren(root)
	case HasClass(root, codeMirrorClass):
		return []*html.Node{root}
	case root.Data == "div":
		var out []*html.Node
		for _, child := range elementChildren(root) {
			out = append(out, NotebookContentElements(child)...)
		}
		return out
	default:
		return nil
	}
}
