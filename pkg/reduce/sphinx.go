// Package reduce flattens hierarchically structured documentation HTML into
// an ordered sequence of self-contained sections, each carrying the chain of
// ancestor headings that scope it. Two traversal strategies cover the two
// markup conventions seen in the wild: nested section containers
// (Sphinx-style pages) and flat heading/content streams (rendered notebook
// pages).
package reduce

import (
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"

	"github.com/Sriram-PR/doc-reducer/pkg/utils"
)

// noiseClass marks executed-code output blocks on notebook-derived pages.
// Their text is bulky and rarely useful for indexing.
const noiseClass = "cell_output"

var log = logrus.StandardLogger()

// IterSphinxSections walks a nested-container document and returns its
// sections depth-first: every section derived from a nested container comes
// strictly before its parent container's own section, so readers receive
// fine-grained subsections before the coarser parent.
//
// root must be the outermost content container (usually the one holding the
// h1). headings is the chain inherited from ancestors; pass nil for the
// outermost call. headingFn and contentFn post-process extracted heading and
// content text and may be nil.
//
// The source tree is never modified: noise stripping operates on a detached
// copy of each content child. A document containing no heading elements
// reduces to an empty sequence.
func IterSphinxSections(root *html.Node, baseURL string, headings []string, headingFn, contentFn CleanFunc) ([]Section, error) {
	if root == nil {
		return nil, utils.ErrMissingRoot
	}
	return sphinxSections(root, baseURL, headings, headingFn, contentFn), nil
}

func sphinxSections(root *html.Node, baseURL string, headings []string, headingFn, contentFn CleanFunc) []Section {
	id := nodeAttr(root, "id")
	if id == "" {
		log.Debugf("section container <%s> has no id attribute, using empty fragment", root.Data)
	}
	url := baseURL + "#" + id

	current := headings
	var fragments []string
	var sections []Section

	for child := root.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			// Comments and stray inter-element text carry no extractable
			// section content.
			if child.Type == html.CommentNode {
				log.Debugf("skipping comment node in container %q", id)
			}
			continue
		}

		switch {
		case HeadingLevel(child.Data) > 0:
			header := textContent(child)
			if headingFn != nil {
				header = headingFn(header)
			}
			current = append(append([]string(nil), headings...), header)

		case isSectionContainer(child):
			sections = append(sections, sphinxSections(child, baseURL, current, headingFn, contentFn)...)

		default:
			if HasClass(child, noiseClass) {
				log.Debugf("skipping noise block in container %q", id)
				continue
			}
			clone := cloneTree(child)
			dropByClass(clone, noiseClass)
			text := textContent(clone)
			if contentFn != nil {
				text = contentFn(text)
			}
			fragments = append(fragments, text)
		}
	}

	// A container walked with no inherited chain and no heading of its own
	// has nothing to anchor a section to: a headingless document reduces
	// to an empty sequence.
	if len(current) == 0 {
		return sections
	}

	// The container's own section is emitted after all of its nested
	// containers' sections.
	sections = append(sections, Section{
		Content:  strings.Join(fragments, "\n\n"),
		Headings: current,
		URL:      url,
	})
	return sections
}
