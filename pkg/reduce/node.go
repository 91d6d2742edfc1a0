package reduce

import (
	"strings"

	"golang.org/x/net/html"
)

// HeadingLevel returns the numeric level of a heading tag name ("h2" -> 2),
// or 0 for anything that is not h1..h6.
func HeadingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}

// HasClass reports whether an element node carries the given CSS class.
func HasClass(n *html.Node, class string) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	for _, c := range strings.Fields(nodeAttr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// nodeAttr returns the value of the named attribute, or "" if absent.
func nodeAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// isSectionContainer reports whether an element wraps one hierarchical
// section: either a native <section> or the div.section shape emitted by
// older documentation generators.
func isSectionContainer(n *html.Node) bool {
	return n.Data == "section" || (n.Data == "div" && HasClass(n, "section"))
}

// textContent concatenates the text nodes of a subtree in document order.
func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return buf.String()
}

// cloneTree deep-copies a subtree so it can be pruned without observably
// altering the caller's document.
func cloneTree(n *html.Node) *html.Node {
	clone := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		clone.AppendChild(cloneTree(c))
	}
	return clone
}

// dropByClass removes every descendant element carrying the given class.
// Intended for cloned subtrees only.
func dropByClass(root *html.Node, class string) {
	var doomed []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if HasClass(c, class) {
				doomed = append(doomed, c)
				continue
			}
			walk(c)
		}
	}
	walk(root)
	for _, n := range doomed {
		n.Parent.RemoveChild(n)
	}
}

// elementChildren returns the direct element-node children of n, skipping
// text, comment and other node kinds.
func elementChildren(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}
