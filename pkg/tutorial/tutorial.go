// Package tutorial reduces whole parsed tutorial pages into metadata plus
// the flat section sequence produced by the pkg/reduce walks.
package tutorial

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"

	"github.com/Sriram-PR/doc-reducer/pkg/reduce"
	"github.com/Sriram-PR/doc-reducer/pkg/utils"
)

// Default root selectors for the two page shapes.
const (
	defaultSphinxRoot   = ".card .section"
	defaultNotebookRoot = ".jp-Notebook"
)

// Headings of metadata sections that should not become content sections.
var defaultIgnoredHeadings = []string{"authors", "keywords", "summary"}

// Options tune page reduction. The zero value uses the defaults above.
type Options struct {
	RootSelector           string
	IgnoredHeadings        []string         // matched case-insensitively against every heading in a chain
	IgnoredHeadingPatterns []*regexp.Regexp // matched against every heading in a chain
	Log                    *logrus.Entry
}

// ReducedTutorial is the reduction of one tutorial page: page-level
// metadata plus the ordered sections found in its content.
type ReducedTutorial struct {
	URL      string
	H1       string
	Authors  []string
	Keywords []string
	Summary  string
	Images   []string
	Sections []reduce.Section
}

// Reduce processes a Sphinx-shaped tutorial page (nested section
// containers). pageURL must be the canonical URL of the page; it becomes the
// base of every section URL.
func Reduce(doc *goquery.Document, pageURL string, opts Options) (*ReducedTutorial, error) {
	taskLog := opts.logger().WithField("page_url", pageURL)
	selector := opts.RootSelector
	if selector == "" {
		selector = defaultSphinxRoot
	}

	t := &ReducedTutorial{URL: pageURL}
	t.extractMetadata(doc, selector, taskLog)

	root := doc.Find(selector).First()
	if root.Length() == 0 {
		return nil, utils.WrapErrorf(utils.ErrContentSelector, "selector '%s' not found on page '%s'", selector, pageURL)
	}

	sections, err := reduce.IterSphinxSections(root.Nodes[0], pageURL, nil, reduce.CleanSphinxHeading, reduce.CleanSphinxContent)
	if err != nil {
		return nil, err
	}
	t.appendAccepted(sections, opts)

	// Pages should carry a single h1 with everything nested under it, but
	// stray additional top-level section divs show up in practice. Re-walk
	// them seeded with the first top heading so their material nests under
	// it instead of surfacing as unrelated top sections.
	if n := len(t.Sections); n > 0 && len(t.Sections[n-1].Headings) > 0 {
		top := t.Sections[n-1]
		seed := []string{top.Headings[len(top.Headings)-1]}
		for sib := root.Nodes[0].NextSibling; sib != nil; sib = sib.NextSibling {
			if sib.Type != html.ElementNode || sib.Data != "div" || !reduce.HasClass(sib, "section") {
				continue
			}
			taskLog.Debugf("merging stray top-level section container under %q", seed[0])
			extra, err := reduce.IterSphinxSections(sib, pageURL, seed, reduce.CleanSphinxHeading, reduce.CleanSphinxContent)
			if err != nil {
				return nil, err
			}
			t.appendAccepted(extra, opts)
		}
	}

	t.relocateSummary()
	taskLog.Debugf("reduced page into %d sections", len(t.Sections))
	return t, nil
}

// ReduceNotebook processes a notebook-rendered tutorial page (flat
// heading/content stream).
func ReduceNotebook(doc *goquery.Document, pageURL string, opts Options) (*ReducedTutorial, error) {
	taskLog := opts.logger().WithField("page_url", pageURL)
	selector := opts.RootSelector
	if selector == "" {
		selector = defaultNotebookRoot
	}

	t := &ReducedTutorial{URL: pageURL}
	t.extractMetadata(doc, selector, taskLog)

	root := doc.Find(selector).First()
	if root.Length() == 0 {
		return nil, utils.WrapErrorf(utils.ErrContentSelector, "selector '%s' not found on page '%s'", selector, pageURL)
	}

	sections, err := reduce.IterNotebookSections(root.Nodes[0], pageURL, reduce.CleanNotebookHeading, reduce.CleanNotebookContent)
	if err != nil {
		return nil, err
	}
	t.appendAccepted(sections, opts)

	t.relocateSummary()
	taskLog.Debugf("reduced notebook page into %d sections", len(t.Sections))
	return t, nil
}

// extractMetadata pulls the page-level fields: h1 headline, author and
// keyword comma lists, summary paragraph, and content image URLs.
func (t *ReducedTutorial) extractMetadata(doc *goquery.Document, selector string, taskLog *logrus.Entry) {
	if h1 := doc.Find("h1").First(); h1.Length() > 0 {
		t.H1 = reduce.CleanSphinxHeading(h1.Text())
	}
	if p := doc.Find(selector + " p").First(); p.Length() > 0 {
		t.Authors = parseCommaList(p.Text())
	}
	if p := doc.Find("#keywords p").First(); p.Length() > 0 {
		t.Keywords = parseCommaList(p.Text())
	}
	if p := doc.Find("#summary p").First(); p.Length() > 0 {
		t.Summary = strings.TrimSpace(strings.ReplaceAll(p.Text(), "\n", " "))
	}

	base, err := url.Parse(t.URL)
	if err != nil {
		taskLog.Warnf("cannot parse page URL for image resolution: %v", err)
		return
	}
	doc.Find(selector + " img").Each(func(_ int, img *goquery.Selection) {
		src, ok := img.Attr("src")
		if !ok || src == "" {
			return
		}
		ref, err := url.Parse(src)
		if err != nil {
			taskLog.Debugf("skipping image with unparseable src '%s': %v", src, err)
			return
		}
		t.Images = append(t.Images, base.ResolveReference(ref).String())
	})
}

// appendAccepted appends the sections whose heading chains do not match the
// ignored metadata headings.
func (t *ReducedTutorial) appendAccepted(sections []reduce.Section, opts Options) {
	ignored := opts.ignoredSet()
	for _, s := range sections {
		if sectionIgnored(s, ignored, opts.IgnoredHeadingPatterns) {
			continue
		}
		t.Sections = append(t.Sections, s)
	}
}

// relocateSummary overwrites the top-level section's content with the page
// summary. This is the single permitted post-reduction mutation: the summary
// is a better representation of the whole page than the scraps of text that
// sit directly under the h1.
func (t *ReducedTutorial) relocateSummary() {
	if t.Summary == "" {
		return
	}
	for i := range t.Sections {
		if t.Sections[i].HeaderLevel() == 1 {
			t.Sections[i].Content = t.Summary
			return
		}
	}
}

func (o Options) logger() *logrus.Entry {
	if o.Log != nil {
		return o.Log
	}
	return logrus.NewEntry(logrus.StandardLogger())
}

func (o Options) ignoredSet() map[string]struct{} {
	headings := o.IgnoredHeadings
	if headings == nil {
		headings = defaultIgnoredHeadings
	}
	set := make(map[string]struct{}, len(headings))
	for _, h := range headings {
		set[strings.ToLower(h)] = struct{}{}
	}
	return set
}

func sectionIgnored(s reduce.Section, ignored map[string]struct{}, patterns []*regexp.Regexp) bool {
	for _, h := range s.Headings {
		if _, ok := ignored[strings.ToLower(h)]; ok {
			return true
		}
		for _, re := range patterns {
			if re.MatchString(h) {
				return true
			}
		}
	}
	return false
}

func parseCommaList(content string) []string {
	var out []string
	for _, part := range strings.Split(content, ",") {
		out = append(out, strings.TrimSpace(part))
	}
	return out
}
