// Package goquery implements HTML inspection of API reference pages using
// the goquery library.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docref"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure SectionExtractor implements docref.SectionExtractor at compile time.
var _ docref.SectionExtractor = (*SectionExtractor)(nil)

// SectionExtractor finds anchors and anchored sections in documentation pages.
type SectionExtractor struct{}

// NewSectionExtractor creates a new SectionExtractor.
func NewSectionExtractor() *SectionExtractor {
	return &SectionExtractor{}
}

// Anchors returns the id attributes and named anchors of the page in
// document order, without duplicates.
func (e *SectionExtractor) Anchors(htmlContent string) ([]string, error) {
	doc, err := parse(htmlContent)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	anchors := []string{}
	doc.Find("[id], a[name]").Each(func(_ int, sel *goquery.Selection) {
		for _, attr := range []string{"id", "name"} {
			v, ok := sel.Attr(attr)
			if !ok || v == "" || seen[v] {
				continue
			}
			if attr == "name" && goquery.NodeName(sel) != "a" {
				continue
			}
			seen[v] = true
			anchors = append(anchors, v)
		}
	})

	return anchors, nil
}

// Section returns the HTML of the section identified by anchor. When the
// anchor marks a heading, the section runs until the next heading of the
// same or a higher level. An empty named anchor stands for its parent.
func (e *SectionExtractor) Section(htmlContent string, anchor string) (string, error) {
	doc, err := parse(htmlContent)
	if err != nil {
		return "", err
	}

	if anchor == "" {
		body, err := doc.Find("body").Html()
		if err != nil {
			return "", docref.Errorf(docref.EINVALID, "failed to render body: %v", err)
		}
		return strings.TrimSpace(body), nil
	}

	target := find(doc, anchor)
	if target == nil {
		return "", docref.Errorf(docref.ENOTFOUND, "anchor %q not found", anchor)
	}

	var b strings.Builder
	if level := headingLevel(target); level > 0 {
		if err := html.Render(&b, target); err != nil {
			return "", err
		}
		for n := target.NextSibling; n != nil; n = n.NextSibling {
			if l := headingLevel(n); l > 0 && l <= level {
				break
			}
			if err := html.Render(&b, n); err != nil {
				return "", err
			}
		}
		return strings.TrimSpace(b.String()), nil
	}

	if err := html.Render(&b, target); err != nil {
		return "", err
	}
	return strings.TrimSpace(b.String()), nil
}

// find returns the node carrying the anchor as id, or the named anchor
// (promoted to its parent when empty).
func find(doc *goquery.Document, anchor string) *html.Node {
	var found *html.Node
	doc.Find("[id]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if id, _ := sel.Attr("id"); id == anchor {
			found = sel.Get(0)
			return false
		}
		return true
	})
	if found != nil {
		return found
	}

	doc.Find("a[name]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if name, _ := sel.Attr("name"); name == anchor {
			found = sel.Get(0)
			if strings.TrimSpace(sel.Text()) == "" && found.Parent != nil && found.Parent.DataAtom != atom.Body {
				found = found.Parent
			}
			return false
		}
		return true
	})
	return found
}

func headingLevel(n *html.Node) int {
	if n.Type != html.ElementNode {
		return 0
	}
	switch n.DataAtom {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	case atom.H4:
		return 4
	case atom.H5:
		return 5
	case atom.H6:
		return 6
	}
	return 0
}

func parse(htmlContent string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, docref.Errorf(docref.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}
