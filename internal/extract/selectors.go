package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"

	"github.com/pitchforge/pitchforge/internal/fetcher"
)

// Locator identifies one extraction candidate: a CSS or XPath selector plus
// the attribute to read (empty means text content).
type Locator struct {
	Selector string
	Type     string // "css" (default) or "xpath"
	Attr     string
}

// CSS builds a text-content CSS locator.
func CSS(selector string) Locator { return Locator{Selector: selector, Type: "css"} }

// XPath builds an XPath locator reading the given attribute (or text when
// attr is empty).
func XPath(selector, attr string) Locator {
	return Locator{Selector: selector, Type: "xpath", Attr: attr}
}

// FirstMatch evaluates an ordered list of locator candidates against a page
// and returns the first non-empty trimmed value, or fallback when every
// candidate comes up empty. This is the shared "first non-empty result
// wins" combinator every site extractor builds on.
func FirstMatch(page *fetcher.Page, candidates []Locator, fallback string) string {
	for _, loc := range candidates {
		if val := evalOne(page, loc); val != "" {
			return val
		}
	}
	return fallback
}

// evalOne evaluates a single locator and returns the trimmed value of its
// first match, or "" when nothing matches.
func evalOne(page *fetcher.Page, loc Locator) string {
	if loc.Type == "xpath" {
		root, err := page.Root()
		if err != nil {
			return ""
		}
		node, err := htmlquery.Query(root, loc.Selector)
		if err != nil || node == nil {
			return ""
		}
		if loc.Attr != "" {
			return strings.TrimSpace(htmlquery.SelectAttr(node, loc.Attr))
		}
		return strings.TrimSpace(htmlquery.InnerText(node))
	}

	doc, err := page.Document()
	if err != nil {
		return ""
	}
	sel := doc.Find(loc.Selector).First()
	if sel.Length() == 0 {
		return ""
	}
	if loc.Attr != "" {
		val, _ := sel.Attr(loc.Attr)
		return strings.TrimSpace(val)
	}
	return strings.TrimSpace(sel.Text())
}

// ImageSources tries each image selector in order and returns the sources
// of the first selector that matches any elements. Reads src with a
// data-src fallback, the usual lazy-loading convention.
func ImageSources(page *fetcher.Page, selectors []string) []string {
	doc, err := page.Document()
	if err != nil {
		return nil
	}
	for _, selector := range selectors {
		sel := doc.Find(selector)
		if sel.Length() == 0 {
			continue
		}
		var srcs []string
		sel.Each(func(_ int, s *goquery.Selection) {
			src, ok := s.Attr("src")
			if !ok || src == "" {
				src, _ = s.Attr("data-src")
			}
			if src != "" {
				srcs = append(srcs, src)
			}
		})
		return srcs
	}
	return nil
}
