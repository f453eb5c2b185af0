package scrape

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

var sanitizer = bluemonday.StrictPolicy()

// SanitizeText strips any markup from a scraped fragment and collapses
// whitespace. Free-text fields go through this before the parsing engine
// ever sees them.
func SanitizeText(s string) string {
	return normalizeSpace(sanitizer.Sanitize(s))
}

// HTMLToText converts an HTML document to plain text.
func HTMLToText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return normalizeSpace(html)
	}
	return normalizeSpace(doc.Text())
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func resolveURL(base, href string) string {
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	h, err := url.Parse(href)
	if err != nil {
		return href
	}
	return b.ResolveReference(h).String()
}

// ExtractGrants pulls candidate grants out of a listing page using the
// source's selectors. Items without a title are skipped; everything else
// is kept raw for the parsing engine to grade.
func ExtractGrants(doc *goquery.Document, src SourceConfig, pageURL string) []RawGrant {
	sel := src.Selectors
	if sel.Container == "" {
		return nil
	}

	var grants []RawGrant
	doc.Find(sel.Container).Each(func(_ int, item *goquery.Selection) {
		g := RawGrant{
			AdministeringBody: src.Defaults["administering_body"],
			WebLink:           pageURL,
		}

		if sel.Title != "" {
			g.Name = SanitizeText(item.Find(sel.Title).First().Text())
		}
		if g.Name == "" {
			return
		}

		if sel.Link != "" {
			attr := sel.LinkAttr
			if attr == "" {
				attr = "href"
			}
			if href, ok := item.Find(sel.Link).First().Attr(attr); ok {
				g.WebLink = resolveURL(pageURL, href)
			}
		}
		if sel.Purpose != "" {
			g.Purpose = SanitizeText(item.Find(sel.Purpose).First().Text())
		}
		if sel.Deadline != "" {
			g.Deadline = SanitizeText(item.Find(sel.Deadline).First().Text())
		}
		if sel.FundingAmount != "" {
			g.FundingAmount = SanitizeText(item.Find(sel.FundingAmount).First().Text())
		}

		grants = append(grants, g)
	})

	return grants
}
