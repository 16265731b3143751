// Package htmlx implements the default HtmlExtractor (component M): title,
// visible body text, and outbound links pulled from a fetched page body via
// goquery. Links are returned as written; the crawler resolves them against
// the page's own URL before deciding whether each is new.
package htmlx

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/frejajensen9/web-based-search-engine-24/crawler"
)

// stripTags are removed before reading visible text, since their contents
// (script source, stylesheet rules) are never part of a page's prose.
var stripTags = []string{"script", "style", "noscript"}

// Extractor implements crawler.HtmlExtractor using goquery (which itself
// parses via golang.org/x/net/html).
type Extractor struct{}

// Extract implements crawler.HtmlExtractor. baseURL is not used; the caller
// (crawler.Crawl) resolves
// relative references via internal/urlnorm, so Extract returns hrefs
// exactly as written in the document.
func (Extractor) Extract(baseURL string, body []byte) (crawler.ExtractedPage, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return crawler.ExtractedPage{}, err
	}

	for _, tag := range stripTags {
		doc.Find(tag).Remove()
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	text := strings.Join(strings.Fields(doc.Find("body").Text()), " ")

	var links []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		if href, ok := sel.Attr("href"); ok && href != "" {
			links = append(links, href)
		}
	})

	return crawler.ExtractedPage{
		Title: title,
		Text:  text,
		Links: links,
	}, nil
}
