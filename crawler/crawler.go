// Package crawler implements the Crawler (component D): a bounded
// breadth-first frontier expansion that fetches pages, extracts links and
// text, and writes the resulting postings, titles, and link edges to the
// Index Store in a single end-of-crawl commit.
package crawler

import (
	"context"
	"time"

	"github.com/frejajensen9/web-based-search-engine-24/internal/logging"
	"github.com/frejajensen9/web-based-search-engine-24/internal/store"
	"github.com/frejajensen9/web-based-search-engine-24/internal/token"
	"github.com/frejajensen9/web-based-search-engine-24/internal/urlnorm"
)

// Page is what a Fetcher returns for one successfully fetched URL.
type Page struct {
	Body          []byte
	LastModified  time.Time
	ContentLength int64
}

// Fetcher retrieves the body of a page. Implementations apply their own
// timeout and redirect policy; Fetch returning a non-nil error is always
// treated by Crawl as "skip this URL silently."
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (Page, error)
}

// ExtractedPage is what an HtmlExtractor returns for one fetched body.
type ExtractedPage struct {
	Title string
	Text  string
	Links []string
}

// HtmlExtractor pulls a title, visible body text, and outbound links out of
// a fetched page body. Links may be relative; Crawl resolves each one
// against the page's URL itself.
type HtmlExtractor interface {
	Extract(baseURL string, body []byte) (ExtractedPage, error)
}

// Crawl runs one bounded BFS session seeded at seedURL, fetching and
// indexing at most maxPages documents, then commits the whole session to s
// in a single transaction. This is the only durability boundary: a
// failure partway through aborts the transaction and leaves s exactly as it
// was before Crawl was called.
func Crawl(ctx context.Context, s *store.Store, f Fetcher, x HtmlExtractor, stopWords token.StopWords, seedURL string, maxPages int) error {
	seed, ok := urlnorm.Canonical(seedURL)
	if !ok {
		return nil
	}

	return s.Crawl(func(sess *store.Session) error {
		frontier := []string{seed}
		visited := map[string]struct{}{seed: {}}
		indexed := 0

		for len(frontier) > 0 && indexed < maxPages {
			u := frontier[0]
			frontier = frontier[1:]

			if _, already := sess.DocIDForURL(u); already {
				continue
			}

			page, err := f.Fetch(ctx, u)
			if err != nil {
				logging.Debug("skipping %s: fetch failed: %v", u, err)
				continue
			}

			extracted, err := x.Extract(u, page.Body)
			if err != nil {
				logging.Debug("skipping %s: extraction failed: %v", u, err)
				continue
			}

			docID, err := sess.NextDocID()
			if err != nil {
				return err
			}
			if err := sess.PutURL(docID, u); err != nil {
				return err
			}
			indexed++

			for _, link := range extracted.Links {
				child, ok := urlnorm.Resolve(u, link)
				if !ok {
					continue
				}
				if err := sess.PutLinkEdge(docID, child); err != nil {
					return err
				}
				if _, seen := visited[child]; !seen {
					visited[child] = struct{}{}
					frontier = append(frontier, child)
				}
			}

			if extracted.Title != "" {
				if err := sess.PutTitle(docID, extracted.Title); err != nil {
					return err
				}
			}

			if extracted.Text != "" {
				for _, tok := range token.Tokenize(extracted.Text, stopWords) {
					if err := sess.AppendPosting(tok.Stem, docID, tok.Position); err != nil {
						return err
					}
				}
			}
		}

		return nil
	})
}
