// Package report implements the Crawl Report Writer (component O): for
// every indexed document, in ascending docID order, it writes one
// title/url/last-modified/size/keywords/child-links block to an io.Writer.
package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/frejajensen9/web-based-search-engine-24/internal/store"
)

const (
	maxKeywords   = 20
	maxChildLinks = 10
	untitled      = "Untitled"
)

// Origin resolves a document's live last-modified time and size; see
// internal/result.Origin for the same contract used by query results.
type Origin interface {
	Stat(url string) (lastModified time.Time, size int64, ok bool)
}

// Write iterates every document known to s, in ascending docID order (the
// order URLs were assigned during the crawl, which is URL->docID insertion
// order), and emits one report block per document to w.
func Write(w io.Writer, s *store.Store, origin Origin) error {
	return s.View(func(rs *store.ReadSession) error {
		n := rs.DocCount()
		for docID := uint64(0); docID < n; docID++ {
			if err := writeDocument(w, rs, origin, docID); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeDocument(w io.Writer, rs *store.ReadSession, origin Origin, docID uint64) error {
	url, ok := rs.URLForDoc(docID)
	if !ok {
		// Should not happen: every allocated docID gets a URL in the same
		// transaction it was allocated in.
		return nil
	}

	title, ok := rs.TitleForDoc(docID)
	if !ok || title == "" {
		title = untitled
	}

	lastModified := "Unknown"
	var size int64
	if origin != nil {
		if lm, sz, ok := origin.Stat(url); ok {
			lastModified = lm.Format(time.RFC1123)
			size = sz
		}
	}

	if _, err := fmt.Fprintf(w, "%s\n%s\n%s, %d bytes\n", title, url, lastModified, size); err != nil {
		return err
	}

	terms := rs.DocTerms(docID)
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Frequency != terms[j].Frequency {
			return terms[i].Frequency > terms[j].Frequency
		}
		return terms[i].Term < terms[j].Term
	})
	if len(terms) > maxKeywords {
		terms = terms[:maxKeywords]
	}
	if _, err := io.WriteString(w, "Keywords: "); err != nil {
		return err
	}
	for i, t := range terms {
		if i > 0 {
			if _, err := io.WriteString(w, "; "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s %d", t.Term, t.Frequency); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	if _, err := io.WriteString(w, "Child Links:\n"); err != nil {
		return err
	}
	for _, child := range rs.ChildLinks(docID, maxChildLinks) {
		if _, err := fmt.Fprintf(w, "%s\n", child); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "-----------------------------------------\n")
	return err
}
