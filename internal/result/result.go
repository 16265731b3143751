// Package result implements the result assembler: for each scored docID,
// it resolves metadata, top keywords, and link neighborhoods into the rows
// the retrieval engine hands back to callers.
package result

import (
	"sort"
	"time"

	lru "github.com/hashicorp/golang-lru"

	scoring "github.com/frejajensen9/web-based-search-engine-24/internal/score"
	"github.com/frejajensen9/web-based-search-engine-24/internal/store"
)

const (
	maxKeywords    = 5
	maxChildLinks  = 10
	maxParentLinks = 10
	untitled       = "Untitled"
)

// Origin resolves the live metadata (last-modified time and byte size) the
// index does not keep durably -- these are resolved at report time from
// the live origin. A default, best-effort implementation lives in package
// fetch; tests use a stub that always returns a fixed time and size.
type Origin interface {
	Stat(url string) (lastModified time.Time, size int64, ok bool)
}

// KeywordCount is one entry in a Result's top-keyword list.
type KeywordCount struct {
	Term      string
	Frequency int
}

// Result is one assembled, ranked search hit.
type Result struct {
	URL             string
	Title           string
	LastModified    string
	Size            int64
	Keywords        []KeywordCount
	ParentLinks     []string
	ChildLinks      []string
	Score           float64
	NormalizedScore int
}

// Assembler resolves scored docIDs into Results. It caches assembled rows
// by docID across calls within one query session.
type Assembler struct {
	rs     *store.ReadSession
	origin Origin
	cache  *lru.Cache
}

// NewAssembler creates an Assembler bound to one read-only store snapshot.
// cacheSize <= 0 disables caching.
func NewAssembler(rs *store.ReadSession, origin Origin, cacheSize int) *Assembler {
	a := &Assembler{rs: rs, origin: origin}
	if cacheSize > 0 {
		if c, err := lru.New(cacheSize); err == nil {
			a.cache = c
		}
	}
	return a
}

// Assemble resolves one scored docID into a Result.
func (a *Assembler) Assemble(docID uint64, score float64) Result {
	if a.cache != nil {
		if cached, ok := a.cache.Get(docID); ok {
			r := cached.(Result)
			r.Score = score
			r.NormalizedScore = scoring.Normalize(score)
			return r
		}
	}

	url, _ := a.rs.URLForDoc(docID)

	title, ok := a.rs.TitleForDoc(docID)
	if !ok || title == "" {
		title = untitled
	}

	lastModified := "Unknown"
	var size int64
	if a.origin != nil {
		if lm, sz, ok := a.origin.Stat(url); ok {
			lastModified = lm.Format(time.RFC1123)
			size = sz
		}
	}

	r := Result{
		URL:          url,
		Title:        title,
		LastModified: lastModified,
		Size:         size,
		Keywords:     topKeywords(a.rs.DocTerms(docID), maxKeywords),
		ChildLinks:   a.rs.ChildLinks(docID, maxChildLinks),
		ParentLinks:  a.rs.ParentLinks(url, maxParentLinks),
	}

	if a.cache != nil {
		cacheable := r
		cacheable.Score = 0
		cacheable.NormalizedScore = 0
		a.cache.Add(docID, cacheable)
	}

	r.Score = score
	r.NormalizedScore = scoring.Normalize(score)
	return r
}

// topKeywords returns the top n terms by descending frequency, ties broken
// by lexicographic term order.
func topKeywords(terms []store.TermFreq, n int) []KeywordCount {
	sorted := make([]store.TermFreq, len(terms))
	copy(sorted, terms)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Frequency != sorted[j].Frequency {
			return sorted[i].Frequency > sorted[j].Frequency
		}
		return sorted[i].Term < sorted[j].Term
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	out := make([]KeywordCount, len(sorted))
	for i, t := range sorted {
		out[i] = KeywordCount{Term: t.Term, Frequency: t.Frequency}
	}
	return out
}
