// Search ties the Query Parser together with the Scorer, Phrase Matcher,
// and Result Assembler into the single entry point: search(query) ->
// []Result.
package query

import (
	"strings"

	"github.com/frejajensen9/web-based-search-engine-24/internal/phrase"
	"github.com/frejajensen9/web-based-search-engine-24/internal/posting"
	"github.com/frejajensen9/web-based-search-engine-24/internal/result"
	"github.com/frejajensen9/web-based-search-engine-24/internal/score"
	"github.com/frejajensen9/web-based-search-engine-24/internal/store"
	"github.com/frejajensen9/web-based-search-engine-24/internal/token"
)

// Search runs one query against s: parses raw into phrases, gates candidate
// documents through the phrase matcher, scores the survivors with TF-IDF +
// title boost, ranks the top 50, and assembles full Result rows.
//
// It opens a single read-only transaction (via s.View), so every phrase,
// every candidate document, and every assembled row is read against the
// same snapshot -- a "most recently committed at query start" guarantee
// that comes directly from bbolt's MVCC semantics.
func Search(s *store.Store, raw string, stopWords token.StopWords, origin result.Origin, cacheSize int) ([]result.Result, error) {
	var results []result.Result

	err := s.View(func(rs *store.ReadSession) error {
		phrases := Parse(raw, stopWords)
		if len(phrases) == 0 {
			return nil
		}

		n := int(rs.DocCount())
		corpus := map[string]score.TermStats{}
		addToCorpus := func(t string) {
			if _, ok := corpus[t]; !ok {
				corpus[t] = score.TermStats{DocFrequency: rs.DocFrequency(t)}
			}
		}
		for _, p := range phrases {
			for _, t := range p {
				addToCorpus(t)
			}
		}

		candidates := candidateDocs(rs, phrases)
		scored := map[uint64]float64{}
		for _, docID := range candidates {
			if !passesPhraseGate(rs, phrases, docID) {
				continue
			}

			stats := docStats(rs, docID)
			for t := range stats.TermFreqs {
				addToCorpus(t)
			}
			docVector := score.DocumentVector(stats, n, corpus)

			total := 0.0
			for _, p := range phrases {
				total += score.PhraseScore(p, n, corpus, docVector)
			}
			scored[docID] = total
		}

		assembler := result.NewAssembler(rs, origin, cacheSize)
		for _, sc := range score.Rank(scored) {
			results = append(results, assembler.Assemble(sc.DocID, sc.Score))
		}
		return nil
	})

	return results, err
}

// candidateDocs returns the union, across every phrase's every term, of
// docIDs with at least one posting -- documents that cannot possibly match
// any phrase's first term are never scored.
func candidateDocs(rs *store.ReadSession, phrases []Phrase) []uint64 {
	seen := map[uint64]struct{}{}
	var out []uint64
	for _, p := range phrases {
		for _, t := range p {
			for docID := range rs.Postings(t) {
				if _, ok := seen[docID]; !ok {
					seen[docID] = struct{}{}
					out = append(out, docID)
				}
			}
		}
	}
	return out
}

// passesPhraseGate reports whether docID matches every phrase in the query:
// a document only counts as a hit if it passes the phrase gate for every
// phrase, not just any one of them.
func passesPhraseGate(rs *store.ReadSession, phrases []Phrase, docID uint64) bool {
	for _, p := range phrases {
		if !phrase.Matches(p, docPostings(rs, p, docID)) {
			return false
		}
	}
	return true
}

func docPostings(rs *store.ReadSession, terms []string, docID uint64) map[string]posting.Posting {
	out := make(map[string]posting.Posting, len(terms))
	for _, t := range terms {
		if p, ok := rs.Posting(t, docID); ok {
			out[t] = p
		}
	}
	return out
}

// docStats assembles a score.DocStats for docID covering every term the
// document contains -- not just the terms of whichever phrase is being
// scored -- from the cached per-document term list, so the scorer can
// build one full document vector and reuse it across every phrase.
func docStats(rs *store.ReadSession, docID uint64) score.DocStats {
	terms := rs.DocTerms(docID)
	freqs := make(map[string]int, len(terms))
	maxTF := 0
	for _, t := range terms {
		freqs[t.Term] = t.Frequency
		if t.Frequency > maxTF {
			maxTF = t.Frequency
		}
	}
	title, _ := rs.TitleForDoc(docID)

	return score.DocStats{
		DocID:      docID,
		TermFreqs:  freqs,
		MaxTF:      maxTF,
		LowerTitle: strings.ToLower(title),
	}
}
