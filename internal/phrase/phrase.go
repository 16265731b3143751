// Package phrase implements the phrase matcher: a boolean gate, not a
// scorer, that checks whether a document's recorded positions admit a
// given phrase as a run of consecutive token positions.
package phrase

import "github.com/frejajensen9/web-based-search-engine-24/internal/posting"

// Matches reports whether document d (given as term -> Posting for just
// the terms in phrase, already looked up by the caller) satisfies phrase.
// A single-term phrase matches iff its term has any posting at all. A
// multi-term phrase matches iff some position π makes π+(i-1) a recorded
// position of the i-th stem for every i.
func Matches(phrase []string, postings map[string]posting.Posting) bool {
	if len(phrase) == 0 {
		return false
	}
	if len(phrase) == 1 {
		p, ok := postings[phrase[0]]
		return ok && p.Frequency > 0
	}

	first, ok := postings[phrase[0]]
	if !ok {
		return false
	}

	for _, start := range first.Positions {
		if matchesFrom(phrase, postings, start) {
			return true
		}
	}
	return false
}

func matchesFrom(phrase []string, postings map[string]posting.Posting, start int) bool {
	for i, term := range phrase {
		p, ok := postings[term]
		if !ok {
			return false
		}
		if !hasPosition(p, start+i) {
			return false
		}
	}
	return true
}

func hasPosition(p posting.Posting, pos int) bool {
	// Positions are strictly increasing, so this could binary search; the
	// phrase lengths here are capped at 3 (the query parser's trigram
	// cap) and postings are typically short, so a linear scan is simpler
	// and plenty fast.
	for _, candidate := range p.Positions {
		if candidate == pos {
			return true
		}
		if candidate > pos {
			break
		}
	}
	return false
}
