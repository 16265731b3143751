// Package score implements the scorer: TF-IDF document vectors with a
// title-match boost, cosine similarity against a query vector, and
// combination of multiple query phrases by summing their per-phrase
// similarities.
package score

import (
	"math"
	"sort"
	"strings"
)

// TopK is the maximum number of ranked results Score returns.
const TopK = 50

// titleBoost is applied to a term's document-vector weight when the term
// occurs as a substring of the document's lower-cased title.
const titleBoost = 1.5

// DocStats is everything the scorer needs about one candidate document:
// the frequency of every term present anywhere in the document (not just
// the terms a particular query phrase cares about), the max term frequency
// across its whole body (for TF normalization), and its lower-cased title
// (for the boost).
type DocStats struct {
	DocID      uint64
	TermFreqs  map[string]int // every term present in the document -> its frequency
	MaxTF      int
	LowerTitle string
}

// TermStats carries the corpus-wide statistics (document frequency and,
// derived from it, idf) the scorer needs for each term appearing in the
// query.
type TermStats struct {
	DocFrequency int
}

// Scored is one document's combined score across every phrase in the
// query.
type Scored struct {
	DocID uint64
	Score float64
}

// idf computes log(N/df(t)). Terms with df(t) == 0 (never indexed) should
// never reach this function; callers skip them when building the query
// vector, since "idf(t) known" requires the term to have been seen at
// index time.
func idf(n int, df int) float64 {
	return math.Log(float64(n) / float64(df))
}

// queryVector builds V_q for one phrase: tf_q(t)/max_tf_q * idf(t), for
// terms whose idf is known (i.e. df(t) > 0).
func queryVector(phraseTerms []string, n int, corpus map[string]TermStats) map[string]float64 {
	tf := map[string]int{}
	maxTF := 0
	for _, t := range phraseTerms {
		tf[t]++
		if tf[t] > maxTF {
			maxTF = tf[t]
		}
	}
	if maxTF == 0 {
		return nil
	}

	vec := map[string]float64{}
	for t, freq := range tf {
		stats, known := corpus[t]
		if !known || stats.DocFrequency == 0 {
			continue
		}
		vec[t] = (float64(freq) / float64(maxTF)) * idf(n, stats.DocFrequency)
	}
	return vec
}

// DocumentVector builds V_d once per document, over every term in
// doc.TermFreqs -- the document's whole term set, not just the terms of
// whichever phrase happens to be scored next. The norm of V_d must sum
// over all of the document's own terms even though a cosine similarity's
// dot product only ever touches the terms shared with the query vector;
// building V_d from a phrase-restricted term set would silently drop the
// document's other terms from its norm and inflate every score. Callers
// compute this once per candidate document and reuse it across every
// phrase in the query.
func DocumentVector(doc DocStats, n int, corpus map[string]TermStats) map[string]float64 {
	vec := map[string]float64{}
	for t, freq := range doc.TermFreqs {
		if freq == 0 {
			continue
		}
		stats, known := corpus[t]
		if !known || stats.DocFrequency == 0 {
			continue
		}
		boost := 1.0
		if doc.LowerTitle != "" && strings.Contains(doc.LowerTitle, t) {
			boost = titleBoost
		}
		tf := float64(freq) / float64(doc.MaxTF)
		vec[t] = tf * idf(n, stats.DocFrequency) * boost
	}
	return vec
}

// cosine computes the conventional cosine similarity between two sparse
// vectors: dot product over shared keys, norms over each vector's own
// keys.
func cosine(a, b map[string]float64) float64 {
	var dot, normA, normB float64
	for t, av := range a {
		normA += av * av
		if bv, ok := b[t]; ok {
			dot += av * bv
		}
	}
	for _, bv := range b {
		normB += bv * bv
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// PhraseScore computes the cosine similarity contribution of a single
// phrase against a document's vector, built once per document by
// DocumentVector and reused across every phrase in a multi-phrase query.
func PhraseScore(phraseTerms []string, n int, corpus map[string]TermStats, docVector map[string]float64) float64 {
	qv := queryVector(phraseTerms, n, corpus)
	if len(qv) == 0 {
		return 0
	}
	return cosine(qv, docVector)
}

// Rank sorts scored documents descending by score, ties broken by
// ascending docID, and truncates to TopK.
func Rank(scored map[uint64]float64) []Scored {
	out := make([]Scored, 0, len(scored))
	for docID, s := range scored {
		out = append(out, Scored{DocID: docID, Score: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].DocID < out[j].DocID
	})
	if len(out) > TopK {
		out = out[:TopK]
	}
	return out
}

// Normalize clamps round(score*100) to [0, 100], the normalizedScore field
// of a result row.
func Normalize(score float64) int {
	n := int(math.Round(score * 100))
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
