// Package token implements the tokenizer and stemmer: lower-case, split on
// non-word runs, drop stop words, apply the Porter stemming algorithm, and
// emit (position, stem) pairs where position is assigned *before*
// stop-word filtering so that phrase queries stay coherent with the source
// text's spacing.
package token

import (
	"regexp"
	"strings"

	porterstemmer "github.com/blevesearch/go-porterstemmer"
)

// Token is one surviving (position, stem) pair from Tokenize.
type Token struct {
	Position int
	Stem     string
}

// nonWordRun matches a run of one-or-more characters that are not ASCII
// letters, digits, or underscore -- the word/non-word boundary used for
// splitting.
var nonWordRun = regexp.MustCompile(`[^0-9A-Za-z_]+`)

// Tokenize lower-cases text, splits it on runs of non-word characters, and
// stems and filters the resulting pieces. Splitting this way (rather than
// scanning word-runs directly) means a leading or trailing separator run
// produces an empty piece that still consumes a position slot even though
// it emits nothing -- exactly the "empty tokens are counted positionally"
// rule the phrase matcher depends on to stay aligned with the source
// text's spacing. Stop words and tokens that stem to nothing are dropped
// the same way: position advances, nothing is emitted.
func Tokenize(text string, stopWords StopWords) []Token {
	pieces := nonWordRun.Split(strings.ToLower(text), -1)

	tokens := make([]Token, 0, len(pieces))
	for position, raw := range pieces {
		if raw == "" || stopWords.Contains(raw) {
			continue
		}
		stem := porterstemmer.StemString(raw)
		if stem == "" {
			continue
		}
		tokens = append(tokens, Token{Position: position, Stem: stem})
	}
	return tokens
}

// Stem lower-cases and stems a single already-split word, returning "" if
// the word is a stop word or stems to nothing. Used by the query parser,
// which must apply the identical discipline to query terms.
func Stem(word string, stopWords StopWords) string {
	word = strings.ToLower(word)
	if stopWords.Contains(word) {
		return ""
	}
	return porterstemmer.StemString(word)
}

// SplitWords splits s on the same non-word-run boundary Tokenize uses, so
// a caller that needs to tokenize text outside of Tokenize itself (such as
// the query parser's quoted-phrase spans) matches the indexer's splitting
// rule exactly instead of drifting to whitespace-only splitting. Unlike
// Tokenize, empty pieces from a leading or trailing separator run are
// dropped rather than kept as position placeholders: callers of this
// function resolve adjacency from stored postings, not from split index.
func SplitWords(s string) []string {
	pieces := nonWordRun.Split(s, -1)
	words := make([]string, 0, len(pieces))
	for _, p := range pieces {
		if p != "" {
			words = append(words, p)
		}
	}
	return words
}
