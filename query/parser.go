// Package query implements the query parser and the top-level Search entry
// point that ties the parser together with the scorer, phrase matcher, and
// result assembler.
package query

import (
	"github.com/frejajensen9/web-based-search-engine-24/internal/token"
)

// maxPhraseLen is the trigram cap: a phrase is truncated to at most this
// many stems.
const maxPhraseLen = 3

// maxQueryWords is the total word-token budget across the whole query,
// counting each word inside a quoted phrase as one.
const maxQueryWords = 10

// Phrase is an ordered list of stems. A bare word becomes a one-element
// Phrase; a quoted span becomes a Phrase of all its constituent stems.
type Phrase []string

// Parse splits raw into bare-word and quoted-phrase tokens, stems each
// surviving word with the identical discipline the indexer uses (stop
// words dropped, position bookkeeping irrelevant here since within-phrase
// adjacency is checked later by the phrase matcher against stored
// positions), and returns the resulting list of phrases. An unbalanced
// trailing quote is treated as closing at end-of-string; malformed query
// shapes never produce an error, only a best-effort parse.
func Parse(raw string, stopWords token.StopWords) []Phrase {
	var phrases []Phrase
	wordBudget := maxQueryWords

	runes := []rune(raw)
	i := 0
	for i < len(runes) && wordBudget > 0 {
		switch {
		case runes[i] == '"':
			end := i + 1
			for end < len(runes) && runes[end] != '"' {
				end++
			}
			// runes[i+1:end] is the quoted span; if end == len(runes) the
			// quote was never closed and we treat it as closing at EOF.
			span := string(runes[i+1 : min(end, len(runes))])
			words := token.SplitWords(span)
			if len(words) > wordBudget {
				words = words[:wordBudget]
			}
			wordBudget -= len(words)

			phrase := stemWords(words, stopWords)
			if len(phrase) > maxPhraseLen {
				phrase = phrase[:maxPhraseLen]
			}
			if len(phrase) > 0 {
				phrases = append(phrases, phrase)
			}
			if end < len(runes) {
				i = end + 1
			} else {
				i = end
			}

		case isSpace(runes[i]):
			i++

		default:
			start := i
			for i < len(runes) && !isSpace(runes[i]) && runes[i] != '"' {
				i++
			}
			word := string(runes[start:i])
			wordBudget--
			if stem := token.Stem(word, stopWords); stem != "" {
				phrases = append(phrases, Phrase{stem})
			}
		}
	}

	return phrases
}

func stemWords(words []string, stopWords token.StopWords) Phrase {
	var phrase Phrase
	for _, w := range words {
		if stem := token.Stem(w, stopWords); stem != "" {
			phrase = append(phrase, stem)
		}
	}
	return phrase
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
