package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeScenario1(t *testing.T) {
	tokens := Tokenize("apple apple orange", StopWords{})
	require := []Token{
		{Position: 0, Stem: "appl"},
		{Position: 1, Stem: "appl"},
		{Position: 2, Stem: "orang"},
	}
	assert.Equal(t, require, tokens)
}

func TestTokenizeDropsStopWordsButAdvancesPosition(t *testing.T) {
	stop := StopWords{"the": {}}
	tokens := Tokenize("the quick brown fox", stop)
	assert.Equal(t, []Token{
		{Position: 1, Stem: "quick"},
		{Position: 2, Stem: "brown"},
		{Position: 3, Stem: "fox"},
	}, tokens)
}

func TestTokenizeIsDeterministic(t *testing.T) {
	a := Tokenize("Hello, World! Hello again.", StopWords{})
	b := Tokenize("Hello, World! Hello again.", StopWords{})
	assert.Equal(t, a, b)
}

func TestTokenizeEmptyPieceStillAdvancesPosition(t *testing.T) {
	// leading punctuation produces an empty split piece at position 0
	tokens := Tokenize("...orange", StopWords{})
	assert.Equal(t, []Token{{Position: 1, Stem: "orang"}}, tokens)
}

func TestSplitWordsMatchesTheNonWordRunBoundary(t *testing.T) {
	assert.Equal(t, []string{"rock", "and", "roll"}, SplitWords("rock-and-roll"))
}

func TestSplitWordsDropsEmptyPieces(t *testing.T) {
	assert.Equal(t, []string{"orange"}, SplitWords("...orange..."))
}
