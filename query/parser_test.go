package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frejajensen9/web-based-search-engine-24/internal/token"
)

func TestParseQuotedSpanSplitsOnPunctuationLikeTheIndexer(t *testing.T) {
	phrases := Parse(`"rock-and-roll forever"`, token.StopWords{})
	want := []Phrase{{"rock", "and", "roll"}}
	assert.Equal(t, want, phrases)
}

func TestParseBareWordStemsAndDropsStopWords(t *testing.T) {
	stop := token.StopWords{"the": {}}
	phrases := Parse("the fox", stop)
	assert.Equal(t, []Phrase{{"fox"}}, phrases)
}

func TestParseUnclosedQuoteClosesAtEndOfString(t *testing.T) {
	phrases := Parse(`"open phrase`, token.StopWords{})
	assert.Equal(t, []Phrase{{"open", "phrase"}}, phrases)
}
