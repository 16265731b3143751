package console

import (
	"fmt"
	"strings"

	"github.com/frejajensen9/web-based-search-engine-24/internal/result"
)

// joinKeywords renders a Result's keyword list as a comma-separated
// "term(freq)" form.
func joinKeywords(keywords []result.KeywordCount) string {
	parts := make([]string, len(keywords))
	for i, k := range keywords {
		parts[i] = fmt.Sprintf("%s(%d)", k.Term, k.Frequency)
	}
	return strings.Join(parts, ", ")
}

func joinStrings(items []string) string {
	return strings.Join(items, ", ")
}
