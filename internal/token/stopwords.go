package token

import (
	"bufio"
	"os"
	"strings"

	"github.com/frejajensen9/web-based-search-engine-24/internal/logging"
)

// StopWords is a case-sensitive set of already-lower-cased stop words.
type StopWords map[string]struct{}

// LoadStopWords reads one stop word per line from path, trimming
// leading/trailing whitespace and ignoring blank lines. If the file cannot
// be read, it logs a warning and returns an empty set: a missing or broken
// stop word file must not stop indexing.
func LoadStopWords(path string) StopWords {
	set := StopWords{}
	if path == "" {
		return set
	}

	f, err := os.Open(path)
	if err != nil {
		logging.Warn("stop word file %q unreadable, indexing with an empty stop word set: %v", path, err)
		return set
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		set[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		logging.Warn("error reading stop word file %q, proceeding with partial set: %v", path, err)
	}
	return set
}

// Contains reports whether word (already lower-cased) is a stop word. A nil
// set never contains anything.
func (s StopWords) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s[word]
	return ok
}
