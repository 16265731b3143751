package result

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frejajensen9/web-based-search-engine-24/internal/store"
	"github.com/frejajensen9/web-based-search-engine-24/internal/token"
)

type fakeOrigin struct{}

func (fakeOrigin) Stat(url string) (time.Time, int64, bool) {
	return time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), 1024, true
}

func openIndexed(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "index.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	require.NoError(t, s.Crawl(func(sess *store.Session) error {
		docID, err := sess.NextDocID()
		require.NoError(t, err)
		require.NoError(t, sess.PutURL(docID, "http://example.com/a"))
		require.NoError(t, sess.PutTitle(docID, "About Apples"))
		for _, tok := range token.Tokenize("apple apple orange", token.StopWords{}) {
			require.NoError(t, sess.AppendPosting(tok.Stem, docID, tok.Position))
		}
		return nil
	}))
	return s
}

func TestAssembleFillsMetadataAndKeywords(t *testing.T) {
	s := openIndexed(t)
	require.NoError(t, s.View(func(rs *store.ReadSession) error {
		a := NewAssembler(rs, fakeOrigin{}, 0)
		r := a.Assemble(0, 0.75)

		assert.Equal(t, "http://example.com/a", r.URL)
		assert.Equal(t, "About Apples", r.Title)
		assert.Equal(t, int64(1024), r.Size)
		require.NotEmpty(t, r.Keywords)
		assert.Equal(t, "appl", r.Keywords[0].Term)
		assert.Equal(t, 2, r.Keywords[0].Frequency)
		assert.Equal(t, 75, r.NormalizedScore)
		return nil
	}))
}

func TestAssembleMissingTitleFallsBackToUntitled(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "index.db"))
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Crawl(func(sess *store.Session) error {
		docID, err := sess.NextDocID()
		require.NoError(t, err)
		return sess.PutURL(docID, "http://example.com/untitled")
	}))

	require.NoError(t, s.View(func(rs *store.ReadSession) error {
		a := NewAssembler(rs, nil, 0)
		r := a.Assemble(0, 0)
		assert.Equal(t, "Untitled", r.Title)
		assert.Equal(t, "Unknown", r.LastModified)
		return nil
	}))
}

func TestAssembleCachesMetadataAcrossCalls(t *testing.T) {
	s := openIndexed(t)
	require.NoError(t, s.View(func(rs *store.ReadSession) error {
		a := NewAssembler(rs, fakeOrigin{}, 8)
		first := a.Assemble(0, 0.2)
		second := a.Assemble(0, 0.9)

		assert.Equal(t, first.URL, second.URL)
		assert.Equal(t, 20, first.NormalizedScore)
		assert.Equal(t, 90, second.NormalizedScore)
		return nil
	}))
}
