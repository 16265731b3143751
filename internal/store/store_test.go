package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "index.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPostingPositionsAndFrequency(t *testing.T) {
	s := openTemp(t)

	err := s.Crawl(func(sess *Session) error {
		docID, err := sess.NextDocID()
		require.NoError(t, err)
		require.NoError(t, sess.PutURL(docID, "http://a.example/"))
		require.NoError(t, sess.AppendPosting("appl", docID, 0))
		require.NoError(t, sess.AppendPosting("appl", docID, 1))
		return nil
	})
	require.NoError(t, err)

	err = s.View(func(rs *ReadSession) error {
		p, ok := rs.Posting("appl", 0)
		require.True(t, ok)
		assert.Equal(t, 2, p.Frequency)
		assert.Equal(t, []int{0, 1}, p.Positions)
		return nil
	})
	require.NoError(t, err)
}

func TestOrphanPostingsNeverAppearWithoutAURL(t *testing.T) {
	s := openTemp(t)
	err := s.Crawl(func(sess *Session) error {
		docID, err := sess.NextDocID()
		require.NoError(t, err)
		require.NoError(t, sess.PutURL(docID, "http://a.example/"))
		return sess.AppendPosting("orang", docID, 0)
	})
	require.NoError(t, err)

	err = s.View(func(rs *ReadSession) error {
		for docID := range rs.Postings("orang") {
			_, ok := rs.URLForDoc(docID)
			assert.True(t, ok, "posting docID %d has no URL entry", docID)
		}
		return nil
	})
	require.NoError(t, err)
}

func TestAbortedCrawlLeavesStoreUntouched(t *testing.T) {
	s := openTemp(t)

	err := s.Crawl(func(sess *Session) error {
		docID, err := sess.NextDocID()
		require.NoError(t, err)
		require.NoError(t, sess.PutURL(docID, "http://a.example/"))
		return assertFailure
	})
	assert.ErrorIs(t, err, assertFailure)

	err = s.View(func(rs *ReadSession) error {
		assert.Equal(t, uint64(0), rs.DocCount())
		_, ok := rs.DocIDForURL("http://a.example/")
		assert.False(t, ok)
		return nil
	})
	require.NoError(t, err)
}

func TestRestartDurability(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.db")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Crawl(func(sess *Session) error {
		for i := 0; i < 5; i++ {
			docID, err := sess.NextDocID()
			require.NoError(t, err)
			require.NoError(t, sess.PutURL(docID, "http://seed-a.example/p"+string(rune('0'+i))))
		}
		return nil
	}))
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	require.NoError(t, s2.Crawl(func(sess *Session) error {
		for i := 0; i < 5; i++ {
			docID, err := sess.NextDocID()
			require.NoError(t, err)
			require.NoError(t, sess.PutURL(docID, "http://seed-b.example/p"+string(rune('0'+i))))
		}
		return nil
	}))

	err = s2.View(func(rs *ReadSession) error {
		assert.Equal(t, uint64(10), rs.DocCount())
		for i := 0; i < 5; i++ {
			docID, ok := rs.DocIDForURL("http://seed-a.example/p" + string(rune('0'+i)))
			require.True(t, ok)
			assert.Equal(t, uint64(i), docID)
		}
		for i := 0; i < 5; i++ {
			docID, ok := rs.DocIDForURL("http://seed-b.example/p" + string(rune('0'+i)))
			require.True(t, ok)
			assert.Equal(t, uint64(i+5), docID)
		}
		return nil
	})
	require.NoError(t, err)
}

var assertFailure = errors.New("forced failure")
