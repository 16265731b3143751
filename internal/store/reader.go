package store

import (
	"bytes"

	bolt "go.etcd.io/bbolt"

	"github.com/frejajensen9/web-based-search-engine-24/internal/posting"
)

// ReadSession is the transaction-scoped read capability handed to the
// retrieval engine for the duration of one query. It is backed by a single
// bbolt read-only transaction, so it always observes the most recently
// committed crawl -- the "snapshot most recently committed at query start"
// guarantee comes directly from bbolt's MVCC semantics.
type ReadSession struct {
	tx *bolt.Tx
}

// View runs fn inside a read-only transaction.
func (s *Store) View(fn func(*ReadSession) error) error {
	return s.db.View(func(tx *bolt.Tx) error {
		return fn(&ReadSession{tx: tx})
	})
}

// DocCount returns N, the total number of indexed documents (the durable
// docID counter).
func (rs *ReadSession) DocCount() uint64 {
	if raw := rs.tx.Bucket(bucketMeta).Get(keyLastPageID); raw != nil {
		return decodeUint64(raw)
	}
	return 0
}

// DocIDForURL returns the docID for a canonical URL, if known.
func (rs *ReadSession) DocIDForURL(url string) (uint64, bool) {
	raw := rs.tx.Bucket(bucketURLs).Get([]byte(url))
	if raw == nil {
		return 0, false
	}
	return decodeUint64(raw), true
}

// URLForDoc returns the canonical URL for a docID, if known.
func (rs *ReadSession) URLForDoc(docID uint64) (string, bool) {
	raw := rs.tx.Bucket(bucketDocURLs).Get(encodeUint64(docID))
	if raw == nil {
		return "", false
	}
	return string(raw), true
}

// TitleForDoc returns the recorded title and whether one was recorded. An
// absent title means the caller should display "Untitled".
func (rs *ReadSession) TitleForDoc(docID uint64) (string, bool) {
	raw := rs.tx.Bucket(bucketTitles).Get(encodeUint64(docID))
	if raw == nil {
		return "", false
	}
	return string(raw), true
}

// DocFrequency returns df(t): the number of documents with any posting for
// term t.
func (rs *ReadSession) DocFrequency(term string) int {
	termBucket := rs.tx.Bucket(bucketPostings).Bucket([]byte(term))
	if termBucket == nil {
		return 0
	}
	return termBucket.Stats().KeyN
}

// Posting returns the posting for (term, docID), if any.
func (rs *ReadSession) Posting(term string, docID uint64) (posting.Posting, bool) {
	termBucket := rs.tx.Bucket(bucketPostings).Bucket([]byte(term))
	if termBucket == nil {
		return posting.Posting{}, false
	}
	raw := termBucket.Get(encodeUint64(docID))
	if raw == nil {
		return posting.Posting{}, false
	}
	var p posting.Posting
	if err := gobDecode(raw, &p); err != nil {
		return posting.Posting{}, false
	}
	return p, true
}

// Postings returns every (docID -> Posting) pair recorded for term.
func (rs *ReadSession) Postings(term string) map[uint64]posting.Posting {
	termBucket := rs.tx.Bucket(bucketPostings).Bucket([]byte(term))
	if termBucket == nil {
		return nil
	}
	out := make(map[uint64]posting.Posting, termBucket.Stats().KeyN)
	_ = termBucket.ForEach(func(k, v []byte) error {
		var p posting.Posting
		if err := gobDecode(v, &p); err != nil {
			return nil
		}
		out[decodeUint64(k)] = p
		return nil
	})
	return out
}

// DocTerms returns the cached term-frequency list for docID, used for
// cheap top-keyword extraction.
func (rs *ReadSession) DocTerms(docID uint64) []TermFreq {
	raw := rs.tx.Bucket(bucketDocTerms).Get(encodeUint64(docID))
	if raw == nil {
		return nil
	}
	var terms []TermFreq
	if err := gobDecode(raw, &terms); err != nil {
		return nil
	}
	return terms
}

// ChildLinks returns up to limit child URLs recorded for parentDocID, in
// the order bbolt stores them (lexicographic on the structured key, i.e.
// insertion order is not preserved but the parent prefix scan is O(edges
// for that parent), not O(all edges)).
func (rs *ReadSession) ChildLinks(parentDocID uint64, limit int) []string {
	bucket := rs.tx.Bucket(bucketLinks)
	c := bucket.Cursor()

	prefix := append(encodeUint64(parentDocID), 0x00)
	var links []string
	for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix) && len(links) < limit; k, _ = c.Next() {
		_, child := splitLinkKey(k)
		links = append(links, child)
	}
	return links
}

// ParentLinks returns up to limit URLs of documents that link to childURL.
// Unlike ChildLinks this is not prefix-scannable on the stored key (edges
// are keyed by parent, not child), so it is a linear scan of the link
// graph. Child/parent resolution only needs to stay internally consistent,
// not be efficient in the reverse direction.
func (rs *ReadSession) ParentLinks(childURL string, limit int) []string {
	bucket := rs.tx.Bucket(bucketLinks)
	var links []string
	_ = bucket.ForEach(func(k, _ []byte) error {
		if len(links) >= limit {
			return nil
		}
		parentDocID, child := splitLinkKey(k)
		if child != childURL {
			return nil
		}
		if url, ok := rs.URLForDoc(parentDocID); ok {
			links = append(links, url)
		}
		return nil
	})
	return links
}
