package store

import (
	"bytes"
	"encoding/gob"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/frejajensen9/web-based-search-engine-24/internal/posting"
)

// Session is the transaction-scoped write capability handed to the Crawler
// for the duration of one crawl. Every call on a Session participates in
// the same bbolt read-write transaction; nothing is visible to readers
// until Crawl's transaction commits.
type Session struct {
	tx *bolt.Tx
}

// Crawl runs fn inside a single read-write transaction. If fn returns an
// error (or panics), every write made through the Session is rolled back --
// this is the crawl's single durability boundary.
func (s *Store) Crawl(fn func(*Session) error) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return fn(&Session{tx: tx})
	})
}

// NextDocID allocates the next dense docID from the durable counter and
// advances it. Because this happens inside the same transaction as the
// rest of the page's writes, the counter only really advances if the whole
// crawl session commits -- an aborted crawl reverts it along with
// everything else.
func (sess *Session) NextDocID() (uint64, error) {
	meta := sess.tx.Bucket(bucketMeta)
	var next uint64
	if raw := meta.Get(keyLastPageID); raw != nil {
		next = decodeUint64(raw)
	}
	if err := meta.Put(keyLastPageID, encodeUint64(next+1)); err != nil {
		return 0, err
	}
	return next, nil
}

// DocIDForURL reports the docID already recorded for url, if any. The
// Crawler uses this to implement "re-crawls of an already-known URL are
// skipped": identity is URL string equality, checked
// against the transaction's own writes so a crawl never double-indexes a
// URL it has already visited earlier in the same session.
func (sess *Session) DocIDForURL(url string) (uint64, bool) {
	raw := sess.tx.Bucket(bucketURLs).Get([]byte(url))
	if raw == nil {
		return 0, false
	}
	return decodeUint64(raw), true
}

// PutURL records the canonical URL -> docID mapping and its reverse.
func (sess *Session) PutURL(docID uint64, url string) error {
	if err := sess.tx.Bucket(bucketURLs).Put([]byte(url), encodeUint64(docID)); err != nil {
		return err
	}
	return sess.tx.Bucket(bucketDocURLs).Put(encodeUint64(docID), []byte(url))
}

// PutTitle records docID's title. A docID with no recorded title
// displays as "Untitled"; callers should simply not
// call PutTitle when the extracted title is empty.
func (sess *Session) PutTitle(docID uint64, title string) error {
	return sess.tx.Bucket(bucketTitles).Put(encodeUint64(docID), []byte(title))
}

// PutLinkEdge unconditionally records a (parentDocID, childURL) edge. The
// child URL need not correspond to any indexed document.
func (sess *Session) PutLinkEdge(parentDocID uint64, childURL string) error {
	return sess.tx.Bucket(bucketLinks).Put(linkKey(parentDocID, childURL), []byte{})
}

// AppendPosting records one occurrence of term at position within docID's
// body. Within a document, callers must append positions in ascending
// order (the crawler does this naturally, since the tokenizer emits
// positions in order).
func (sess *Session) AppendPosting(term string, docID uint64, position int) error {
	termBucket, err := sess.tx.Bucket(bucketPostings).CreateBucketIfNotExists([]byte(term))
	if err != nil {
		return fmt.Errorf("posting bucket for term %q: %w", term, err)
	}

	key := encodeUint64(docID)
	var p posting.Posting
	if raw := termBucket.Get(key); raw != nil {
		if err := gobDecode(raw, &p); err != nil {
			return fmt.Errorf("decode posting %q/%d: %w", term, docID, err)
		}
	}
	p.Add(position)

	encoded, err := gobEncode(p)
	if err != nil {
		return err
	}
	if err := termBucket.Put(key, encoded); err != nil {
		return err
	}

	return sess.bumpDocTerm(docID, term)
}

// bumpDocTerm keeps the per-document term-frequency cache in sync as
// postings are written, so keyword extraction never has to scan the whole
// index.
func (sess *Session) bumpDocTerm(docID uint64, term string) error {
	bucket := sess.tx.Bucket(bucketDocTerms)
	key := encodeUint64(docID)

	var terms []TermFreq
	if raw := bucket.Get(key); raw != nil {
		if err := gobDecode(raw, &terms); err != nil {
			return fmt.Errorf("decode docterms %d: %w", docID, err)
		}
	}

	found := false
	for i := range terms {
		if terms[i].Term == term {
			terms[i].Frequency++
			found = true
			break
		}
	}
	if !found {
		terms = append(terms, TermFreq{Term: term, Frequency: 1})
	}

	encoded, err := gobEncode(terms)
	if err != nil {
		return err
	}
	return bucket.Put(key, encoded)
}

func gobEncode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func gobDecode(raw []byte, v interface{}) error {
	return gob.NewDecoder(bytes.NewReader(raw)).Decode(v)
}
