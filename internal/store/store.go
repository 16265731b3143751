// Package store is the persistent index store. It wraps a single embedded
// bbolt database, whose buckets are the "named roots" of
// the record-store contract: a key-value store with string keys, opaque
// serialized values, and an explicit commit boundary. Every mutation made
// during one crawl happens inside a single bbolt read-write transaction, so
// "a crash mid-crawl leaves the store in its pre-crawl state" holds by
// construction -- there is nothing to roll back by hand.
package store

import (
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/frejajensen9/web-based-search-engine-24/internal/posting"
)

var (
	bucketURLs     = []byte("urls")     // url -> docID
	bucketDocURLs  = []byte("docurls")  // docID -> url (reverse of bucketURLs)
	bucketTitles   = []byte("titles")   // docID -> title (absent => Untitled)
	bucketPostings = []byte("postings") // one sub-bucket per term: docID -> gob(Posting)
	bucketDocTerms = []byte("docterms") // docID -> gob([]TermFreq) (keyword-extraction cache)
	bucketLinks    = []byte("links")    // parentDocID+NUL+childURL -> nil
	bucketMeta     = []byte("meta")     // single key: lastPageId
)

var keyLastPageID = []byte("lastPageId")

var allBuckets = [][]byte{
	bucketURLs, bucketDocURLs, bucketTitles, bucketPostings,
	bucketDocTerms, bucketLinks, bucketMeta,
}

// TermFreq is one entry in a document's cached term list, used by the
// Result Assembler to compute top keywords without scanning every term in
// the index.
type TermFreq struct {
	Term      string
	Frequency int
}

// Store is the embedded record store backing the whole index.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if necessary) the bbolt file at path and ensures all
// named roots exist.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o644, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open store %q: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range allBuckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the underlying file.
func (s *Store) Close() error {
	return s.db.Close()
}

func encodeUint64(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

func decodeUint64(b []byte) uint64 {
	return binary.BigEndian.Uint64(b)
}

func linkKey(parentDocID uint64, childURL string) []byte {
	key := make([]byte, 0, 9+len(childURL))
	key = append(key, encodeUint64(parentDocID)...)
	key = append(key, 0x00)
	key = append(key, childURL...)
	return key
}

func splitLinkKey(key []byte) (parentDocID uint64, childURL string) {
	parentDocID = decodeUint64(key[:8])
	childURL = string(key[9:])
	return
}

func init() {
	gob.Register(posting.Posting{})
	gob.Register([]TermFreq{})
}
