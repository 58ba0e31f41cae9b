// Package archive persists a Historian's emitted entries to an append-only
// LevelDB database and replays them back for offline verification. It only
// ever consumes the historian's output channel; the historian's running
// hash is never read or written here.
package archive

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"errors"
	"fmt"
	"log"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/tolelom/pohlog/poh"
)

// ErrNotFound is the sentinel for a missing entry. No function in this
// package returns it: ReadAll on an empty archive returns no entries and a
// nil error.
var ErrNotFound = errors.New("archive: not found")

func init() {
	// Event is a sealed interface; gob needs each concrete variant
	// registered before it can encode/decode an Entry through it.
	gob.Register(poh.Tick{})
	gob.Register(poh.Discovery{})
	gob.Register(poh.Claim{})
	gob.Register(poh.Transaction{})
}

// Writer appends entries to a LevelDB database, keyed by a monotonically
// increasing sequence number so iteration order matches chain order.
type Writer struct {
	db  *leveldb.DB
	seq uint64
}

// Open opens (or creates) a Writer backed by a LevelDB database at path.
func Open(path string) (*Writer, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("open archive %q: %w", path, err)
	}
	return NewWriter(db), nil
}

// NewWriter wraps an already-open LevelDB handle, e.g. one opened against
// an in-memory storage.Storage in tests. Numbering continues after the last
// entry already stored, so reopening an archive never overwrites it.
func NewWriter(db *leveldb.DB) *Writer {
	w := &Writer{db: db}
	iter := db.NewIterator(nil, nil)
	if iter.Last() {
		w.seq = binary.BigEndian.Uint64(iter.Key()) + 1
	}
	iter.Release()
	return w
}

// Append persists entry under the next sequence number.
func (w *Writer) Append(entry poh.Entry) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(entry); err != nil {
		return fmt.Errorf("encode entry %d: %w", w.seq, err)
	}
	if err := w.db.Put(seqKey(w.seq), buf.Bytes(), nil); err != nil {
		return fmt.Errorf("append entry %d: %w", w.seq, err)
	}
	w.seq++
	return nil
}

// Run drains entries into the archive until the channel is closed. Append
// failures are logged rather than returned: a slow or failing archive must
// not stall whatever is driving the historian's output channel.
func (w *Writer) Run(entries <-chan poh.Entry) {
	for e := range entries {
		if err := w.Append(e); err != nil {
			log.Printf("[archive] append failed: %v", err)
		}
	}
}

// Close closes the underlying database.
func (w *Writer) Close() error {
	return w.db.Close()
}

// Reader replays a previously archived run.
type Reader struct {
	db *leveldb.DB
}

// OpenReader opens an existing archive at path for reading.
func OpenReader(path string) (*Reader, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("open archive %q: %w", path, err)
	}
	return NewReader(db), nil
}

// NewReader wraps an already-open LevelDB handle.
func NewReader(db *leveldb.DB) *Reader {
	return &Reader{db: db}
}

// ReadAll replays every archived entry in sequence order.
func (r *Reader) ReadAll() ([]poh.Entry, error) {
	iter := r.db.NewIterator(util.BytesPrefix(nil), nil)
	defer iter.Release()

	var entries []poh.Entry
	for iter.Next() {
		var e poh.Entry
		if err := gob.NewDecoder(bytes.NewReader(iter.Value())).Decode(&e); err != nil {
			return nil, fmt.Errorf("decode entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Close closes the underlying database.
func (r *Reader) Close() error {
	return r.db.Close()
}

func seqKey(seq uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], seq)
	return b[:]
}
