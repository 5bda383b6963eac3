// Package cache persists legal-move sets in BadgerDB and layers the
// in-process memo table over them.
package cache

import (
	"encoding/binary"
	"encoding/json"
	"sync/atomic"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"github.com/lgbarn/rpgchess/internal/chess"
	"github.com/lgbarn/rpgchess/internal/errors"
	"github.com/lgbarn/rpgchess/internal/hashing"
)

// Storage keys
const (
	keyPrefixMoves = "m/"
	keyVersion     = "version"
)

// formatVersion is bumped whenever the fingerprint layout changes so that
// stale directories are refused instead of misread.
const formatVersion = "1"

// Store wraps BadgerDB for persistent move-set storage.
type Store struct {
	db     *badger.DB
	closed atomic.Bool
}

// OpenStore opens (or creates) a store in dir. An empty dir opens an
// in-memory store.
func OpenStore(dir string, log zerolog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(newBadgerLogger(log))
	if dir == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open move cache %q", dir)
	}
	s := &Store{db: db}
	if err := s.checkVersion(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// checkVersion stamps a new store and rejects one written with another
// key layout.
func (s *Store) checkVersion() error {
	return s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyVersion))
		if err == badger.ErrKeyNotFound {
			return txn.Set([]byte(keyVersion), []byte(formatVersion))
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if string(val) != formatVersion {
				return errors.Wrapf(errors.ErrInvalidConfig, "move cache format %q, want %q", val, formatVersion)
			}
			return nil
		})
	})
}

// Close closes the database. Later calls return nil.
func (s *Store) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.db.Close()
}

// Get returns the stored destination list for key.
func (s *Store) Get(key hashing.Key) ([]chess.Position, bool, error) {
	if s.closed.Load() {
		return nil, false, errors.ErrCacheClosed
	}

	var moves []chess.Position
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(encodeKey(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &moves)
		})
	})
	if err != nil {
		return nil, false, err
	}
	return moves, found, nil
}

// Put stores the destination list for key.
func (s *Store) Put(key hashing.Key, moves []chess.Position) error {
	if s.closed.Load() {
		return errors.ErrCacheClosed
	}
	if moves == nil {
		moves = []chess.Position{}
	}
	data, err := json.Marshal(moves)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(encodeKey(key), data)
	})
}

// Count returns the number of stored move sets.
func (s *Store) Count() (int, error) {
	if s.closed.Load() {
		return 0, errors.ErrCacheClosed
	}
	n := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefixMoves)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	return n, err
}

// encodeKey lays a key out as prefix, big-endian fingerprint, row, col.
func encodeKey(key hashing.Key) []byte {
	buf := make([]byte, 0, len(keyPrefixMoves)+10)
	buf = append(buf, keyPrefixMoves...)
	buf = binary.BigEndian.AppendUint64(buf, key.Fingerprint)
	return append(buf, byte(key.From.Row), byte(key.From.Col))
}
