package cache

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lgbarn/rpgchess/internal/chess"
	"github.com/lgbarn/rpgchess/internal/config"
	"github.com/lgbarn/rpgchess/internal/engine"
	"github.com/lgbarn/rpgchess/internal/hashing"
)

// Cache answers legal-move queries from the memo table, then the store,
// then the engine, filling the faster layers on the way back. It is safe
// for concurrent use.
type Cache struct {
	memo  *hashing.ThreadSafeMoveSetTable
	store *Store // nil without a persistent layer
	log   zerolog.Logger

	storeHits   atomic.Int64
	storeMisses atomic.Int64
	storeErrors atomic.Int64
}

// Stats reports cache activity.
type Stats struct {
	MemoHits    int   `json:"memo_hits"`
	MemoMisses  int   `json:"memo_misses"`
	MemoEntries int   `json:"memo_entries"`
	MemoFull    bool  `json:"memo_full"`
	StoreHits   int64 `json:"store_hits"`
	StoreMisses int64 `json:"store_misses"`
	StoreErrors int64 `json:"store_errors"`
}

// New builds a cache from cfg, opening badger when cfg asks for a
// persistent layer.
func New(cfg *config.CacheConfig, log zerolog.Logger) (*Cache, error) {
	c := &Cache{
		memo: hashing.NewThreadSafeMoveSetTable(cfg.MemoCapacity),
		log:  log,
	}
	if cfg.Persistent() {
		store, err := OpenStore(cfg.Dir, log)
		if err != nil {
			return nil, err
		}
		c.store = store
		log.Debug().Str("dir", cfg.Dir).Bool("in_memory", cfg.InMemory).Msg("move cache opened")
	}
	return c, nil
}

// NewMemoOnly builds a cache with no persistent layer.
func NewMemoOnly(capacity int, log zerolog.Logger) *Cache {
	return &Cache{memo: hashing.NewThreadSafeMoveSetTable(capacity), log: log}
}

// LegalMoves returns engine.LegalMoves(pos, board, mover, opts), from cache
// when possible. Store failures are logged and fall through to the engine.
func (c *Cache) LegalMoves(board *chess.Board, pos chess.Position, mover chess.Colour, opts engine.Options) []chess.Position {
	key := hashing.Key{Fingerprint: hashing.Fingerprint(board, mover, opts), From: pos}
	return c.lookup(key, func() []chess.Position {
		return engine.LegalMoves(pos, board, mover, opts)
	})
}

// AllLegalMoves is engine.AllLegalMoves with every per-piece query served
// through the cache.
func (c *Cache) AllLegalMoves(board *chess.Board, mover chess.Colour, opts engine.Options) []engine.PieceMoves {
	fp := hashing.Fingerprint(board, mover, opts)
	var out []engine.PieceMoves
	for _, from := range board.PiecesOf(mover) {
		to := c.lookup(hashing.Key{Fingerprint: fp, From: from}, func() []chess.Position {
			return engine.LegalMoves(from, board, mover, opts)
		})
		if len(to) > 0 {
			out = append(out, engine.PieceMoves{From: from, Piece: board.Get(from), To: to})
		}
	}
	return out
}

func (c *Cache) lookup(key hashing.Key, compute func() []chess.Position) []chess.Position {
	if moves, ok := c.memo.Lookup(key); ok {
		return moves
	}

	if c.store != nil {
		moves, ok, err := c.store.Get(key)
		switch {
		case err != nil:
			c.storeErrors.Add(1)
			c.log.Warn().Err(err).Uint64("fingerprint", key.Fingerprint).Msg("move cache read failed")
		case ok:
			c.storeHits.Add(1)
			c.memo.Store(key, moves)
			return moves
		default:
			c.storeMisses.Add(1)
		}
	}

	moves := compute()
	c.memo.Store(key, moves)
	if c.store != nil {
		if err := c.store.Put(key, moves); err != nil {
			c.storeErrors.Add(1)
			c.log.Warn().Err(err).Uint64("fingerprint", key.Fingerprint).Msg("move cache write failed")
		}
	}
	return moves
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() Stats {
	hits, misses := c.memo.Stats()
	return Stats{
		MemoHits:    hits,
		MemoMisses:  misses,
		MemoEntries: c.memo.Len(),
		MemoFull:    c.memo.IsFull(),
		StoreHits:   c.storeHits.Load(),
		StoreMisses: c.storeMisses.Load(),
		StoreErrors: c.storeErrors.Load(),
	}
}

// Close drops the memo entries and closes the persistent layer, if any.
// Later queries still work and are computed afresh.
func (c *Cache) Close() error {
	c.memo.Reset()
	if c.store == nil {
		return nil
	}
	return c.store.Close()
}
