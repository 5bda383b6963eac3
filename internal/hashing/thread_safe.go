package hashing

import (
	"sync"

	"github.com/lgbarn/rpgchess/internal/chess"
)

// ThreadSafeMoveSetTable wraps MoveSetTable with mutex protection for concurrent access.
type ThreadSafeMoveSetTable struct {
	table *MoveSetTable
	mu    sync.RWMutex
}

// NewThreadSafeMoveSetTable creates a new thread-safe table.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeMoveSetTable(maxCapacity int) *ThreadSafeMoveSetTable {
	return &ThreadSafeMoveSetTable{
		table: NewMoveSetTable(maxCapacity),
	}
}

// Lookup returns the memoised list for key. It takes the write lock because
// it updates the hit counters.
func (t *ThreadSafeMoveSetTable) Lookup(key Key) ([]chess.Position, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Lookup(key)
}

// Store memoises moves for key.
func (t *ThreadSafeMoveSetTable) Store(key Key, moves []chess.Position) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Store(key, moves)
}

// Len returns the number of memoised entries.
func (t *ThreadSafeMoveSetTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Len()
}

// Stats returns the hit and miss counts.
func (t *ThreadSafeMoveSetTable) Stats() (hits, misses int) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Hits(), t.table.Misses()
}

// IsFull returns true if the table has reached its capacity limit.
func (t *ThreadSafeMoveSetTable) IsFull() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.IsFull()
}

// Reset clears the table.
func (t *ThreadSafeMoveSetTable) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.table.Reset()
}
