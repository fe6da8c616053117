// Package leaderboard keeps the persisted list of player wins, sorted by
// score. Persistence is delegated to a Store.
package leaderboard

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
)

// Key is the fixed storage key of the leaderboard blob.
const Key = "pongLeaderboard"

// DefaultTop is how many entries are shown.
const DefaultTop = 7

// Size returns n when it is positive and DefaultTop otherwise.
func Size(n int) int {
	if n > 0 {
		return n
	}
	return DefaultTop
}

// Entry is one recorded player win.
type Entry struct {
	Name       string `json:"name"`
	Score      int    `json:"score"`
	Difficulty string `json:"difficulty"`
}

// String formats the entry as "name (difficulty) - score".
func (e Entry) String() string {
	return fmt.Sprintf("%s (%s) - %d", e.Name, e.Difficulty, e.Score)
}

// Store persists the whole ordered list.
type Store interface {
	Load() ([]Entry, error)
	Save([]Entry) error
}

// Board records wins into a Store. It is safe for concurrent use; SSH
// sessions share one Board.
type Board struct {
	mu     sync.Mutex
	store  Store
	logger *log.Logger
}

// New creates a board backed by store. A nil logger discards warnings.
func New(store Store, logger *log.Logger) *Board {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Board{store: store, logger: logger}
}

// Record appends an entry, re-sorts by score descending (ties keep insertion
// order) and saves the list.
func (b *Board) Record(e Entry) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.load()
	list = append(list, e)
	SortEntries(list)
	if err := b.store.Save(list); err != nil {
		return fmt.Errorf("leaderboard: cannot save: %w", err)
	}
	b.logger.Info("Leaderboard entry recorded", "name", e.Name, "score", e.Score, "difficulty", e.Difficulty)
	return nil
}

// Top returns the n best entries. Unreadable data yields an empty list.
func (b *Board) Top(n int) []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.load()
	if n >= 0 && len(list) > n {
		list = list[:n]
	}
	return list
}

// All returns every stored entry.
func (b *Board) All() []Entry {
	return b.Top(-1)
}

// load reads the list, degrading to empty on any error.
func (b *Board) load() []Entry {
	list, err := b.store.Load()
	if err != nil {
		b.logger.Warn("Leaderboard unreadable, starting empty", "error", err)
		return nil
	}
	SortEntries(list)
	return list
}

// SortEntries sorts by score descending, keeping insertion order for ties.
func SortEntries(list []Entry) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Score > list[j].Score
	})
}

// Encode serializes the list in the persisted JSON layout.
func Encode(list []Entry) ([]byte, error) {
	if list == nil {
		list = []Entry{}
	}
	return json.Marshal(list)
}

// Decode parses the persisted JSON layout. Empty input is an empty list.
func Decode(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var list []Entry
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("leaderboard: malformed data: %w", err)
	}
	return list, nil
}

// MemoryStore keeps the list in memory. Used by tests and by front ends
// started without a database.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load decodes the stored blob.
func (m *MemoryStore) Load() ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Decode(m.data)
}

// Save encodes and stores the list.
func (m *MemoryStore) Save(list []Entry) error {
	data, err := Encode(list)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data = data
	m.mu.Unlock()
	return nil
}

// SetRaw replaces the stored blob as-is.
func (m *MemoryStore) SetRaw(data []byte) {
	m.mu.Lock()
	m.data = append([]byte(nil), data...)
	m.mu.Unlock()
}
