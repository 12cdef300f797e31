package journal

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-tales/internal/entities"
	"github.com/KirkDiggler/rpg-tales/internal/errors"
)

// InMemoryStore keeps journal entries in process
type InMemoryStore struct {
	mu      sync.Mutex
	entries map[string][]entities.JournalEntry
}

// Ensure InMemoryStore implements Repository
var _ Repository = (*InMemoryStore)(nil)

// NewInMemoryStore creates an empty journal
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{entries: make(map[string][]entities.JournalEntry)}
}

// Append records an entry with the next turn number for its room
func (s *InMemoryStore) Append(_ context.Context, input AppendInput) (*AppendOutput, error) {
	entry := input.Entry
	if err := validateEntry(entry); err != nil {
		return nil, err
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry.Turn = int64(len(s.entries[entry.RoomCode])) + 1
	s.entries[entry.RoomCode] = append(s.entries[entry.RoomCode], entry)

	return &AppendOutput{Entry: entry}, nil
}

// List returns the first Limit turns of a room
func (s *InMemoryStore) List(_ context.Context, input ListInput) (*ListOutput, error) {
	if input.RoomCode == "" {
		return nil, errors.InvalidArgument("room code is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.entries[input.RoomCode]
	if n := listLimit(input.Limit); len(entries) > n {
		entries = entries[:n]
	}

	out := slices.Clone(entries)
	if out == nil {
		out = []entities.JournalEntry{}
	}

	return &ListOutput{Entries: out}, nil
}
