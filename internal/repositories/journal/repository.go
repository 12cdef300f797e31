// Package journal stores the turn-by-turn log of each room
package journal

import (
	"context"

	"github.com/KirkDiggler/rpg-tales/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=journalmock github.com/KirkDiggler/rpg-tales/internal/repositories/journal Repository

// DefaultListLimit caps List when no limit is given
const DefaultListLimit = 100

// AppendInput contains the entry to record. Turn is assigned by the store.
type AppendInput struct {
	Entry entities.JournalEntry
}

// AppendOutput contains the stored entry
type AppendOutput struct {
	Entry entities.JournalEntry
}

// ListInput selects the entries of one room
type ListInput struct {
	RoomCode string
	Limit    int
}

// ListOutput holds entries oldest first
type ListOutput struct {
	Entries []entities.JournalEntry
}

// Repository defines the interface for journal storage operations
type Repository interface {
	// Append records one merged turn, numbering it after the room's last turn
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// List returns a room's turns in order
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}
