// Package room provides the shared room document store and its change feed
package room

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-tales/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=roommock github.com/KirkDiggler/rpg-tales/internal/repositories/room Repository

const (
	// AnyVersion skips the optimistic version check on a write
	AnyVersion int64 = -1

	// DefaultTTL is how long an idle room survives; every write extends it
	DefaultTTL = 24 * time.Hour

	// DefaultPollInterval is how often watchers confirm the room still exists
	DefaultPollInterval = 5 * time.Second
)

// Change is one notification on a room's feed.
// State is the latest document; Gone means the room no longer exists and the
// feed is about to close.
type Change struct {
	State *entities.GameState
	Gone  bool
}

// CreateInput contains parameters for storing a new room
type CreateInput struct {
	State *entities.GameState
}

// CreateOutput contains the stored room
type CreateOutput struct {
	State *entities.GameState
}

// GetInput contains parameters for loading a room
type GetInput struct {
	Code string
}

// GetOutput contains the loaded room
type GetOutput struct {
	State *entities.GameState
}

// ExistsInput contains parameters for an existence check
type ExistsInput struct {
	Code string
}

// ExistsOutput reports whether the room exists
type ExistsOutput struct {
	Exists bool
}

// UpdateInput merges top-level fields into a room
type UpdateInput struct {
	Code            string
	Patch           Patch
	ExpectedVersion int64
}

// UpdateOutput contains the room after the update
type UpdateOutput struct {
	State *entities.GameState
}

// AddCharacterInput appends a character to a room's party
type AddCharacterInput struct {
	Code            string
	Character       entities.Character
	ExpectedVersion int64
}

// AddCharacterOutput contains the room after the append
type AddCharacterOutput struct {
	State *entities.GameState
}

// ReplaceInput overwrites a room document in full
type ReplaceInput struct {
	State           *entities.GameState
	ExpectedVersion int64
}

// ReplaceOutput contains the stored room
type ReplaceOutput struct {
	State *entities.GameState
}

// DeleteInput contains parameters for deleting a room
type DeleteInput struct {
	Code string
}

// DeleteOutput is empty for now
type DeleteOutput struct{}

// WatchInput contains parameters for subscribing to a room
type WatchInput struct {
	Code string
}

// WatchOutput carries the change feed. The channel is closed after a Gone
// change or when the watch context ends.
type WatchOutput struct {
	Changes <-chan Change
}

// Repository stores room documents. Every write bumps the document version
// and fails with Aborted when ExpectedVersion does not match the stored one.
// Writes never recreate a room that no longer exists.
type Repository interface {
	// Create stores a new room; AlreadyExists if the code is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get loads a room; NotFound if missing or expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Exists reports whether a room is stored
	Exists(ctx context.Context, input ExistsInput) (*ExistsOutput, error)

	// Update merges the patch into the stored room
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// AddCharacter appends to the party; ResourceExhausted when full
	AddCharacter(ctx context.Context, input AddCharacterInput) (*AddCharacterOutput, error)

	// Replace writes a full document computed from an earlier snapshot
	Replace(ctx context.Context, input ReplaceInput) (*ReplaceOutput, error)

	// Delete removes a room and notifies its watchers
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// Watch subscribes to a room. The current document is delivered first.
	Watch(ctx context.Context, input WatchInput) (*WatchOutput, error)
}
