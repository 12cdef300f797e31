package session

import (
	"time"

	"github.com/KirkDiggler/rpg-tales/internal/entities"
)

// AuthenticateInput contains the optional display label for a new player
type AuthenticateInput struct {
	Label string
}

// AuthenticateOutput contains the new identity and its bearer token
type AuthenticateOutput struct {
	PlayerID  string
	Token     string
	ExpiresAt time.Time
}

// CreateRoomInput contains parameters for opening a room
type CreateRoomInput struct {
	PlayerID   string
	PlayerName string
	IsSolo     bool
}

// CreateRoomOutput contains the new room
type CreateRoomOutput struct {
	State  *entities.GameState
	Screen entities.Screen
}

// JoinRoomInput contains parameters for joining by code
type JoinRoomInput struct {
	PlayerID   string
	PlayerName string
	Code       string
}

// JoinRoomOutput contains the joined room
type JoinRoomOutput struct {
	State  *entities.GameState
	Screen entities.Screen
}

// GetRoomInput identifies a room and the player looking at it
type GetRoomInput struct {
	PlayerID string
	Code     string
}

// GetRoomOutput contains the room and the screen it routes the player to
type GetRoomOutput struct {
	State  *entities.GameState
	Screen entities.Screen
}

// RoomExistsInput identifies a room
type RoomExistsInput struct {
	Code string
}

// RoomExistsOutput reports whether the room exists
type RoomExistsOutput struct {
	Exists bool
}

// GenerateClassesInput asks for classes matching a theme
type GenerateClassesInput struct {
	PlayerID string
	Code     string
	Theme    string
}

// GenerateClassesOutput contains the stored classes
type GenerateClassesOutput struct {
	State   *entities.GameState
	Classes []string
}

// ConfirmSetupInput finishes room setup
type ConfirmSetupInput struct {
	PlayerID    string
	Code        string
	Theme       string
	PlayerLimit int
}

// ConfirmSetupOutput contains the room after setup
type ConfirmSetupOutput struct {
	State *entities.GameState
}

// ConfirmCharacterInput creates the caller's hero
type ConfirmCharacterInput struct {
	PlayerID  string
	Code      string
	Name      string
	Class     string
	Backstory string
}

// ConfirmCharacterOutput contains the room after the hero joined.
// Started is true when the party became complete and the adventure began.
type ConfirmCharacterOutput struct {
	State   *entities.GameState
	Started bool
}

// StartGameInput starts a multiplayer adventure
type StartGameInput struct {
	PlayerID string
	Code     string
}

// StartGameOutput contains the room after the opening narration
type StartGameOutput struct {
	State *entities.GameState
}

// PerformActionInput is one player turn.
// RollText, when set, is parsed instead of Roll.
type PerformActionInput struct {
	PlayerID string
	Code     string
	Action   string
	Roll     int
	RollText string
}

// PerformActionOutput contains the merged room
type PerformActionOutput struct {
	State *entities.GameState
}

// GenerateSceneImageInput asks for the illustration of the latest scene
type GenerateSceneImageInput struct {
	PlayerID string
	Code     string
}

// GenerateSceneImageOutput holds a data URI, empty when no image could be made
type GenerateSceneImageOutput struct {
	Image  string
	Prompt string
}

// GetJournalInput selects the turn log of a room
type GetJournalInput struct {
	Code  string
	Limit int
}

// GetJournalOutput holds the turns oldest first
type GetJournalOutput struct {
	Entries []entities.JournalEntry
}

// RollD20Input is empty for now
type RollD20Input struct{}

// RollD20Output holds one d20 result
type RollD20Output struct {
	Roll int
}

// WatchRoomInput subscribes a player to a room
type WatchRoomInput struct {
	PlayerID string
	Code     string
}

// RoomUpdate is one snapshot delivered to a watcher
type RoomUpdate struct {
	State  *entities.GameState
	Screen entities.Screen
	Gone   bool
}

// WatchRoomOutput carries the update stream. It closes after a Gone update
// or when the watch context ends.
type WatchRoomOutput struct {
	Updates <-chan RoomUpdate
}
