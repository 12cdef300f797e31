package rpgtoolkit

import "github.com/KirkDiggler/rpg-tales/internal/entities"

// Entity types published on the rpg-toolkit event bus
const (
	EntityTypeRoom      = "room"
	EntityTypeCharacter = "character"
)

// RoomEntity wraps entities.GameState to implement core.Entity interface
type RoomEntity struct {
	*entities.GameState
}

// GetID returns the room code
func (r *RoomEntity) GetID() string {
	return r.Code
}

// GetType returns the entity type for rpg-toolkit
func (r *RoomEntity) GetType() string {
	return EntityTypeRoom
}

// CharacterEntity wraps entities.Character to implement core.Entity interface.
// Characters are keyed by their owning player.
type CharacterEntity struct {
	*entities.Character
}

// GetID returns the owning player's ID
func (c *CharacterEntity) GetID() string {
	return c.PlayerID
}

// GetType returns the entity type for rpg-toolkit
func (c *CharacterEntity) GetType() string {
	return EntityTypeCharacter
}

// WrapRoom converts a game state to a RoomEntity
func WrapRoom(state *entities.GameState) *RoomEntity {
	return &RoomEntity{GameState: state}
}

// WrapCharacter converts a character to a CharacterEntity
func WrapCharacter(character *entities.Character) *CharacterEntity {
	return &CharacterEntity{Character: character}
}
