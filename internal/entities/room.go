// Package entities provides core data structures for rpg-tales.
package entities

import (
	"slices"
	"time"
)

// Status is the lifecycle phase stored on a room document
type Status string

// Room statuses
const (
	StatusSetup                 Status = "setup"
	StatusLobby                 Status = "lobby"
	StatusSoloCharacterCreation Status = "solo_character_creation"
	StatusPlaying               Status = "playing"
)

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	switch s {
	case StatusSetup, StatusLobby, StatusSoloCharacterCreation, StatusPlaying:
		return true
	}
	return false
}

const (
	// RoomCodeLength is the number of characters in a room code
	RoomCodeLength = 6

	// Party size bounds offered during setup
	MinSoloPartySize   = 1
	MaxSoloPartySize   = 4
	MinMultiPlayers    = 2
	MaxMultiPlayers    = 8
	DefaultSoloLimit   = 1
	DefaultMultiLimit  = 3
	DefaultMapPosition = 50
)

// Position is a point on the map in 0-100 percentage coordinates
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// MapLocation is a named point of interest discovered by the party
type MapLocation struct {
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	LocationName string  `json:"location_name"`
	Icon         string  `json:"icon"`
}

// Position returns the coordinates of the location
func (l MapLocation) Position() Position {
	return Position{X: l.X, Y: l.Y}
}

// GameMap holds every discovered location and where the party stands
type GameMap struct {
	Locations       []MapLocation `json:"locations"`
	CurrentPosition Position      `json:"currentPosition"`
}

// GameState is the single shared document for a room
type GameState struct {
	Code                 string            `json:"code"`
	HostID               string            `json:"hostId"`
	Status               Status            `json:"status"`
	IsSolo               bool              `json:"isSolo"`
	Players              map[string]string `json:"players"`
	Characters           []Character       `json:"characters"`
	Theme                string            `json:"theme"`
	GeneratedClasses     []string          `json:"generatedClasses"`
	Inventory            []string          `json:"inventory"`
	StorySummary         string            `json:"storySummary"`
	Map                  GameMap           `json:"map"`
	ActiveCharacterIndex int               `json:"activeCharacterIndex"`
	LastUpdate           *NarrativeDelta   `json:"lastUpdate"`
	PlayerLimit          int               `json:"playerLimit"`

	// Version is bumped by the store on every write and compared on update
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewGameState builds the initial document for a freshly created room
func NewGameState(code, hostID string, isSolo bool, now time.Time) *GameState {
	limit := DefaultMultiLimit
	if isSolo {
		limit = DefaultSoloLimit
	}

	return &GameState{
		Code:             code,
		HostID:           hostID,
		Status:           StatusSetup,
		IsSolo:           isSolo,
		Players:          map[string]string{},
		Characters:       []Character{},
		GeneratedClasses: []string{},
		Inventory:        []string{},
		Map: GameMap{
			Locations:       []MapLocation{},
			CurrentPosition: Position{X: DefaultMapPosition, Y: DefaultMapPosition},
		},
		PlayerLimit: limit,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Clone returns a deep copy so callers can derive a new state without
// touching the original.
func (g *GameState) Clone() *GameState {
	if g == nil {
		return nil
	}

	out := *g

	if g.Players != nil {
		out.Players = make(map[string]string, len(g.Players))
		for k, v := range g.Players {
			out.Players[k] = v
		}
	}
	out.Characters = slices.Clone(g.Characters)
	out.GeneratedClasses = slices.Clone(g.GeneratedClasses)
	out.Inventory = slices.Clone(g.Inventory)
	out.Map.Locations = slices.Clone(g.Map.Locations)
	out.LastUpdate = g.LastUpdate.Clone()

	return &out
}

// ActiveCharacter returns the character whose turn it is, or nil
func (g *GameState) ActiveCharacter() *Character {
	if g.ActiveCharacterIndex < 0 || g.ActiveCharacterIndex >= len(g.Characters) {
		return nil
	}
	return &g.Characters[g.ActiveCharacterIndex]
}

// HasCharacterFor reports whether playerID already owns a character
func (g *GameState) HasCharacterFor(playerID string) bool {
	for _, c := range g.Characters {
		if c.PlayerID == playerID {
			return true
		}
	}
	return false
}

// IsFull reports whether the party reached its player limit
func (g *GameState) IsFull() bool {
	return len(g.Characters) >= g.PlayerLimit
}
