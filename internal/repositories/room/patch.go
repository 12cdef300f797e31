package room

import (
	"maps"
	"slices"

	"github.com/KirkDiggler/rpg-tales/internal/entities"
)

// Patch lists top-level fields to overwrite. Nil fields are left alone.
// Nested values such as Map and Players replace the stored value whole.
type Patch struct {
	Status               *entities.Status
	Theme                *string
	GeneratedClasses     []string
	Inventory            []string
	StorySummary         *string
	Map                  *entities.GameMap
	Players              map[string]string
	ActiveCharacterIndex *int
	PlayerLimit          *int
	LastUpdate           *entities.NarrativeDelta
}

// Apply writes the set fields onto state
func (p Patch) Apply(state *entities.GameState) {
	if p.Status != nil {
		state.Status = *p.Status
	}
	if p.Theme != nil {
		state.Theme = *p.Theme
	}
	if p.GeneratedClasses != nil {
		state.GeneratedClasses = slices.Clone(p.GeneratedClasses)
	}
	if p.Inventory != nil {
		state.Inventory = slices.Clone(p.Inventory)
	}
	if p.StorySummary != nil {
		state.StorySummary = *p.StorySummary
	}
	if p.Map != nil {
		state.Map = entities.GameMap{
			Locations:       slices.Clone(p.Map.Locations),
			CurrentPosition: p.Map.CurrentPosition,
		}
	}
	if p.Players != nil {
		state.Players = maps.Clone(p.Players)
	}
	if p.ActiveCharacterIndex != nil {
		state.ActiveCharacterIndex = *p.ActiveCharacterIndex
	}
	if p.PlayerLimit != nil {
		state.PlayerLimit = *p.PlayerLimit
	}
	if p.LastUpdate != nil {
		state.LastUpdate = p.LastUpdate.Clone()
	}
}

// IsEmpty reports whether the patch changes nothing
func (p Patch) IsEmpty() bool {
	return p.Status == nil && p.Theme == nil && p.GeneratedClasses == nil &&
		p.Inventory == nil && p.StorySummary == nil && p.Map == nil &&
		p.Players == nil && p.ActiveCharacterIndex == nil && p.PlayerLimit == nil &&
		p.LastUpdate == nil
}
