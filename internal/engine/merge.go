package engine

import (
	"github.com/KirkDiggler/rpg-tales/internal/entities"
)

// MergeReport describes parts of a delta that had no effect
type MergeReport struct {
	// UnmatchedCharacters lists health change targets with no character of
	// that exact name. Their changes were skipped.
	UnmatchedCharacters []string

	// LocationAdded is true when map_update introduced a new location
	LocationAdded bool
}

// Merge folds a narrative delta into prev and returns the next state.
//
// prev is never mutated. Absent optional fields leave the matching part of the
// state unchanged. The turn always advances by one, wrapping around the party.
func Merge(prev *entities.GameState, delta *entities.NarrativeDelta) (*entities.GameState, *MergeReport) {
	next := prev.Clone()
	report := &MergeReport{}

	if delta == nil {
		return next, report
	}

	if len(delta.FoundItems) > 0 {
		next.Inventory = append(next.Inventory, delta.FoundItems...)
	}

	for _, hc := range delta.HealthChanges {
		idx := findCharacter(next.Characters, hc.CharacterName)
		if idx < 0 {
			report.UnmatchedCharacters = append(report.UnmatchedCharacters, hc.CharacterName)
			continue
		}
		next.Characters[idx].ApplyHealthChange(hc.Change)
	}

	if mu := delta.MapUpdate; mu != nil {
		next.Map.CurrentPosition = mu.Position()
		if !hasLocationAt(next.Map.Locations, mu.Position()) {
			next.Map.Locations = append(next.Map.Locations, *mu)
			report.LocationAdded = true
		}
	}

	if delta.StorySummary != "" {
		next.StorySummary = delta.StorySummary
	}

	next.LastUpdate = delta.Clone()

	if n := len(next.Characters); n > 0 {
		next.ActiveCharacterIndex = (next.ActiveCharacterIndex + 1) % n
	}

	return next, report
}

// findCharacter returns the index of the first character named exactly name
func findCharacter(characters []entities.Character, name string) int {
	for i := range characters {
		if characters[i].Name == name {
			return i
		}
	}
	return -1
}

// hasLocationAt uses exact coordinate equality, no tolerance
func hasLocationAt(locations []entities.MapLocation, pos entities.Position) bool {
	for _, loc := range locations {
		if loc.X == pos.X && loc.Y == pos.Y {
			return true
		}
	}
	return false
}
