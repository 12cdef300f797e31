// Package engine holds the pure game rules of rpg-tales: folding narrative
// deltas into the shared room document and deriving the screen a player
// should see from that document.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-tales/internal/engine Engine

import (
	"github.com/KirkDiggler/rpg-tales/internal/entities"
)

// Engine is the rules surface the orchestrators depend on
type Engine interface {
	// Merge folds delta into prev and returns the next state; prev is untouched
	Merge(prev *entities.GameState, delta *entities.NarrativeDelta) (*entities.GameState, *MergeReport)

	// Route derives the screen for localPlayerID from state
	Route(state *entities.GameState, localPlayerID string) entities.Screen

	// RollD20 rolls a twenty-sided die
	RollD20() (int, error)
}
