package engine

import (
	"github.com/KirkDiggler/rpg-tales/internal/entities"
)

// Route derives the screen localPlayerID should see. It is pure: the same
// inputs always give the same screen and nothing is written anywhere.
//
// ScreenNone is returned for UnknownPhase; callers keep their current screen.
func Route(state *entities.GameState, localPlayerID string) entities.Screen {
	return ScreenFor(PhaseOf(state, localPlayerID))
}

// ScreenFor maps a phase to its screen
func ScreenFor(phase Phase) entities.Screen {
	switch p := phase.(type) {
	case GonePhase:
		return entities.ScreenEntry
	case PlayingPhase:
		return entities.ScreenGame
	case SetupPhase:
		return entities.ScreenSetup
	case SoloCreationPhase:
		return entities.ScreenCharacterCreation
	case LobbyPhase:
		if !p.IsSolo && !p.HasLocalCharacter {
			return entities.ScreenCharacterCreation
		}
		return entities.ScreenLobby
	default:
		return entities.ScreenNone
	}
}
