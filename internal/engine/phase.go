package engine

import (
	"github.com/KirkDiggler/rpg-tales/internal/entities"
)

// Phase is the room lifecycle as a closed set of variants.
// Exactly one of the types below implements it.
type Phase interface {
	isPhase()
}

// GonePhase means the room document no longer exists
type GonePhase struct{}

// SetupPhase is the host choosing a theme and party size
type SetupPhase struct{}

// SoloCreationPhase is a solo host creating heroes one by one
type SoloCreationPhase struct{}

// LobbyPhase is players gathering before the adventure starts
type LobbyPhase struct {
	IsSolo            bool
	HasLocalCharacter bool
}

// PlayingPhase is the adventure in progress
type PlayingPhase struct{}

// UnknownPhase is a status this build does not recognise, or a known status
// in a shape it cannot route (solo creation on a multiplayer room)
type UnknownPhase struct {
	Status entities.Status
}

func (GonePhase) isPhase()         {}
func (SetupPhase) isPhase()        {}
func (SoloCreationPhase) isPhase() {}
func (LobbyPhase) isPhase()        {}
func (PlayingPhase) isPhase()      {}
func (UnknownPhase) isPhase()      {}

// PhaseOf classifies a room document for a given local player
func PhaseOf(state *entities.GameState, localPlayerID string) Phase {
	if state == nil {
		return GonePhase{}
	}

	switch state.Status {
	case entities.StatusPlaying:
		return PlayingPhase{}
	case entities.StatusSetup:
		return SetupPhase{}
	case entities.StatusSoloCharacterCreation:
		if state.IsSolo {
			return SoloCreationPhase{}
		}
	case entities.StatusLobby:
		return LobbyPhase{
			IsSolo:            state.IsSolo,
			HasLocalCharacter: state.HasCharacterFor(localPlayerID),
		}
	}

	return UnknownPhase{Status: state.Status}
}
