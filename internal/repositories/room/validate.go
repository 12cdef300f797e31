package room

import (
	"github.com/KirkDiggler/rpg-tales/internal/entities"
	"github.com/KirkDiggler/rpg-tales/internal/errors"
)

const (
	errCodeEmpty  = "room code cannot be empty"
	errStateNil   = "state cannot be nil"
	errEmptyPatch = "patch has no fields set"
)

func validateCode(code string) error {
	if code == "" {
		return errors.InvalidArgument(errCodeEmpty)
	}
	return nil
}

func validateState(state *entities.GameState) error {
	if state == nil {
		return errors.InvalidArgument(errStateNil)
	}
	return validateCode(state.Code)
}

func checkVersion(code string, stored, expected int64) error {
	if expected != AnyVersion && stored != expected {
		return errors.Abortedf("room %s changed: expected version %d, found %d", code, expected, stored).
			WithRoom(code).
			WithMeta("stored_version", stored)
	}
	return nil
}

func appendCharacter(state *entities.GameState, character entities.Character) error {
	if state.IsFull() {
		return errors.ResourceExhaustedf("room %s is full (%d/%d)", state.Code, len(state.Characters), state.PlayerLimit)
	}
	state.Characters = append(state.Characters, character)
	return nil
}
