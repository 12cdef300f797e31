package session

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-tales/internal/entities"
	"github.com/KirkDiggler/rpg-tales/internal/errors"
	"github.com/KirkDiggler/rpg-tales/internal/repositories/room"
)

// ConfirmCharacter adds the caller's hero to the party. A solo party that
// becomes complete starts the adventure right away.
func (o *orchestrator) ConfirmCharacter(ctx context.Context, input *ConfirmCharacterInput) (*ConfirmCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	code := NormalizeCode(input.Code)
	name := strings.TrimSpace(input.Name)
	class := strings.TrimSpace(input.Class)
	backstory := strings.TrimSpace(input.Backstory)

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("PlayerID", input.PlayerID, vb)
	validateCode(code, vb)
	errors.ValidateRequired("Name", name, vb)
	errors.ValidateRequired("Class", class, vb)
	errors.ValidateRequired("Backstory", backstory, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	state, err := o.loadRoom(ctx, code)
	if err != nil {
		return nil, err
	}

	if _, ok := state.Players[input.PlayerID]; !ok {
		return nil, errors.PermissionDenied("join the room before creating a character")
	}

	if state.IsSolo {
		if state.Status != entities.StatusSoloCharacterCreation {
			return nil, errors.FailedPreconditionf("characters cannot be created while the room is %s", state.Status)
		}
		if err := requireHost(state, input.PlayerID); err != nil {
			return nil, err
		}
	} else {
		if state.Status != entities.StatusLobby {
			return nil, errors.FailedPreconditionf("characters cannot be created while the room is %s", state.Status)
		}
		if state.HasCharacterFor(input.PlayerID) {
			return nil, errors.AlreadyExists("you already have a character in this room")
		}
	}

	vb = errors.NewValidationBuilder()
	errors.ValidateOneOf("Class", class, state.GeneratedClasses, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	added, err := o.roomRepo.AddCharacter(ctx, room.AddCharacterInput{
		Code:            code,
		Character:       entities.NewCharacter(input.PlayerID, name, class, backstory),
		ExpectedVersion: state.Version,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("character created",
		"code", code,
		"player_id", input.PlayerID,
		"character", name,
		"party_size", len(added.State.Characters))

	if !added.State.IsSolo || !added.State.IsFull() {
		return &ConfirmCharacterOutput{State: added.State}, nil
	}

	started, err := o.beginAdventure(ctx, added.State, input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &ConfirmCharacterOutput{State: started, Started: true}, nil
}

// StartGame begins a multiplayer adventure once the party is complete
func (o *orchestrator) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	code := NormalizeCode(input.Code)
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("PlayerID", input.PlayerID, vb)
	validateCode(code, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	state, err := o.loadRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := requireHost(state, input.PlayerID); err != nil {
		return nil, err
	}
	if state.IsSolo {
		return nil, errors.FailedPrecondition("solo adventures start when the party is complete")
	}
	if state.Status != entities.StatusLobby {
		return nil, errors.FailedPreconditionf("room is %s, not waiting in the lobby", state.Status)
	}
	if !state.IsFull() {
		return nil, errors.FailedPreconditionf("party needs %d characters, has %d",
			state.PlayerLimit, len(state.Characters))
	}

	started, err := o.beginAdventure(ctx, state, input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &StartGameOutput{State: started}, nil
}

// beginAdventure moves the room to playing and narrates the opening turn with
// a server-rolled die. If narration fails the room stays in playing and the
// error is returned so the active player can act again.
func (o *orchestrator) beginAdventure(ctx context.Context, state *entities.GameState, playerID string) (*entities.GameState, error) {
	playing := entities.StatusPlaying
	out, err := o.roomRepo.Update(ctx, room.UpdateInput{
		Code:            state.Code,
		Patch:           room.Patch{Status: &playing},
		ExpectedVersion: state.Version,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("adventure started", "code", state.Code, "party_size", len(out.State.Characters))

	roll, err := o.engine.RollD20()
	if err != nil {
		return nil, err
	}

	return o.performTurn(ctx, out.State, playerID, OpeningAction, roll)
}
