package session

import (
	"context"
	"log/slog"
	"maps"
	"strings"

	"github.com/KirkDiggler/rpg-tales/internal/entities"
	"github.com/KirkDiggler/rpg-tales/internal/errors"
	"github.com/KirkDiggler/rpg-tales/internal/repositories/journal"
	"github.com/KirkDiggler/rpg-tales/internal/repositories/room"
)

const defaultPlayerLabel = "Adventurer"

// NormalizeCode trims and upper-cases a room code as typed by a player
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func validateCode(code string, vb *errors.ValidationBuilder) {
	if code == "" {
		vb.RequiredField("Code")
		return
	}
	errors.ValidateExactLength("Code", code, entities.RoomCodeLength, vb)
}

func playerLabel(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return defaultPlayerLabel
	}
	return name
}

// CreateRoom opens a room with the caller as host
func (o *orchestrator) CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("PlayerID", input.PlayerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		state := entities.NewGameState(o.codes.Generate(), input.PlayerID, input.IsSolo, o.clock.Now())
		state.Players[input.PlayerID] = playerLabel(input.PlayerName)

		out, err := o.roomRepo.Create(ctx, room.CreateInput{State: state})
		if errors.IsAlreadyExists(err) {
			slog.Debug("room code collision", "code", state.Code, "attempt", attempt+1)
			continue
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to create room")
		}

		slog.Info("room created",
			"code", out.State.Code,
			"host_id", input.PlayerID,
			"solo", input.IsSolo)

		return &CreateRoomOutput{
			State:  out.State,
			Screen: o.engine.Route(out.State, input.PlayerID),
		}, nil
	}

	return nil, errors.Unavailable("could not allocate a room code, try again")
}

// JoinRoom records the caller as a player of an existing room
func (o *orchestrator) JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error) {
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

	if _, ok := state.Players[input.PlayerID]; !ok {
		players := maps.Clone(state.Players)
		if players == nil {
			players = map[string]string{}
		}
		players[input.PlayerID] = playerLabel(input.PlayerName)

		out, err := o.roomRepo.Update(ctx, room.UpdateInput{
			Code:            code,
			Patch:           room.Patch{Players: players},
			ExpectedVersion: state.Version,
		})
		if err != nil {
			return nil, err
		}
		state = out.State

		slog.Info("player joined room", "code", code, "player_id", input.PlayerID)
	}

	return &JoinRoomOutput{
		State:  state,
		Screen: o.engine.Route(state, input.PlayerID),
	}, nil
}

// GetRoom loads a room and routes the caller
func (o *orchestrator) GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	code := NormalizeCode(input.Code)
	vb := errors.NewValidationBuilder()
	validateCode(code, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	state, err := o.loadRoom(ctx, code)
	if err != nil {
		return nil, err
	}

	return &GetRoomOutput{
		State:  state,
		Screen: o.engine.Route(state, input.PlayerID),
	}, nil
}

// RoomExists checks a code without loading the room. Malformed codes never exist.
func (o *orchestrator) RoomExists(ctx context.Context, input *RoomExistsInput) (*RoomExistsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	code := NormalizeCode(input.Code)
	if len(code) != entities.RoomCodeLength {
		return &RoomExistsOutput{Exists: false}, nil
	}

	out, err := o.roomRepo.Exists(ctx, room.ExistsInput{Code: code})
	if err != nil {
		return nil, errors.Wrap(err, "failed to check room")
	}

	return &RoomExistsOutput{Exists: out.Exists}, nil
}

// GenerateClasses asks the narrator for classes fitting the theme and stores them
func (o *orchestrator) GenerateClasses(ctx context.Context, input *GenerateClassesInput) (*GenerateClassesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	code := NormalizeCode(input.Code)
	theme := strings.TrimSpace(input.Theme)
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("PlayerID", input.PlayerID, vb)
	validateCode(code, vb)
	errors.ValidateRequired("Theme", theme, vb)
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
	if state.Status != entities.StatusSetup {
		return nil, errors.FailedPreconditionf("classes can only be generated during setup, room is %s", state.Status)
	}

	genCtx, cancel := context.WithTimeout(ctx, o.generationTimeout)
	defer cancel()

	classes, err := o.narrator.GenerateClasses(genCtx, theme)
	if err != nil {
		slog.Error("class generation failed", "code", code, "theme", theme, "error", err)
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, msgClassesFailed)
	}
	if len(classes) == 0 {
		return nil, errors.Unavailable(msgClassesFailed)
	}

	out, err := o.roomRepo.Update(ctx, room.UpdateInput{
		Code: code,
		Patch: room.Patch{
			Theme:            &theme,
			GeneratedClasses: classes,
		},
		ExpectedVersion: state.Version,
	})
	if err != nil {
		return nil, err
	}

	return &GenerateClassesOutput{
		State:   out.State,
		Classes: out.State.GeneratedClasses,
	}, nil
}

// ConfirmSetup fixes the theme and party size and opens character creation
func (o *orchestrator) ConfirmSetup(ctx context.Context, input *ConfirmSetupInput) (*ConfirmSetupOutput, error) {
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
	if state.Status != entities.StatusSetup {
		return nil, errors.FailedPreconditionf("room is already past setup (%s)", state.Status)
	}
	if len(state.GeneratedClasses) == 0 {
		return nil, errors.FailedPrecondition("generate character classes before confirming setup")
	}

	theme := strings.TrimSpace(input.Theme)
	if theme == "" {
		theme = state.Theme
	}

	vb = errors.NewValidationBuilder()
	errors.ValidateRequired("Theme", theme, vb)
	if state.IsSolo {
		errors.ValidateRange("PlayerLimit", input.PlayerLimit, entities.MinSoloPartySize, entities.MaxSoloPartySize, vb)
	} else {
		errors.ValidateRange("PlayerLimit", input.PlayerLimit, entities.MinMultiPlayers, entities.MaxMultiPlayers, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	next := entities.StatusLobby
	if state.IsSolo {
		next = entities.StatusSoloCharacterCreation
	}
	limit := input.PlayerLimit

	out, err := o.roomRepo.Update(ctx, room.UpdateInput{
		Code: code,
		Patch: room.Patch{
			Status:      &next,
			Theme:       &theme,
			PlayerLimit: &limit,
		},
		ExpectedVersion: state.Version,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("room setup confirmed", "code", code, "status", next, "player_limit", limit)

	return &ConfirmSetupOutput{State: out.State}, nil
}

// GetJournal returns the recorded turns of a room
func (o *orchestrator) GetJournal(ctx context.Context, input *GetJournalInput) (*GetJournalOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	code := NormalizeCode(input.Code)
	vb := errors.NewValidationBuilder()
	validateCode(code, vb)
	if input.Limit < 0 {
		vb.Field("Limit", "cannot be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.journalRepo.List(ctx, journal.ListInput{RoomCode: code, Limit: input.Limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list journal")
	}

	return &GetJournalOutput{Entries: out.Entries}, nil
}

func (o *orchestrator) loadRoom(ctx context.Context, code string) (*entities.GameState, error) {
	out, err := o.roomRepo.Get(ctx, room.GetInput{Code: code})
	if errors.IsNotFound(err) {
		return nil, errors.NotFound("room not found").WithRoom(code)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load room")
	}
	return out.State, nil
}

func requireHost(state *entities.GameState, playerID string) error {
	if state.HostID != playerID {
		return errors.PermissionDenied("only the host can do that")
	}
	return nil
}
