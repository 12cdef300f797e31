package session

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-tales/internal/clients/narrative"
	"github.com/KirkDiggler/rpg-tales/internal/entities"
	"github.com/KirkDiggler/rpg-tales/internal/errors"
	"github.com/KirkDiggler/rpg-tales/internal/repositories/journal"
	"github.com/KirkDiggler/rpg-tales/internal/repositories/room"
)

// PerformAction resolves one turn: the narrator describes the outcome and the
// result is merged into the room
func (o *orchestrator) PerformAction(ctx context.Context, input *PerformActionInput) (*PerformActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	code := NormalizeCode(input.Code)
	action := strings.TrimSpace(input.Action)
	roll, rollErr := parseRoll(input)

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("PlayerID", input.PlayerID, vb)
	validateCode(code, vb)
	errors.ValidateRequired("Action", action, vb)
	if rollErr != nil {
		vb.Field("Roll", "must be a whole number")
	} else {
		errors.ValidateRange("Roll", roll, entities.MinRoll, entities.MaxRoll, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	state, err := o.loadRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	if state.Status != entities.StatusPlaying {
		return nil, errors.FailedPreconditionf("the adventure has not started, room is %s", state.Status)
	}
	if err := checkTurn(state, input.PlayerID); err != nil {
		return nil, err
	}

	next, err := o.performTurn(ctx, state, input.PlayerID, action, roll)
	if err != nil {
		return nil, err
	}

	return &PerformActionOutput{State: next}, nil
}

func parseRoll(input *PerformActionInput) (int, error) {
	text := strings.TrimSpace(input.RollText)
	if text == "" {
		return input.Roll, nil
	}
	return strconv.Atoi(text)
}

// checkTurn allows the host in solo rooms and the owner of the active
// character otherwise
func checkTurn(state *entities.GameState, playerID string) error {
	if state.IsSolo {
		return requireHost(state, playerID)
	}

	active := state.ActiveCharacter()
	if active == nil {
		return errors.FailedPrecondition("no character is holding the turn")
	}
	if active.PlayerID != playerID {
		return errors.PermissionDenied("it is not your turn").
			WithMeta("active_character", active.Name)
	}
	return nil
}

// performTurn narrates action against the snapshot and writes the merged
// state back. The write fails with Aborted if the room changed meanwhile and
// with NotFound if it was deleted.
func (o *orchestrator) performTurn(
	ctx context.Context,
	state *entities.GameState,
	playerID, action string,
	roll int,
) (*entities.GameState, error) {
	genCtx, cancel := context.WithTimeout(ctx, o.generationTimeout)
	defer cancel()

	delta, err := o.narrator.GenerateStoryNode(genCtx, &narrative.StoryInput{
		State:  state,
		Action: action,
		Roll:   roll,
	})
	if err != nil {
		slog.Error("story generation failed",
			"code", state.Code,
			"player_id", playerID,
			"error", err)
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, msgGenerationFailed)
	}

	var actor string
	if active := state.ActiveCharacter(); active != nil {
		actor = active.Name
	}

	next, report := o.engine.Merge(state, delta)
	var unmatched []string
	if report != nil {
		unmatched = report.UnmatchedCharacters
	}

	out, err := o.roomRepo.Replace(ctx, room.ReplaceInput{
		State:           next,
		ExpectedVersion: state.Version,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("turn resolved",
		"code", state.Code,
		"player_id", playerID,
		"roll", roll,
		"unmatched_characters", unmatched,
		"version", out.State.Version)

	o.recordTurn(ctx, entities.JournalEntry{
		RoomCode:      state.Code,
		PlayerID:      playerID,
		CharacterName: actor,
		Action:        action,
		Roll:          roll,
		Narrative:     delta.Text,
		CreatedAt:     o.clock.Now(),
	})

	return out.State, nil
}

// recordTurn appends to the journal. The room is already written so a
// failure here only costs history.
func (o *orchestrator) recordTurn(ctx context.Context, entry entities.JournalEntry) {
	if _, err := o.journalRepo.Append(ctx, journal.AppendInput{Entry: entry}); err != nil {
		slog.Warn("failed to record journal entry",
			"code", entry.RoomCode,
			"error", err)
	}
}

// GenerateSceneImage paints the latest scene. Failures are logged and yield
// an empty image so play is never blocked on illustration.
func (o *orchestrator) GenerateSceneImage(ctx context.Context, input *GenerateSceneImageInput) (*GenerateSceneImageOutput, error) {
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
	if state.LastUpdate == nil || strings.TrimSpace(state.LastUpdate.ImagePrompt) == "" {
		return &GenerateSceneImageOutput{}, nil
	}

	prompt := state.LastUpdate.ImagePrompt

	genCtx, cancel := context.WithTimeout(ctx, o.generationTimeout)
	defer cancel()

	image, err := o.narrator.GenerateImage(genCtx, prompt)
	if err != nil {
		slog.Warn("scene image generation failed", "code", code, "error", err)
		return &GenerateSceneImageOutput{Prompt: prompt}, nil
	}

	return &GenerateSceneImageOutput{Image: image, Prompt: prompt}, nil
}
