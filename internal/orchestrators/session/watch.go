package session

import (
	"context"

	"github.com/KirkDiggler/rpg-tales/internal/entities"
	"github.com/KirkDiggler/rpg-tales/internal/errors"
	"github.com/KirkDiggler/rpg-tales/internal/repositories/room"
)

// WatchRoom streams routed snapshots of a room to one player. The first
// update is the current document.
func (o *orchestrator) WatchRoom(ctx context.Context, input *WatchRoomInput) (*WatchRoomOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	code := NormalizeCode(input.Code)
	vb := errors.NewValidationBuilder()
	validateCode(code, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	watch, err := o.roomRepo.Watch(ctx, room.WatchInput{Code: code})
	if errors.IsNotFound(err) {
		return nil, errors.NotFound("room not found").WithRoom(code)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch room")
	}

	updates := make(chan RoomUpdate)
	go o.forwardChanges(ctx, input.PlayerID, watch.Changes, updates)

	return &WatchRoomOutput{Updates: updates}, nil
}

func (o *orchestrator) forwardChanges(
	ctx context.Context,
	playerID string,
	changes <-chan room.Change,
	updates chan<- RoomUpdate,
) {
	defer close(updates)

	screen := entities.ScreenNone
	for change := range changes {
		update := RoomUpdate{Gone: true, Screen: entities.ScreenEntry}
		if !change.Gone {
			// an unrecognized status keeps the player where they are
			if routed := o.engine.Route(change.State, playerID); routed != entities.ScreenNone {
				screen = routed
			}
			update = RoomUpdate{State: change.State, Screen: screen}
		}

		select {
		case updates <- update:
		case <-ctx.Done():
			return
		}

		if update.Gone {
			return
		}
	}
}
