package room

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-tales/internal/entities"
	"github.com/KirkDiggler/rpg-tales/internal/errors"
)

// feed delivers monotonically fresher snapshots of one room to a watcher
type feed struct {
	code        string
	out         chan<- Change
	lastVersion int64
}

func newFeed(code string, out chan<- Change) *feed {
	return &feed{code: code, out: out, lastVersion: -1}
}

// refresh re-reads the room and forwards it when newer than the last
// delivered version. It returns true once the feed is finished.
func (f *feed) refresh(ctx context.Context, read func(context.Context, string) (*entities.GameState, error)) bool {
	state, err := read(ctx, f.code)
	if err != nil {
		if errors.IsNotFound(err) {
			f.send(ctx, Change{Gone: true})
			return true
		}
		if ctx.Err() != nil {
			return true
		}
		slog.Warn("failed to refresh watched room", "room_code", f.code, "error", err)
		return false
	}

	if state.Version <= f.lastVersion {
		return false
	}
	f.lastVersion = state.Version

	return !f.send(ctx, Change{State: state})
}

// send blocks until the watcher takes the change or ctx ends
func (f *feed) send(ctx context.Context, change Change) bool {
	select {
	case f.out <- change:
		return true
	case <-ctx.Done():
		return false
	}
}
