package session

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-tales/internal/entities"
	"github.com/KirkDiggler/rpg-tales/internal/errors"
)

// Watcher opens a room update stream
type Watcher interface {
	WatchRoom(ctx context.Context, input *WatchRoomInput) (*WatchRoomOutput, error)
}

// FollowerConfig configures a Follower
type FollowerConfig struct {
	Watcher  Watcher
	PlayerID string
	// OnUpdate receives every update of the followed room, one at a time
	OnUpdate func(RoomUpdate)
}

// Validate ensures all required dependencies are provided
func (c *FollowerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Watcher == nil {
		vb.RequiredField("Watcher")
	}
	errors.ValidateRequired("PlayerID", c.PlayerID, vb)
	if c.OnUpdate == nil {
		vb.RequiredField("OnUpdate")
	}
	return vb.Build()
}

// Follower keeps a player subscribed to at most one room. Following a new
// room releases the previous subscription first, and updates that belong to
// a released subscription are dropped.
type Follower struct {
	watcher  Watcher
	playerID string
	onUpdate func(RoomUpdate)

	mu         sync.Mutex
	generation uint64
	code       string
	screen     entities.Screen
	cancel     context.CancelFunc
	done       chan struct{}
}

// NewFollower creates a Follower that is not following any room
func NewFollower(cfg *FollowerConfig) (*Follower, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Follower{
		watcher:  cfg.Watcher,
		playerID: cfg.PlayerID,
		onUpdate: cfg.OnUpdate,
		screen:   entities.ScreenEntry,
	}, nil
}

// Follow subscribes to code, replacing any current subscription
func (f *Follower) Follow(ctx context.Context, code string) error {
	f.mu.Lock()
	f.releaseLocked()
	f.generation++
	gen := f.generation
	f.mu.Unlock()

	watchCtx, cancel := context.WithCancel(ctx)
	out, err := f.watcher.WatchRoom(watchCtx, &WatchRoomInput{
		PlayerID: f.playerID,
		Code:     code,
	})
	if err != nil {
		cancel()
		return err
	}

	f.mu.Lock()
	if f.generation != gen {
		// released or replaced while the stream was opening
		f.mu.Unlock()
		cancel()
		return errors.Abortedf("follow of room %s was superseded", code)
	}
	done := make(chan struct{})
	f.code = NormalizeCode(code)
	f.cancel = cancel
	f.done = done
	f.mu.Unlock()

	go f.run(gen, out.Updates, done)

	return nil
}

// Release drops the current subscription. Calling it again is a no-op.
func (f *Follower) Release() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.generation++
	f.releaseLocked()
}

func (f *Follower) releaseLocked() {
	if f.cancel != nil {
		f.cancel()
	}
	f.cancel = nil
	f.code = ""
	f.done = nil
}

// Code returns the followed room, or "" when not following
func (f *Follower) Code() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.code
}

// Screen returns the screen of the last delivered update
func (f *Follower) Screen() entities.Screen {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.screen
}

// Done is closed when the current subscription ends, either because the room
// is gone or the stream stopped. It is nil when not following.
func (f *Follower) Done() <-chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.done
}

func (f *Follower) run(gen uint64, updates <-chan RoomUpdate, done chan struct{}) {
	defer close(done)

	for update := range updates {
		if !f.accept(gen, update) {
			return
		}
		f.onUpdate(update)

		if update.Gone {
			f.mu.Lock()
			if f.generation == gen {
				f.generation++
				f.releaseLocked()
			}
			f.mu.Unlock()
			return
		}
	}
}

// accept records update as current if gen is still the live subscription
func (f *Follower) accept(gen uint64, update RoomUpdate) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.generation != gen {
		return false
	}
	if update.Screen != entities.ScreenNone {
		f.screen = update.Screen
	}
	return true
}
