package room

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-tales/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-tales/internal/entities"
	"github.com/KirkDiggler/rpg-tales/internal/errors"
	"github.com/KirkDiggler/rpg-tales/internal/pkg/clock"
)

// Event names published on the rpg-toolkit bus
const (
	EventRoomChanged    = "tales.room.changed"
	EventRoomDeleted    = "tales.room.deleted"
	EventCharacterAdded = "tales.character.added"

	// event context keys
	contextKeyRoomCode = "room_code"
	contextKeyVersion  = "version"

	watchPriority = 100
)

// InMemoryConfig holds the configuration for the in-memory repository
type InMemoryConfig struct {
	EventBus events.EventBus
	Clock    clock.Clock
	TTL      time.Duration
}

// Validate ensures all required dependencies are provided
func (c *InMemoryConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.EventBus == nil {
		return errors.InvalidArgument("event bus is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

// InMemoryRepository keeps rooms in process and announces changes on an
// rpg-toolkit event bus. Used when no Redis endpoint is configured.
type InMemoryRepository struct {
	mu    sync.Mutex
	rooms map[string]*entities.GameState
	bus   events.EventBus
	clock clock.Clock
	ttl   time.Duration
}

// NewInMemoryRepository creates a new in-memory room repository
func NewInMemoryRepository(cfg *InMemoryConfig) (*InMemoryRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &InMemoryRepository{
		rooms: make(map[string]*entities.GameState),
		bus:   cfg.EventBus,
		clock: cfg.Clock,
		ttl:   ttl,
	}, nil
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// Create stores a new room at version 1
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateState(input.State); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.liveLocked(input.State.Code); ok {
		return nil, errors.AlreadyExistsf("room %s already exists", input.State.Code)
	}

	state := input.State.Clone()
	now := r.clock.Now()
	state.Version = 1
	state.CreatedAt = now
	state.UpdatedAt = now
	r.rooms[state.Code] = state

	return &CreateOutput{State: state.Clone()}, nil
}

// Get retrieves a room by code
func (r *InMemoryRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateCode(input.Code); err != nil {
		return nil, err
	}

	state, err := r.read(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	return &GetOutput{State: state}, nil
}

// Exists reports whether a live room is stored
func (r *InMemoryRepository) Exists(_ context.Context, input ExistsInput) (*ExistsOutput, error) {
	if err := validateCode(input.Code); err != nil {
		return nil, err
	}

	r.mu.Lock()
	_, ok := r.liveLocked(input.Code)
	r.mu.Unlock()

	return &ExistsOutput{Exists: ok}, nil
}

// Update merges top-level fields into the stored room
func (r *InMemoryRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateCode(input.Code); err != nil {
		return nil, err
	}
	if input.Patch.IsEmpty() {
		return nil, errors.InvalidArgument(errEmptyPatch)
	}

	state, err := r.mutate(ctx, input.Code, input.ExpectedVersion, func(state *entities.GameState) error {
		input.Patch.Apply(state)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdateOutput{State: state}, nil
}

// AddCharacter appends a character to the party
func (r *InMemoryRepository) AddCharacter(ctx context.Context, input AddCharacterInput) (*AddCharacterOutput, error) {
	if err := validateCode(input.Code); err != nil {
		return nil, err
	}

	state, err := r.mutate(ctx, input.Code, input.ExpectedVersion, func(state *entities.GameState) error {
		return appendCharacter(state, input.Character)
	})
	if err != nil {
		return nil, err
	}

	r.publishCharacterAdded(ctx, state, input.Character)

	return &AddCharacterOutput{State: state}, nil
}

// Replace overwrites the stored document, keeping its creation time
func (r *InMemoryRepository) Replace(ctx context.Context, input ReplaceInput) (*ReplaceOutput, error) {
	if err := validateState(input.State); err != nil {
		return nil, err
	}

	state, err := r.mutate(ctx, input.State.Code, input.ExpectedVersion, func(state *entities.GameState) error {
		createdAt := state.CreatedAt
		*state = *input.State.Clone()
		state.CreatedAt = createdAt
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ReplaceOutput{State: state}, nil
}

// Delete removes the room and publishes a deletion event
func (r *InMemoryRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateCode(input.Code); err != nil {
		return nil, err
	}

	r.mu.Lock()
	_, ok := r.liveLocked(input.Code)
	delete(r.rooms, input.Code)
	r.mu.Unlock()

	if !ok {
		return nil, errors.NotFoundf("room %s not found", input.Code)
	}

	r.publish(ctx, EventRoomDeleted, input.Code, nil)

	return &DeleteOutput{}, nil
}

// Watch subscribes to bus events for the room. Handlers only signal; the
// watcher goroutine re-reads the room so bursts of writes coalesce.
func (r *InMemoryRepository) Watch(ctx context.Context, input WatchInput) (*WatchOutput, error) {
	if err := validateCode(input.Code); err != nil {
		return nil, err
	}

	signal := make(chan struct{}, 1)
	handler := func(_ context.Context, e events.Event) error {
		code, _ := e.Context().Get(contextKeyRoomCode)
		if code != input.Code {
			return nil
		}
		select {
		case signal <- struct{}{}:
		default:
		}
		return nil
	}

	ids := []string{
		r.bus.SubscribeFunc(EventRoomChanged, watchPriority, handler),
		r.bus.SubscribeFunc(EventRoomDeleted, watchPriority, handler),
	}

	out := make(chan Change, 1)
	go func() {
		defer close(out)
		defer func() {
			for _, id := range ids {
				_ = r.bus.Unsubscribe(id)
			}
		}()

		feed := newFeed(input.Code, out)
		if feed.refresh(ctx, r.read) {
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-signal:
			}

			if feed.refresh(ctx, r.read) {
				return
			}
		}
	}()

	return &WatchOutput{Changes: out}, nil
}

// Expire drops every room idle for longer than the TTL and announces it
func (r *InMemoryRepository) Expire(ctx context.Context) int {
	r.mu.Lock()
	var expired []string
	for code, state := range r.rooms {
		if r.expiredLocked(state) {
			expired = append(expired, code)
			delete(r.rooms, code)
		}
	}
	r.mu.Unlock()

	for _, code := range expired {
		r.publish(ctx, EventRoomDeleted, code, nil)
	}

	return len(expired)
}

func (r *InMemoryRepository) read(_ context.Context, code string) (*entities.GameState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.liveLocked(code)
	if !ok {
		return nil, errors.NotFoundf("room %s not found", code)
	}

	return state.Clone(), nil
}

func (r *InMemoryRepository) mutate(
	ctx context.Context,
	code string,
	expected int64,
	fn func(state *entities.GameState) error,
) (*entities.GameState, error) {
	r.mu.Lock()

	stored, ok := r.liveLocked(code)
	if !ok {
		r.mu.Unlock()
		return nil, errors.NotFoundf("room %s not found", code)
	}

	if err := checkVersion(code, stored.Version, expected); err != nil {
		r.mu.Unlock()
		return nil, err
	}

	state := stored.Clone()
	if err := fn(state); err != nil {
		r.mu.Unlock()
		return nil, err
	}

	state.Code = code
	state.Version = stored.Version + 1
	state.UpdatedAt = r.clock.Now()
	r.rooms[code] = state
	snapshot := state.Clone()

	r.mu.Unlock()

	r.publish(ctx, EventRoomChanged, code, snapshot)

	return snapshot.Clone(), nil
}

// liveLocked returns the stored room unless it has expired; caller holds mu
func (r *InMemoryRepository) liveLocked(code string) (*entities.GameState, bool) {
	state, ok := r.rooms[code]
	if !ok {
		return nil, false
	}
	if r.expiredLocked(state) {
		return nil, false
	}
	return state, true
}

func (r *InMemoryRepository) expiredLocked(state *entities.GameState) bool {
	return r.clock.Now().Sub(state.UpdatedAt) > r.ttl
}

func (r *InMemoryRepository) publish(ctx context.Context, name, code string, state *entities.GameState) {
	var event events.Event
	if state != nil {
		event = events.NewGameEvent(name, rpgtoolkit.WrapRoom(state), nil)
		event.Context().Set(contextKeyVersion, state.Version)
	} else {
		event = events.NewGameEvent(name, nil, nil)
	}
	event.Context().Set(contextKeyRoomCode, code)

	if err := r.bus.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish room event", "event", name, "room_code", code, "error", err)
	}
}

// publishCharacterAdded announces a new hero with the room as source and the
// character as target
func (r *InMemoryRepository) publishCharacterAdded(ctx context.Context, state *entities.GameState, character entities.Character) {
	event := events.NewGameEvent(EventCharacterAdded, rpgtoolkit.WrapRoom(state.Clone()), rpgtoolkit.WrapCharacter(&character))
	event.Context().Set(contextKeyRoomCode, state.Code)
	event.Context().Set(contextKeyVersion, state.Version)

	if err := r.bus.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish character event",
			"room_code", state.Code,
			"player_id", character.PlayerID,
			"error", err)
	}
}
