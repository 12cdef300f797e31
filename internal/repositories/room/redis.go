package room

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-tales/internal/entities"
	"github.com/KirkDiggler/rpg-tales/internal/errors"
	"github.com/KirkDiggler/rpg-tales/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-tales/internal/redis"
)

const (
	// Key pattern: room:{code}
	roomKeyPrefix = "room:"
	// Channel pattern: room:{code}:changes
	changesSuffix = ":changes"

	// published on the changes channel when a room is deleted
	goneMessage = "gone"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client       redisclient.Client
	Clock        clock.Clock
	TTL          time.Duration
	PollInterval time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

type redisRepository struct {
	client       redisclient.Client
	clock        clock.Clock
	ttl          time.Duration
	pollInterval time.Duration
}

// NewRedisRepository creates a new Redis repository for rooms
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	poll := cfg.PollInterval
	if poll <= 0 {
		poll = DefaultPollInterval
	}

	return &redisRepository{
		client:       cfg.Client,
		clock:        cfg.Clock,
		ttl:          ttl,
		pollInterval: poll,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Create stores a new room at version 1
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateState(input.State); err != nil {
		return nil, err
	}

	state := input.State.Clone()
	now := r.clock.Now()
	state.Version = 1
	state.CreatedAt = now
	state.UpdatedAt = now

	data, err := json.Marshal(state)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal room")
	}

	created, err := r.client.SetNX(ctx, roomKey(state.Code), data, r.ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store room in Redis")
	}
	if !created {
		return nil, errors.AlreadyExistsf("room %s already exists", state.Code)
	}

	return &CreateOutput{State: state}, nil
}

// Get retrieves a room by code
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateCode(input.Code); err != nil {
		return nil, err
	}

	state, err := r.load(ctx, r.client, input.Code)
	if err != nil {
		return nil, err
	}

	return &GetOutput{State: state}, nil
}

// Exists checks for the room key
func (r *redisRepository) Exists(ctx context.Context, input ExistsInput) (*ExistsOutput, error) {
	if err := validateCode(input.Code); err != nil {
		return nil, err
	}

	n, err := r.client.Exists(ctx, roomKey(input.Code)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check room in Redis")
	}

	return &ExistsOutput{Exists: n > 0}, nil
}

// Update merges top-level fields into the stored room
func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
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
func (r *redisRepository) AddCharacter(ctx context.Context, input AddCharacterInput) (*AddCharacterOutput, error) {
	if err := validateCode(input.Code); err != nil {
		return nil, err
	}

	state, err := r.mutate(ctx, input.Code, input.ExpectedVersion, func(state *entities.GameState) error {
		return appendCharacter(state, input.Character)
	})
	if err != nil {
		return nil, err
	}

	return &AddCharacterOutput{State: state}, nil
}

// Replace overwrites the stored document, keeping its creation time
func (r *redisRepository) Replace(ctx context.Context, input ReplaceInput) (*ReplaceOutput, error) {
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

// Delete removes the room and tells watchers it is gone
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateCode(input.Code); err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, roomKey(input.Code))
	pipe.Publish(ctx, changesChannel(input.Code), goneMessage)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete room from Redis")
	}

	if del.Val() == 0 {
		return nil, errors.NotFoundf("room %s not found", input.Code)
	}

	return &DeleteOutput{}, nil
}

// Watch subscribes to the room's changes channel and re-reads the document on
// every notification. Expiry is caught by polling.
func (r *redisRepository) Watch(ctx context.Context, input WatchInput) (*WatchOutput, error) {
	if err := validateCode(input.Code); err != nil {
		return nil, err
	}

	pubsub := r.client.Subscribe(ctx, changesChannel(input.Code))
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, errors.Wrapf(err, "failed to subscribe to room %s", input.Code)
	}

	out := make(chan Change, 1)
	go r.forward(ctx, pubsub, input.Code, out)

	return &WatchOutput{Changes: out}, nil
}

func (r *redisRepository) forward(ctx context.Context, pubsub *redis.PubSub, code string, out chan<- Change) {
	defer close(out)
	defer func() { _ = pubsub.Close() }()

	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	feed := newFeed(code, out)

	if feed.refresh(ctx, r.reader()) {
		return
	}

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-messages:
			if !ok {
				return
			}
		case <-ticker.C:
		}

		if feed.refresh(ctx, r.reader()) {
			return
		}
	}
}

func (r *redisRepository) reader() func(context.Context, string) (*entities.GameState, error) {
	return func(ctx context.Context, code string) (*entities.GameState, error) {
		return r.load(ctx, r.client, code)
	}
}

// mutate runs fn against the stored document inside WATCH/MULTI so concurrent
// writers either see each other's version or abort
func (r *redisRepository) mutate(
	ctx context.Context,
	code string,
	expected int64,
	fn func(state *entities.GameState) error,
) (*entities.GameState, error) {
	key := roomKey(code)
	var next *entities.GameState

	txf := func(tx *redis.Tx) error {
		state, err := r.load(ctx, tx, code)
		if err != nil {
			return err
		}

		if err := checkVersion(code, state.Version, expected); err != nil {
			return err
		}

		if err := fn(state); err != nil {
			return err
		}

		state.Code = code
		state.Version++
		state.UpdatedAt = r.clock.Now()

		data, err := json.Marshal(state)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal room")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, r.ttl)
			pipe.Publish(ctx, changesChannel(code), state.Version)
			return nil
		})
		if err != nil {
			return err
		}

		next = state
		return nil
	}

	err := r.client.Watch(ctx, txf, key)
	if err != nil {
		if errors.Is(err, redis.TxFailedErr) {
			return nil, errors.Abortedf("room %s changed during write", code)
		}
		var appErr *errors.Error
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "failed to update room %s", code)
	}

	slog.Debug("room written", "room_code", code, "version", next.Version)

	return next, nil
}

func (r *redisRepository) load(ctx context.Context, cmd redis.Cmdable, code string) (*entities.GameState, error) {
	data, err := cmd.Get(ctx, roomKey(code)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errors.NotFoundf("room %s not found", code)
		}
		return nil, errors.Wrapf(err, "failed to get room from Redis")
	}

	var state entities.GameState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal room")
	}

	return &state, nil
}

func roomKey(code string) string {
	return roomKeyPrefix + code
}

func changesChannel(code string) string {
	return fmt.Sprintf("%s%s%s", roomKeyPrefix, code, changesSuffix)
}
