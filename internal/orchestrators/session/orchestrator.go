// Package session implements the game flows of a room: creating and joining
// rooms, setting up the party and resolving turns through the narrator
package session

//go:generate mockgen -destination=mock/mock_service.go -package=sessionmock github.com/KirkDiggler/rpg-tales/internal/orchestrators/session Service

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-tales/internal/auth"
	"github.com/KirkDiggler/rpg-tales/internal/clients/narrative"
	"github.com/KirkDiggler/rpg-tales/internal/engine"
	"github.com/KirkDiggler/rpg-tales/internal/errors"
	"github.com/KirkDiggler/rpg-tales/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-tales/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-tales/internal/repositories/journal"
	"github.com/KirkDiggler/rpg-tales/internal/repositories/room"
)

const (
	// OpeningAction is narrated when an adventure starts
	OpeningAction = "The adventure begins."

	// DefaultGenerationTimeout bounds each call to the narrator
	DefaultGenerationTimeout = 60 * time.Second

	// maxCodeAttempts bounds retries when a generated room code is taken
	maxCodeAttempts = 5

	msgGenerationFailed = "the winds of magic are unstable, try again"
	msgClassesFailed    = "could not summon character classes, try again"
)

// Service defines the room and turn operations
type Service interface {
	Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthenticateOutput, error)

	// Room lifecycle
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error)
	JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error)
	GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error)
	RoomExists(ctx context.Context, input *RoomExistsInput) (*RoomExistsOutput, error)
	WatchRoom(ctx context.Context, input *WatchRoomInput) (*WatchRoomOutput, error)

	// Setup and party
	GenerateClasses(ctx context.Context, input *GenerateClassesInput) (*GenerateClassesOutput, error)
	ConfirmSetup(ctx context.Context, input *ConfirmSetupInput) (*ConfirmSetupOutput, error)
	ConfirmCharacter(ctx context.Context, input *ConfirmCharacterInput) (*ConfirmCharacterOutput, error)
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// Play
	PerformAction(ctx context.Context, input *PerformActionInput) (*PerformActionOutput, error)
	GenerateSceneImage(ctx context.Context, input *GenerateSceneImageInput) (*GenerateSceneImageOutput, error)
	GetJournal(ctx context.Context, input *GetJournalInput) (*GetJournalOutput, error)
	RollD20(ctx context.Context, input *RollD20Input) (*RollD20Output, error)
}

// TokenIssuer creates anonymous player identities
type TokenIssuer interface {
	Issue(label string) (string, *auth.Claims, error)
}

// Config holds the dependencies for the session orchestrator
type Config struct {
	RoomRepo          room.Repository
	JournalRepo       journal.Repository
	Narrator          narrative.Client
	Engine            engine.Engine
	TokenIssuer       TokenIssuer
	RoomCodeGenerator idgen.Generator
	Clock             clock.Clock
	GenerationTimeout time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.RoomRepo == nil {
		vb.RequiredField("RoomRepo")
	}
	if c.JournalRepo == nil {
		vb.RequiredField("JournalRepo")
	}
	if c.Narrator == nil {
		vb.RequiredField("Narrator")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.TokenIssuer == nil {
		vb.RequiredField("TokenIssuer")
	}
	if c.RoomCodeGenerator == nil {
		vb.RequiredField("RoomCodeGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.GenerationTimeout < 0 {
		vb.Field("GenerationTimeout", "cannot be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	roomRepo          room.Repository
	journalRepo       journal.Repository
	narrator          narrative.Client
	engine            engine.Engine
	tokens            TokenIssuer
	codes             idgen.Generator
	clock             clock.Clock
	generationTimeout time.Duration
}

// NewOrchestrator creates a new session orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	timeout := cfg.GenerationTimeout
	if timeout == 0 {
		timeout = DefaultGenerationTimeout
	}

	return &orchestrator{
		roomRepo:          cfg.RoomRepo,
		journalRepo:       cfg.JournalRepo,
		narrator:          cfg.Narrator,
		engine:            cfg.Engine,
		tokens:            cfg.TokenIssuer,
		codes:             cfg.RoomCodeGenerator,
		clock:             cfg.Clock,
		generationTimeout: timeout,
	}, nil
}

// Authenticate hands out a new anonymous identity
func (o *orchestrator) Authenticate(_ context.Context, input *AuthenticateInput) (*AuthenticateOutput, error) {
	if input == nil {
		input = &AuthenticateInput{}
	}

	token, claims, err := o.tokens.Issue(input.Label)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to authenticate")
	}

	return &AuthenticateOutput{
		PlayerID:  claims.PlayerID,
		Token:     token,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}

// RollD20 rolls a die for clients that let the server roll
func (o *orchestrator) RollD20(_ context.Context, _ *RollD20Input) (*RollD20Output, error) {
	roll, err := o.engine.RollD20()
	if err != nil {
		return nil, err
	}
	return &RollD20Output{Roll: roll}, nil
}
