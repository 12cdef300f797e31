// Package rpgtoolkit provides the concrete implementation of the engine interface using rpg-toolkit modules.
package rpgtoolkit

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-tales/internal/engine"
	"github.com/KirkDiggler/rpg-tales/internal/entities"
	"github.com/KirkDiggler/rpg-tales/internal/errors"
)

const d20 = 20

// Adapter implements the engine.Engine interface using rpg-toolkit
type Adapter struct {
	diceRoller dice.Roller
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	DiceRoller dice.Roller
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c.DiceRoller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	return nil
}

// NewAdapter creates a new rpg-toolkit engine adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Adapter{
		diceRoller: cfg.DiceRoller,
	}, nil
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)

// Merge applies a narrative delta and logs health changes that matched nobody
func (a *Adapter) Merge(
	prev *entities.GameState,
	delta *entities.NarrativeDelta,
) (*entities.GameState, *engine.MergeReport) {
	next, report := engine.Merge(prev, delta)

	for _, name := range report.UnmatchedCharacters {
		slog.Warn("health change for unknown character ignored",
			"room_code", prev.Code,
			"character_name", name)
	}

	return next, report
}

// Route derives the screen for a player
func (a *Adapter) Route(state *entities.GameState, localPlayerID string) entities.Screen {
	return engine.Route(state, localPlayerID)
}

// RollD20 rolls a single twenty-sided die
func (a *Adapter) RollD20() (int, error) {
	roll, err := a.diceRoller.Roll(d20)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll d20")
	}

	if roll < entities.MinRoll || roll > entities.MaxRoll {
		return 0, errors.Internalf("dice roller returned %d for a d20", roll)
	}

	return roll, nil
}
