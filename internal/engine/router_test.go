package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-tales/internal/engine"
	"github.com/KirkDiggler/rpg-tales/internal/entities"
)

type RouterTestSuite struct {
	suite.Suite
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) room(status entities.Status, isSolo bool, owners ...string) *entities.GameState {
	state := entities.NewGameState("ROOM42", "host", isSolo, time.Unix(0, 0))
	state.Status = status
	for _, owner := range owners {
		state.Characters = append(state.Characters, entities.NewCharacter(owner, owner+"-hero", "Rogue", ""))
	}
	return state
}

func (s *RouterTestSuite) TestRoute() {
	testCases := []struct {
		name     string
		state    *entities.GameState
		player   string
		expected entities.Screen
	}{
		{
			name:     "room gone",
			state:    nil,
			player:   "p1",
			expected: entities.ScreenEntry,
		},
		{
			name:     "playing",
			state:    s.room(entities.StatusPlaying, false),
			player:   "p1",
			expected: entities.ScreenGame,
		},
		{
			name:     "playing without a character",
			state:    s.room(entities.StatusPlaying, false, "p2"),
			player:   "p1",
			expected: entities.ScreenGame,
		},
		{
			name:     "setup",
			state:    s.room(entities.StatusSetup, true),
			player:   "p1",
			expected: entities.ScreenSetup,
		},
		{
			name:     "solo creation",
			state:    s.room(entities.StatusSoloCharacterCreation, true, "host"),
			player:   "host",
			expected: entities.ScreenCharacterCreation,
		},
		{
			name:     "solo creation on multiplayer room",
			state:    s.room(entities.StatusSoloCharacterCreation, false),
			player:   "p1",
			expected: entities.ScreenNone,
		},
		{
			name:     "multiplayer lobby without character",
			state:    s.room(entities.StatusLobby, false),
			player:   "p1",
			expected: entities.ScreenCharacterCreation,
		},
		{
			name:     "multiplayer lobby with character",
			state:    s.room(entities.StatusLobby, false, "p1"),
			player:   "p1",
			expected: entities.ScreenLobby,
		},
		{
			name:     "multiplayer lobby with only others",
			state:    s.room(entities.StatusLobby, false, "p2"),
			player:   "p1",
			expected: entities.ScreenCharacterCreation,
		},
		{
			name:     "solo lobby",
			state:    s.room(entities.StatusLobby, true),
			player:   "p1",
			expected: entities.ScreenLobby,
		},
		{
			name:     "unknown status",
			state:    s.room(entities.Status("archived"), false),
			player:   "p1",
			expected: entities.ScreenNone,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			before := tc.state.Clone()

			first := engine.Route(tc.state, tc.player)
			second := engine.Route(tc.state, tc.player)

			s.Equal(tc.expected, first)
			s.Equal(first, second)
			s.Equal(before, tc.state)
		})
	}
}

func (s *RouterTestSuite) TestPhaseOf() {
	s.IsType(engine.GonePhase{}, engine.PhaseOf(nil, "p1"))
	s.Equal(
		engine.LobbyPhase{IsSolo: false, HasLocalCharacter: true},
		engine.PhaseOf(s.room(entities.StatusLobby, false, "p1"), "p1"),
	)
	s.Equal(
		engine.UnknownPhase{Status: "archived"},
		engine.PhaseOf(s.room("archived", false), "p1"),
	)
}
