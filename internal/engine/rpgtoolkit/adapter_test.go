package rpgtoolkit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-tales/internal/entities"
	"github.com/KirkDiggler/rpg-tales/internal/errors"
)

type AdapterTestSuite struct {
	suite.Suite
}

func TestAdapterSuite(t *testing.T) {
	suite.Run(t, new(AdapterTestSuite))
}

func TestNewAdapter(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		adapter, err := NewAdapter(nil)
		assert.Error(t, err)
		assert.Nil(t, adapter)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "config is required")
	})

	t.Run("missing dice roller", func(t *testing.T) {
		adapter, err := NewAdapter(&AdapterConfig{})
		assert.Error(t, err)
		assert.Nil(t, adapter)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "dice roller is required")
	})

	t.Run("valid config", func(t *testing.T) {
		adapter, err := NewAdapter(&AdapterConfig{DiceRoller: dice.DefaultRoller})
		assert.NoError(t, err)
		assert.NotNil(t, adapter)
	})
}

type stubDiceRoller struct {
	value int
	err   error
}

func (s *stubDiceRoller) Roll(_ int) (int, error) { return s.value, s.err }
func (s *stubDiceRoller) RollN(count, _ int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = s.value
	}
	return out, s.err
}

func (s *AdapterTestSuite) TestRollD20() {
	s.Run("returns roll", func() {
		adapter, err := NewAdapter(&AdapterConfig{DiceRoller: &stubDiceRoller{value: 17}})
		s.Require().NoError(err)

		roll, err := adapter.RollD20()
		s.NoError(err)
		s.Equal(17, roll)
	})

	s.Run("roller error", func() {
		adapter, err := NewAdapter(&AdapterConfig{DiceRoller: &stubDiceRoller{err: assert.AnError}})
		s.Require().NoError(err)

		_, err = adapter.RollD20()
		s.Error(err)
		s.True(errors.IsInternal(err))
	})

	s.Run("out of range", func() {
		adapter, err := NewAdapter(&AdapterConfig{DiceRoller: &stubDiceRoller{value: 21}})
		s.Require().NoError(err)

		_, err = adapter.RollD20()
		s.True(errors.IsInternal(err))
	})

	s.Run("real roller stays in range", func() {
		adapter, err := NewAdapter(&AdapterConfig{DiceRoller: dice.DefaultRoller})
		s.Require().NoError(err)

		for i := 0; i < 200; i++ {
			roll, err := adapter.RollD20()
			s.Require().NoError(err)
			s.GreaterOrEqual(roll, entities.MinRoll)
			s.LessOrEqual(roll, entities.MaxRoll)
		}
	})
}

func (s *AdapterTestSuite) TestMergeReportsUnmatched() {
	adapter, err := NewAdapter(&AdapterConfig{DiceRoller: &stubDiceRoller{value: 1}})
	s.Require().NoError(err)

	state := entities.NewGameState("ROOM42", "host", true, time.Unix(0, 0))
	state.Characters = []entities.Character{entities.NewCharacter("host", "Aria", "Rogue", "")}

	next, report := adapter.Merge(state, &entities.NarrativeDelta{
		Text:          "A trap!",
		HealthChanges: []entities.HealthChange{{CharacterName: "Ghost", Change: -4}},
	})

	s.Equal([]string{"Ghost"}, report.UnmatchedCharacters)
	s.Equal(entities.DefaultMaxHP, next.Characters[0].HP)
	s.Equal(0, next.ActiveCharacterIndex)
}

func (s *AdapterTestSuite) TestRoute() {
	adapter, err := NewAdapter(&AdapterConfig{DiceRoller: &stubDiceRoller{value: 1}})
	s.Require().NoError(err)

	s.Equal(entities.ScreenEntry, adapter.Route(nil, "p1"))
}

func TestEntityWrappers(t *testing.T) {
	state := entities.NewGameState("ROOM42", "host", true, time.Unix(0, 0))
	room := WrapRoom(state)
	assert.Equal(t, "ROOM42", room.GetID())
	assert.Equal(t, EntityTypeRoom, room.GetType())

	c := entities.NewCharacter("p1", "Aria", "Rogue", "")
	character := WrapCharacter(&c)
	assert.Equal(t, "p1", character.GetID())
	assert.Equal(t, EntityTypeCharacter, character.GetType())
}
