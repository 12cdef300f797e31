package testutils

import (
	"time"

	"github.com/KirkDiggler/rpg-tales/internal/entities"
)

const (
	// TestRoomCode is the default room code for fixtures
	TestRoomCode = "QUEST1"
	// TestHostID is the default host player
	TestHostID = "player-host"
	// TestCharacterName is the default hero name
	TestCharacterName = "Thorin Oakenshield"
)

// TestTime is a fixed instant used across fixtures
var TestTime = time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

// Room lifecycle stages for fixtures
const (
	StageSetup    = "setup"
	StageLobby    = "lobby"
	StageSolo     = "solo_creation"
	StagePlaying  = "playing"
	themeFixture  = "Haunted lighthouse on a storm coast"
	classFixtureA = "Lamplighter"
	classFixtureB = "Tide Witch"
	classFixtureC = "Wrecker"
	classFixtureD = "Gull Whisperer"
)

// CreateTestRoom creates a freshly created room owned by TestHostID
func CreateTestRoom(isSolo bool) *entities.GameState {
	state := entities.NewGameState(TestRoomCode, TestHostID, isSolo, TestTime)
	state.Players[TestHostID] = "Host"
	return state
}

// CreateTestRoomAtStage creates a room advanced to the named stage
func CreateTestRoomAtStage(isSolo bool, stage string) *entities.GameState {
	state := CreateTestRoom(isSolo)

	switch stage {
	case StageSetup:
		return state
	case StageLobby:
		state.Theme = themeFixture
		state.GeneratedClasses = TestClasses()
		state.Status = entities.StatusLobby
	case StageSolo:
		state.Theme = themeFixture
		state.GeneratedClasses = TestClasses()
		state.Status = entities.StatusSoloCharacterCreation
	case StagePlaying:
		state.Theme = themeFixture
		state.GeneratedClasses = TestClasses()
		state.Status = entities.StatusPlaying
		state.Characters = append(state.Characters,
			entities.NewCharacter(TestHostID, TestCharacterName, classFixtureA, "Keeper of the light"))
		state.StorySummary = "The keeper climbed the tower."
	}

	return state
}

// TestClasses returns the four classes used by fixture rooms
func TestClasses() []string {
	return []string{classFixtureA, classFixtureB, classFixtureC, classFixtureD}
}

// TestDelta returns a small narrative delta with no optional changes
func TestDelta() *entities.NarrativeDelta {
	return &entities.NarrativeDelta{
		Text:         "The lamp flickers as thunder rolls.",
		ImagePrompt:  "storm lighthouse lamp",
		Choices:      []entities.StoryChoice{{Text: "Trim the wick"}, {Text: "Descend the stairs"}},
		StorySummary: "The keeper tends the failing lamp.",
	}
}
