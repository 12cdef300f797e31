package session_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-tales/internal/clients/narrative"
	narrativemock "github.com/KirkDiggler/rpg-tales/internal/clients/narrative/mock"
	"github.com/KirkDiggler/rpg-tales/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-tales/internal/entities"
	"github.com/KirkDiggler/rpg-tales/internal/errors"
	"github.com/KirkDiggler/rpg-tales/internal/orchestrators/session"
	"github.com/KirkDiggler/rpg-tales/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-tales/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-tales/internal/repositories/journal"
	"github.com/KirkDiggler/rpg-tales/internal/repositories/room"
	"github.com/KirkDiggler/rpg-tales/internal/testutils"
)

type flowHarness struct {
	service  session.Service
	rooms    *room.InMemoryRepository
	narrator *narrativemock.MockClient
}

func newFlowHarness(t *testing.T) *flowHarness {
	t.Helper()

	ctrl := gomock.NewController(t)
	narrator := narrativemock.NewMockClient(ctrl)

	rooms, err := room.NewInMemoryRepository(&room.InMemoryConfig{
		EventBus: events.NewBus(),
		Clock:    clock.NewFixed(testutils.TestTime),
	})
	require.NoError(t, err)

	adapter, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{DiceRoller: &fixedRoller{value: 15}})
	require.NoError(t, err)

	service, err := session.NewOrchestrator(&session.Config{
		RoomRepo:          rooms,
		JournalRepo:       journal.NewInMemoryStore(),
		Narrator:          narrator,
		Engine:            adapter,
		TokenIssuer:       stubIssuer{},
		RoomCodeGenerator: idgen.NewRoomCode(entities.RoomCodeLength),
		Clock:             clock.NewFixed(testutils.TestTime),
		GenerationTimeout: time.Second,
	})
	require.NoError(t, err)

	return &flowHarness{service: service, rooms: rooms, narrator: narrator}
}

func TestSoloAdventureFlow(t *testing.T) {
	h := newFlowHarness(t)
	ctx := context.Background()
	host := testutils.TestHostID

	created, err := h.service.CreateRoom(ctx, &session.CreateRoomInput{PlayerID: host, IsSolo: true})
	require.NoError(t, err)
	code := created.State.Code
	assert.Len(t, code, entities.RoomCodeLength)
	assert.Equal(t, entities.ScreenSetup, created.Screen)

	h.narrator.EXPECT().
		GenerateClasses(gomock.Any(), "Clockwork desert").
		Return([]string{"Sand Tinker", "Gear Monk", "Dune Runner", "Oil Seer"}, nil)

	_, err = h.service.GenerateClasses(ctx, &session.GenerateClassesInput{
		PlayerID: host, Code: code, Theme: "Clockwork desert",
	})
	require.NoError(t, err)

	setup, err := h.service.ConfirmSetup(ctx, &session.ConfirmSetupInput{
		PlayerID: host, Code: code, PlayerLimit: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.StatusSoloCharacterCreation, setup.State.Status)

	first, err := h.service.ConfirmCharacter(ctx, &session.ConfirmCharacterInput{
		PlayerID: host, Code: code, Name: "Ada", Class: "Gear Monk", Backstory: "Built her own arm",
	})
	require.NoError(t, err)
	assert.False(t, first.Started)

	opening := &entities.NarrativeDelta{
		Text:         "Wind scours the brass dunes.",
		ImagePrompt:  "brass dunes",
		Choices:      []entities.StoryChoice{{Text: "Follow the ticking"}},
		FoundItems:   []string{"Copper key"},
		MapUpdate:    &entities.MapLocation{X: 20, Y: 70, LocationName: "Ticking Oasis", Icon: "🌴"},
		StorySummary: "Ada and Rex reach the oasis.",
	}
	h.narrator.EXPECT().
		GenerateStoryNode(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *narrative.StoryInput) (*entities.NarrativeDelta, error) {
			assert.Equal(t, session.OpeningAction, input.Action)
			assert.Equal(t, 15, input.Roll)
			assert.Len(t, input.State.Characters, 2)
			return opening, nil
		})

	second, err := h.service.ConfirmCharacter(ctx, &session.ConfirmCharacterInput{
		PlayerID: host, Code: code, Name: "Rex", Class: "Dune Runner", Backstory: "Never stops",
	})
	require.NoError(t, err)
	require.True(t, second.Started)

	state := second.State
	assert.Equal(t, entities.StatusPlaying, state.Status)
	assert.Equal(t, []string{"Copper key"}, state.Inventory)
	assert.Equal(t, entities.Position{X: 20, Y: 70}, state.Map.CurrentPosition)
	assert.Len(t, state.Map.Locations, 1)
	assert.Equal(t, 1, state.ActiveCharacterIndex)
	assert.Equal(t, opening.Text, state.LastUpdate.Text)

	h.narrator.EXPECT().
		GenerateStoryNode(gomock.Any(), gomock.Any()).
		Return(&entities.NarrativeDelta{
			Text:          "A gear bites Rex.",
			HealthChanges: []entities.HealthChange{{CharacterName: "Rex", Change: -25}, {CharacterName: "Ghost", Change: 5}},
			StorySummary:  "",
		}, nil)

	acted, err := h.service.PerformAction(ctx, &session.PerformActionInput{
		PlayerID: host, Code: code, Action: "Grab the gear", Roll: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, acted.State.Characters[1].HP)
	assert.True(t, acted.State.Characters[1].Downed())
	assert.Equal(t, "Ada and Rex reach the oasis.", acted.State.StorySummary)
	assert.Equal(t, 0, acted.State.ActiveCharacterIndex)

	log, err := h.service.GetJournal(ctx, &session.GetJournalInput{Code: code})
	require.NoError(t, err)
	require.Len(t, log.Entries, 2)
	assert.Equal(t, session.OpeningAction, log.Entries[0].Action)
	assert.Equal(t, "Ada", log.Entries[0].CharacterName)
	assert.Equal(t, "Rex", log.Entries[1].CharacterName)
	assert.Equal(t, int64(2), log.Entries[1].Turn)

	got, err := h.service.GetRoom(ctx, &session.GetRoomInput{PlayerID: host, Code: code})
	require.NoError(t, err)
	assert.Equal(t, entities.ScreenGame, got.Screen)
}

func TestMultiplayerTurnsRotate(t *testing.T) {
	h := newFlowHarness(t)
	ctx := context.Background()
	host, guest := testutils.TestHostID, guestID

	created, err := h.service.CreateRoom(ctx, &session.CreateRoomInput{PlayerID: host})
	require.NoError(t, err)
	code := created.State.Code

	h.narrator.EXPECT().GenerateClasses(gomock.Any(), gomock.Any()).Return(testutils.TestClasses(), nil)
	_, err = h.service.GenerateClasses(ctx, &session.GenerateClassesInput{PlayerID: host, Code: code, Theme: "Storm coast"})
	require.NoError(t, err)
	_, err = h.service.ConfirmSetup(ctx, &session.ConfirmSetupInput{PlayerID: host, Code: code, PlayerLimit: 2})
	require.NoError(t, err)

	joined, err := h.service.JoinRoom(ctx, &session.JoinRoomInput{PlayerID: guest, PlayerName: "Bea", Code: code})
	require.NoError(t, err)
	assert.Equal(t, entities.ScreenCharacterCreation, joined.Screen)

	_, err = h.service.ConfirmCharacter(ctx, &session.ConfirmCharacterInput{
		PlayerID: host, Code: code, Name: "Hal", Class: "Wrecker", Backstory: "Salvager",
	})
	require.NoError(t, err)

	_, err = h.service.StartGame(ctx, &session.StartGameInput{PlayerID: host, Code: code})
	assert.True(t, errors.IsFailedPrecondition(err))

	_, err = h.service.ConfirmCharacter(ctx, &session.ConfirmCharacterInput{
		PlayerID: guest, Code: code, Name: "Bea", Class: "Tide Witch", Backstory: "Listens to waves",
	})
	require.NoError(t, err)

	h.narrator.EXPECT().GenerateStoryNode(gomock.Any(), gomock.Any()).
		Return(testutils.TestDelta(), nil).Times(2)

	started, err := h.service.StartGame(ctx, &session.StartGameInput{PlayerID: host, Code: code})
	require.NoError(t, err)
	// the opening turn belonged to Hal, so Bea acts next
	assert.Equal(t, 1, started.State.ActiveCharacterIndex)

	_, err = h.service.PerformAction(ctx, &session.PerformActionInput{
		PlayerID: host, Code: code, Action: "Out of turn", Roll: 10,
	})
	assert.True(t, errors.IsPermissionDenied(err))

	acted, err := h.service.PerformAction(ctx, &session.PerformActionInput{
		PlayerID: guest, Code: code, Action: "Call the tide", Roll: 18,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, acted.State.ActiveCharacterIndex)
}

func TestPerformActionAfterRoomDeleted(t *testing.T) {
	h := newFlowHarness(t)
	ctx := context.Background()

	state := testutils.CreateTestRoomAtStage(true, testutils.StagePlaying)
	_, err := h.rooms.Create(ctx, room.CreateInput{State: state})
	require.NoError(t, err)

	h.narrator.EXPECT().
		GenerateStoryNode(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ *narrative.StoryInput) (*entities.NarrativeDelta, error) {
			// the room disappears while the narrator is thinking
			_, err := h.rooms.Delete(ctx, room.DeleteInput{Code: testutils.TestRoomCode})
			require.NoError(t, err)
			return testutils.TestDelta(), nil
		})

	_, err = h.service.PerformAction(ctx, &session.PerformActionInput{
		PlayerID: testutils.TestHostID, Code: testutils.TestRoomCode, Action: "Climb", Roll: 7,
	})
	assert.True(t, errors.IsNotFound(err))

	exists, err := h.service.RoomExists(ctx, &session.RoomExistsInput{Code: testutils.TestRoomCode})
	require.NoError(t, err)
	assert.False(t, exists.Exists)
}

func TestUnknownCharacterInHealthChangeWarnsOnce(t *testing.T) {
	h := newFlowHarness(t)
	ctx := context.Background()

	var logs bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn})))
	t.Cleanup(func() { slog.SetDefault(previous) })

	state := testutils.CreateTestRoomAtStage(true, testutils.StagePlaying)
	_, err := h.rooms.Create(ctx, room.CreateInput{State: state})
	require.NoError(t, err)

	delta := testutils.TestDelta()
	delta.HealthChanges = []entities.HealthChange{{CharacterName: "Nobody", Change: -3}}
	h.narrator.EXPECT().
		GenerateStoryNode(gomock.Any(), gomock.Any()).
		Return(delta, nil)

	out, err := h.service.PerformAction(ctx, &session.PerformActionInput{
		PlayerID: testutils.TestHostID, Code: testutils.TestRoomCode, Action: "Shout", Roll: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, state.Characters[0].HP, out.State.Characters[0].HP)

	assert.Equal(t, 1, strings.Count(logs.String(), "level=WARN"), logs.String())
	assert.Contains(t, logs.String(), "character_name=Nobody")
}
