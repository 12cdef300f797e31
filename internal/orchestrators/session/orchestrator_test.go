package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-tales/internal/auth"
	"github.com/KirkDiggler/rpg-tales/internal/clients/narrative"
	narrativemock "github.com/KirkDiggler/rpg-tales/internal/clients/narrative/mock"
	"github.com/KirkDiggler/rpg-tales/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-tales/internal/entities"
	"github.com/KirkDiggler/rpg-tales/internal/errors"
	"github.com/KirkDiggler/rpg-tales/internal/orchestrators/session"
	"github.com/KirkDiggler/rpg-tales/internal/pkg/clock"
	idgenmock "github.com/KirkDiggler/rpg-tales/internal/pkg/idgen/mock"
	"github.com/KirkDiggler/rpg-tales/internal/repositories/journal"
	journalmock "github.com/KirkDiggler/rpg-tales/internal/repositories/journal/mock"
	"github.com/KirkDiggler/rpg-tales/internal/repositories/room"
	roommock "github.com/KirkDiggler/rpg-tales/internal/repositories/room/mock"
	"github.com/KirkDiggler/rpg-tales/internal/testutils"
)

const guestID = "player-guest"

type fixedRoller struct {
	value int
}

func (r *fixedRoller) Roll(_ int) (int, error) { return r.value, nil }
func (r *fixedRoller) RollN(count, _ int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = r.value
	}
	return out, nil
}

type stubIssuer struct{}

func (stubIssuer) Issue(label string) (string, *auth.Claims, error) {
	return "token-abc", &auth.Claims{
		PlayerID:  "player-new",
		Label:     label,
		IssuedAt:  testutils.TestTime,
		ExpiresAt: testutils.TestTime.Add(auth.DefaultTokenTTL),
	}, nil
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRoomRepo *roommock.MockRepository
	mockJournal  *journalmock.MockRepository
	mockNarrator *narrativemock.MockClient
	mockCodes    *idgenmock.MockGenerator
	roller       *fixedRoller
	orchestrator session.Service
	ctx          context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRoomRepo = roommock.NewMockRepository(s.ctrl)
	s.mockJournal = journalmock.NewMockRepository(s.ctrl)
	s.mockNarrator = narrativemock.NewMockClient(s.ctrl)
	s.mockCodes = idgenmock.NewMockGenerator(s.ctrl)
	s.roller = &fixedRoller{value: 12}
	s.ctx = context.Background()

	adapter, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{DiceRoller: s.roller})
	s.Require().NoError(err)

	o, err := session.NewOrchestrator(&session.Config{
		RoomRepo:          s.mockRoomRepo,
		JournalRepo:       s.mockJournal,
		Narrator:          s.mockNarrator,
		Engine:            adapter,
		TokenIssuer:       stubIssuer{},
		RoomCodeGenerator: s.mockCodes,
		Clock:             clock.NewFixed(testutils.TestTime),
	})
	s.Require().NoError(err)
	s.orchestrator = o
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) expectGet(state *entities.GameState) {
	s.mockRoomRepo.EXPECT().
		Get(s.ctx, room.GetInput{Code: state.Code}).
		Return(&room.GetOutput{State: state}, nil)
}

func (s *OrchestratorTestSuite) TestNewOrchestrator_MissingDependencies() {
	o, err := session.NewOrchestrator(&session.Config{})
	s.Error(err)
	s.Nil(o)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "invalid config")
}

func (s *OrchestratorTestSuite) TestAuthenticate() {
	out, err := s.orchestrator.Authenticate(s.ctx, &session.AuthenticateInput{Label: "Ana"})
	s.Require().NoError(err)
	s.Equal("player-new", out.PlayerID)
	s.Equal("token-abc", out.Token)
	s.Equal(testutils.TestTime.Add(auth.DefaultTokenTTL), out.ExpiresAt)
}

func (s *OrchestratorTestSuite) TestCreateRoom_Success() {
	s.mockCodes.EXPECT().Generate().Return("ABC123")
	s.mockRoomRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input room.CreateInput) (*room.CreateOutput, error) {
			s.Equal("ABC123", input.State.Code)
			s.Equal(testutils.TestHostID, input.State.HostID)
			s.Equal(entities.StatusSetup, input.State.Status)
			s.Equal(entities.DefaultMultiLimit, input.State.PlayerLimit)
			s.Equal(entities.Position{X: 50, Y: 50}, input.State.Map.CurrentPosition)
			s.Equal("Ana", input.State.Players[testutils.TestHostID])
			stored := input.State.Clone()
			stored.Version = 1
			return &room.CreateOutput{State: stored}, nil
		})

	out, err := s.orchestrator.CreateRoom(s.ctx, &session.CreateRoomInput{
		PlayerID:   testutils.TestHostID,
		PlayerName: "Ana",
	})
	s.Require().NoError(err)
	s.Equal("ABC123", out.State.Code)
	s.Equal(entities.ScreenSetup, out.Screen)
}

func (s *OrchestratorTestSuite) TestCreateRoom_RetriesTakenCode() {
	gomock.InOrder(
		s.mockCodes.EXPECT().Generate().Return("TAKEN1"),
		s.mockCodes.EXPECT().Generate().Return("FRESH1"),
	)
	gomock.InOrder(
		s.mockRoomRepo.EXPECT().Create(s.ctx, gomock.Any()).
			Return(nil, errors.AlreadyExists("room TAKEN1 already exists")),
		s.mockRoomRepo.EXPECT().Create(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input room.CreateInput) (*room.CreateOutput, error) {
				return &room.CreateOutput{State: input.State}, nil
			}),
	)

	out, err := s.orchestrator.CreateRoom(s.ctx, &session.CreateRoomInput{
		PlayerID: testutils.TestHostID,
		IsSolo:   true,
	})
	s.Require().NoError(err)
	s.Equal("FRESH1", out.State.Code)
	s.Equal(entities.DefaultSoloLimit, out.State.PlayerLimit)
}

func (s *OrchestratorTestSuite) TestCreateRoom_GivesUpAfterCollisions() {
	s.mockCodes.EXPECT().Generate().Return("TAKEN1").Times(5)
	s.mockRoomRepo.EXPECT().Create(s.ctx, gomock.Any()).
		Return(nil, errors.AlreadyExists("taken")).Times(5)

	out, err := s.orchestrator.CreateRoom(s.ctx, &session.CreateRoomInput{PlayerID: testutils.TestHostID})
	s.Error(err)
	s.Nil(out)
	s.True(errors.IsUnavailable(err))
}

func (s *OrchestratorTestSuite) TestJoinRoom_NormalizesCodeAndRecordsPlayer() {
	state := testutils.CreateTestRoomAtStage(false, testutils.StageLobby)
	state.Version = 4
	s.expectGet(state)
	s.mockRoomRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input room.UpdateInput) (*room.UpdateOutput, error) {
			s.Equal(testutils.TestRoomCode, input.Code)
			s.Equal(int64(4), input.ExpectedVersion)
			s.Equal("Bea", input.Patch.Players[guestID])
			s.Equal("Host", input.Patch.Players[testutils.TestHostID])
			next := state.Clone()
			input.Patch.Apply(next)
			next.Version = 5
			return &room.UpdateOutput{State: next}, nil
		})

	out, err := s.orchestrator.JoinRoom(s.ctx, &session.JoinRoomInput{
		PlayerID:   guestID,
		PlayerName: "Bea",
		Code:       "  quest1 ",
	})
	s.Require().NoError(err)
	s.Equal(entities.ScreenCharacterCreation, out.Screen)
	s.Contains(out.State.Players, guestID)
	// the stored snapshot is not touched
	s.NotContains(state.Players, guestID)
}

func (s *OrchestratorTestSuite) TestJoinRoom_AlreadyMemberDoesNotWrite() {
	state := testutils.CreateTestRoomAtStage(false, testutils.StageLobby)
	s.expectGet(state)

	out, err := s.orchestrator.JoinRoom(s.ctx, &session.JoinRoomInput{
		PlayerID: testutils.TestHostID,
		Code:     testutils.TestRoomCode,
	})
	s.Require().NoError(err)
	s.Equal(state, out.State)
}

func (s *OrchestratorTestSuite) TestJoinRoom_InvalidCode() {
	out, err := s.orchestrator.JoinRoom(s.ctx, &session.JoinRoomInput{
		PlayerID: guestID,
		Code:     "ABC",
	})
	s.Error(err)
	s.Nil(out)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "must be exactly 6 characters")
}

func (s *OrchestratorTestSuite) TestJoinRoom_NotFound() {
	s.mockRoomRepo.EXPECT().
		Get(s.ctx, room.GetInput{Code: "NOPE12"}).
		Return(nil, errors.NotFound("room NOPE12 not found"))

	out, err := s.orchestrator.JoinRoom(s.ctx, &session.JoinRoomInput{
		PlayerID: guestID,
		Code:     "nope12",
	})
	s.Error(err)
	s.Nil(out)
	s.True(errors.IsNotFound(err))
	s.Equal("room not found", errors.GetMessage(err))
}

func (s *OrchestratorTestSuite) TestRoomExists() {
	s.Run("malformed code never exists", func() {
		out, err := s.orchestrator.RoomExists(s.ctx, &session.RoomExistsInput{Code: "x"})
		s.Require().NoError(err)
		s.False(out.Exists)
	})

	s.Run("asks the store", func() {
		s.mockRoomRepo.EXPECT().
			Exists(s.ctx, room.ExistsInput{Code: testutils.TestRoomCode}).
			Return(&room.ExistsOutput{Exists: true}, nil)

		out, err := s.orchestrator.RoomExists(s.ctx, &session.RoomExistsInput{Code: "quest1"})
		s.Require().NoError(err)
		s.True(out.Exists)
	})
}

func (s *OrchestratorTestSuite) TestGenerateClasses_Success() {
	state := testutils.CreateTestRoom(false)
	state.Version = 1
	s.expectGet(state)
	s.mockNarrator.EXPECT().
		GenerateClasses(gomock.Any(), "Sunken cathedral").
		Return(testutils.TestClasses(), nil)
	s.mockRoomRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input room.UpdateInput) (*room.UpdateOutput, error) {
			s.Equal(int64(1), input.ExpectedVersion)
			s.Require().NotNil(input.Patch.Theme)
			s.Equal("Sunken cathedral", *input.Patch.Theme)
			next := state.Clone()
			input.Patch.Apply(next)
			return &room.UpdateOutput{State: next}, nil
		})

	out, err := s.orchestrator.GenerateClasses(s.ctx, &session.GenerateClassesInput{
		PlayerID: testutils.TestHostID,
		Code:     testutils.TestRoomCode,
		Theme:    " Sunken cathedral ",
	})
	s.Require().NoError(err)
	s.Equal(testutils.TestClasses(), out.Classes)
}

func (s *OrchestratorTestSuite) TestGenerateClasses_FailureLeavesRoomUntouched() {
	state := testutils.CreateTestRoom(false)
	s.expectGet(state)
	s.mockNarrator.EXPECT().
		GenerateClasses(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("model overloaded"))

	out, err := s.orchestrator.GenerateClasses(s.ctx, &session.GenerateClassesInput{
		PlayerID: testutils.TestHostID,
		Code:     testutils.TestRoomCode,
		Theme:    "Sky pirates",
	})
	s.Error(err)
	s.Nil(out)
	s.True(errors.IsUnavailable(err))
}

func (s *OrchestratorTestSuite) TestGenerateClasses_HostOnly() {
	state := testutils.CreateTestRoom(false)
	s.expectGet(state)

	_, err := s.orchestrator.GenerateClasses(s.ctx, &session.GenerateClassesInput{
		PlayerID: guestID,
		Code:     testutils.TestRoomCode,
		Theme:    "Sky pirates",
	})
	s.True(errors.IsPermissionDenied(err))
}

func (s *OrchestratorTestSuite) TestConfirmSetup() {
	s.Run("multiplayer moves to lobby", func() {
		state := testutils.CreateTestRoom(false)
		state.GeneratedClasses = testutils.TestClasses()
		state.Theme = "Sky pirates"
		s.expectGet(state)
		s.mockRoomRepo.EXPECT().
			Update(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input room.UpdateInput) (*room.UpdateOutput, error) {
				s.Equal(entities.StatusLobby, *input.Patch.Status)
				s.Equal(4, *input.Patch.PlayerLimit)
				s.Equal("Sky pirates", *input.Patch.Theme)
				next := state.Clone()
				input.Patch.Apply(next)
				return &room.UpdateOutput{State: next}, nil
			})

		out, err := s.orchestrator.ConfirmSetup(s.ctx, &session.ConfirmSetupInput{
			PlayerID:    testutils.TestHostID,
			Code:        testutils.TestRoomCode,
			PlayerLimit: 4,
		})
		s.Require().NoError(err)
		s.Equal(entities.StatusLobby, out.State.Status)
	})

	s.Run("solo moves to solo character creation", func() {
		state := testutils.CreateTestRoom(true)
		state.GeneratedClasses = testutils.TestClasses()
		s.expectGet(state)
		s.mockRoomRepo.EXPECT().
			Update(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input room.UpdateInput) (*room.UpdateOutput, error) {
				next := state.Clone()
				input.Patch.Apply(next)
				return &room.UpdateOutput{State: next}, nil
			})

		out, err := s.orchestrator.ConfirmSetup(s.ctx, &session.ConfirmSetupInput{
			PlayerID:    testutils.TestHostID,
			Code:        testutils.TestRoomCode,
			Theme:       "Cursed bog",
			PlayerLimit: 2,
		})
		s.Require().NoError(err)
		s.Equal(entities.StatusSoloCharacterCreation, out.State.Status)
		s.Equal(2, out.State.PlayerLimit)
	})

	s.Run("requires generated classes", func() {
		state := testutils.CreateTestRoom(false)
		s.expectGet(state)

		_, err := s.orchestrator.ConfirmSetup(s.ctx, &session.ConfirmSetupInput{
			PlayerID:    testutils.TestHostID,
			Code:        testutils.TestRoomCode,
			Theme:       "Cursed bog",
			PlayerLimit: 3,
		})
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("limit out of bounds", func() {
		state := testutils.CreateTestRoom(false)
		state.GeneratedClasses = testutils.TestClasses()
		s.expectGet(state)

		_, err := s.orchestrator.ConfirmSetup(s.ctx, &session.ConfirmSetupInput{
			PlayerID:    testutils.TestHostID,
			Code:        testutils.TestRoomCode,
			Theme:       "Cursed bog",
			PlayerLimit: 9,
		})
		s.True(errors.IsInvalidArgument(err))
		s.Contains(err.Error(), "must be between 2 and 8")
	})
}

func (s *OrchestratorTestSuite) TestConfirmCharacter_MultiplayerAppends() {
	state := testutils.CreateTestRoomAtStage(false, testutils.StageLobby)
	state.Version = 3
	s.expectGet(state)
	s.mockRoomRepo.EXPECT().
		AddCharacter(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input room.AddCharacterInput) (*room.AddCharacterOutput, error) {
			s.Equal(int64(3), input.ExpectedVersion)
			s.Equal(entities.DefaultMaxHP, input.Character.HP)
			s.Equal(entities.DefaultMaxHP, input.Character.MaxHP)
			next := state.Clone()
			next.Characters = append(next.Characters, input.Character)
			return &room.AddCharacterOutput{State: next}, nil
		})

	out, err := s.orchestrator.ConfirmCharacter(s.ctx, &session.ConfirmCharacterInput{
		PlayerID:  testutils.TestHostID,
		Code:      testutils.TestRoomCode,
		Name:      "Mira",
		Class:     "Tide Witch",
		Backstory: "Raised by the sea",
	})
	s.Require().NoError(err)
	s.False(out.Started)
	s.Len(out.State.Characters, 1)
}

func (s *OrchestratorTestSuite) TestConfirmCharacter_Rejections() {
	s.Run("missing fields", func() {
		_, err := s.orchestrator.ConfirmCharacter(s.ctx, &session.ConfirmCharacterInput{
			PlayerID: testutils.TestHostID,
			Code:     testutils.TestRoomCode,
		})
		s.True(errors.IsInvalidArgument(err))
		meta := errors.GetMeta(err)
		s.Contains(meta, "validation_errors")
	})

	s.Run("unknown class", func() {
		state := testutils.CreateTestRoomAtStage(false, testutils.StageLobby)
		s.expectGet(state)

		_, err := s.orchestrator.ConfirmCharacter(s.ctx, &session.ConfirmCharacterInput{
			PlayerID:  testutils.TestHostID,
			Code:      testutils.TestRoomCode,
			Name:      "Mira",
			Class:     "Paladin",
			Backstory: "Lost",
		})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("second character for the same player", func() {
		state := testutils.CreateTestRoomAtStage(false, testutils.StageLobby)
		state.Characters = append(state.Characters,
			entities.NewCharacter(testutils.TestHostID, "Mira", "Tide Witch", "Sea"))
		s.expectGet(state)

		_, err := s.orchestrator.ConfirmCharacter(s.ctx, &session.ConfirmCharacterInput{
			PlayerID:  testutils.TestHostID,
			Code:      testutils.TestRoomCode,
			Name:      "Again",
			Class:     "Wrecker",
			Backstory: "Twice",
		})
		s.True(errors.IsAlreadyExists(err))
	})

	s.Run("caller has not joined", func() {
		state := testutils.CreateTestRoomAtStage(false, testutils.StageLobby)
		s.expectGet(state)

		_, err := s.orchestrator.ConfirmCharacter(s.ctx, &session.ConfirmCharacterInput{
			PlayerID:  "stranger",
			Code:      testutils.TestRoomCode,
			Name:      "Nobody",
			Class:     "Wrecker",
			Backstory: "Uninvited",
		})
		s.True(errors.IsPermissionDenied(err))
	})

	s.Run("wrong phase", func() {
		state := testutils.CreateTestRoomAtStage(false, testutils.StagePlaying)
		s.expectGet(state)

		_, err := s.orchestrator.ConfirmCharacter(s.ctx, &session.ConfirmCharacterInput{
			PlayerID:  testutils.TestHostID,
			Code:      testutils.TestRoomCode,
			Name:      "Late",
			Class:     "Wrecker",
			Backstory: "Too late",
		})
		s.True(errors.IsFailedPrecondition(err))
	})
}

func (s *OrchestratorTestSuite) TestConfirmCharacter_SoloAutoStarts() {
	state := testutils.CreateTestRoomAtStage(true, testutils.StageSolo)
	state.Version = 2
	s.expectGet(state)

	var withHero *entities.GameState
	s.mockRoomRepo.EXPECT().
		AddCharacter(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input room.AddCharacterInput) (*room.AddCharacterOutput, error) {
			withHero = state.Clone()
			withHero.Characters = append(withHero.Characters, input.Character)
			withHero.Version = 3
			return &room.AddCharacterOutput{State: withHero}, nil
		})
	s.mockRoomRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input room.UpdateInput) (*room.UpdateOutput, error) {
			s.Equal(int64(3), input.ExpectedVersion)
			s.Equal(entities.StatusPlaying, *input.Patch.Status)
			next := withHero.Clone()
			input.Patch.Apply(next)
			next.Version = 4
			return &room.UpdateOutput{State: next}, nil
		})
	s.mockNarrator.EXPECT().
		GenerateStoryNode(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *narrative.StoryInput) (*entities.NarrativeDelta, error) {
			s.Equal(session.OpeningAction, input.Action)
			s.Equal(12, input.Roll)
			s.Equal(entities.StatusPlaying, input.State.Status)
			return testutils.TestDelta(), nil
		})
	s.mockRoomRepo.EXPECT().
		Replace(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input room.ReplaceInput) (*room.ReplaceOutput, error) {
			s.Equal(int64(4), input.ExpectedVersion)
			return &room.ReplaceOutput{State: input.State}, nil
		})
	s.mockJournal.EXPECT().
		Append(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input journal.AppendInput) (*journal.AppendOutput, error) {
			s.Equal(session.OpeningAction, input.Entry.Action)
			s.Equal("Mira", input.Entry.CharacterName)
			return &journal.AppendOutput{Entry: input.Entry}, nil
		})

	out, err := s.orchestrator.ConfirmCharacter(s.ctx, &session.ConfirmCharacterInput{
		PlayerID:  testutils.TestHostID,
		Code:      testutils.TestRoomCode,
		Name:      "Mira",
		Class:     "Tide Witch",
		Backstory: "Raised by the sea",
	})
	s.Require().NoError(err)
	s.True(out.Started)
	s.Equal(entities.StatusPlaying, out.State.Status)
	s.Require().NotNil(out.State.LastUpdate)
	s.Equal(testutils.TestDelta().Text, out.State.LastUpdate.Text)
}

func (s *OrchestratorTestSuite) TestStartGame() {
	s.Run("party incomplete", func() {
		state := testutils.CreateTestRoomAtStage(false, testutils.StageLobby)
		state.Characters = append(state.Characters,
			entities.NewCharacter(testutils.TestHostID, "Mira", "Tide Witch", "Sea"))
		s.expectGet(state)

		_, err := s.orchestrator.StartGame(s.ctx, &session.StartGameInput{
			PlayerID: testutils.TestHostID,
			Code:     testutils.TestRoomCode,
		})
		s.True(errors.IsFailedPrecondition(err))
		s.Contains(err.Error(), "party needs 3 characters, has 1")
	})

	s.Run("solo rooms cannot be started by hand", func() {
		state := testutils.CreateTestRoomAtStage(true, testutils.StageSolo)
		s.expectGet(state)

		_, err := s.orchestrator.StartGame(s.ctx, &session.StartGameInput{
			PlayerID: testutils.TestHostID,
			Code:     testutils.TestRoomCode,
		})
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("guests cannot start", func() {
		state := testutils.CreateTestRoomAtStage(false, testutils.StageLobby)
		s.expectGet(state)

		_, err := s.orchestrator.StartGame(s.ctx, &session.StartGameInput{
			PlayerID: guestID,
			Code:     testutils.TestRoomCode,
		})
		s.True(errors.IsPermissionDenied(err))
	})
}

func (s *OrchestratorTestSuite) TestPerformAction_RejectsBadInputBeforeAnyCall() {
	cases := []struct {
		name  string
		input *session.PerformActionInput
		field string
	}{
		{"roll zero", &session.PerformActionInput{Action: "Swing", Roll: 0}, "Roll"},
		{"roll too high", &session.PerformActionInput{Action: "Swing", Roll: 21}, "Roll"},
		{"roll not a number", &session.PerformActionInput{Action: "Swing", RollText: "abc"}, "Roll"},
		{"empty action", &session.PerformActionInput{Action: "   ", Roll: 10}, "Action"},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			tc.input.PlayerID = testutils.TestHostID
			tc.input.Code = testutils.TestRoomCode

			out, err := s.orchestrator.PerformAction(s.ctx, tc.input)
			s.Nil(out)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.field)
		})
	}
}

func (s *OrchestratorTestSuite) TestPerformAction_RollText() {
	state := testutils.CreateTestRoomAtStage(true, testutils.StagePlaying)
	s.expectGet(state)
	s.mockNarrator.EXPECT().
		GenerateStoryNode(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *narrative.StoryInput) (*entities.NarrativeDelta, error) {
			s.Equal(17, input.Roll)
			return testutils.TestDelta(), nil
		})
	s.mockRoomRepo.EXPECT().Replace(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input room.ReplaceInput) (*room.ReplaceOutput, error) {
			return &room.ReplaceOutput{State: input.State}, nil
		})
	s.mockJournal.EXPECT().Append(s.ctx, gomock.Any()).
		Return(&journal.AppendOutput{}, nil)

	_, err := s.orchestrator.PerformAction(s.ctx, &session.PerformActionInput{
		PlayerID: testutils.TestHostID,
		Code:     testutils.TestRoomCode,
		Action:   "Light the lamp",
		RollText: " 17 ",
	})
	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestPerformAction_GenerationFailureKeepsState() {
	state := testutils.CreateTestRoomAtStage(true, testutils.StagePlaying)
	s.expectGet(state)
	s.mockNarrator.EXPECT().
		GenerateStoryNode(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("gemini request failed"))

	out, err := s.orchestrator.PerformAction(s.ctx, &session.PerformActionInput{
		PlayerID: testutils.TestHostID,
		Code:     testutils.TestRoomCode,
		Action:   "Light the lamp",
		Roll:     5,
	})
	s.Nil(out)
	s.True(errors.IsUnavailable(err))
	s.Equal("the winds of magic are unstable, try again", errors.GetMessage(err))
}

func (s *OrchestratorTestSuite) TestPerformAction_TurnGating() {
	state := testutils.CreateTestRoomAtStage(false, testutils.StagePlaying)
	state.Players[guestID] = "Bea"
	state.Characters = append(state.Characters,
		entities.NewCharacter(guestID, "Mira", "Tide Witch", "Sea"))
	state.ActiveCharacterIndex = 0
	s.expectGet(state)

	out, err := s.orchestrator.PerformAction(s.ctx, &session.PerformActionInput{
		PlayerID: guestID,
		Code:     testutils.TestRoomCode,
		Action:   "Push ahead",
		Roll:     9,
	})
	s.Nil(out)
	s.True(errors.IsPermissionDenied(err))
	s.Equal(testutils.TestCharacterName, errors.GetMeta(err)["active_character"])
}

func (s *OrchestratorTestSuite) TestPerformAction_NotPlaying() {
	state := testutils.CreateTestRoomAtStage(false, testutils.StageLobby)
	s.expectGet(state)

	_, err := s.orchestrator.PerformAction(s.ctx, &session.PerformActionInput{
		PlayerID: testutils.TestHostID,
		Code:     testutils.TestRoomCode,
		Action:   "Wait",
		Roll:     3,
	})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestPerformAction_ConflictAndDeletion() {
	for name, storeErr := range map[string]error{
		"concurrent write": errors.Abortedf("room %s changed", testutils.TestRoomCode),
		"room deleted":     errors.NotFoundf("room %s not found", testutils.TestRoomCode),
	} {
		s.Run(name, func() {
			state := testutils.CreateTestRoomAtStage(true, testutils.StagePlaying)
			s.expectGet(state)
			s.mockNarrator.EXPECT().
				GenerateStoryNode(gomock.Any(), gomock.Any()).
				Return(testutils.TestDelta(), nil)
			s.mockRoomRepo.EXPECT().Replace(s.ctx, gomock.Any()).Return(nil, storeErr)

			out, err := s.orchestrator.PerformAction(s.ctx, &session.PerformActionInput{
				PlayerID: testutils.TestHostID,
				Code:     testutils.TestRoomCode,
				Action:   "Light the lamp",
				Roll:     11,
			})
			s.Nil(out)
			s.Equal(errors.GetCode(storeErr), errors.GetCode(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestPerformAction_JournalFailureDoesNotFailTurn() {
	state := testutils.CreateTestRoomAtStage(true, testutils.StagePlaying)
	s.expectGet(state)
	s.mockNarrator.EXPECT().
		GenerateStoryNode(gomock.Any(), gomock.Any()).
		Return(testutils.TestDelta(), nil)
	s.mockRoomRepo.EXPECT().Replace(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input room.ReplaceInput) (*room.ReplaceOutput, error) {
			return &room.ReplaceOutput{State: input.State}, nil
		})
	s.mockJournal.EXPECT().Append(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("disk full"))

	out, err := s.orchestrator.PerformAction(s.ctx, &session.PerformActionInput{
		PlayerID: testutils.TestHostID,
		Code:     testutils.TestRoomCode,
		Action:   "Light the lamp",
		Roll:     11,
	})
	s.Require().NoError(err)
	s.Equal(testutils.TestDelta().StorySummary, out.State.StorySummary)
}

func (s *OrchestratorTestSuite) TestGenerateSceneImage() {
	s.Run("no scene yet", func() {
		state := testutils.CreateTestRoomAtStage(true, testutils.StagePlaying)
		s.expectGet(state)

		out, err := s.orchestrator.GenerateSceneImage(s.ctx, &session.GenerateSceneImageInput{
			Code: testutils.TestRoomCode,
		})
		s.Require().NoError(err)
		s.Empty(out.Image)
	})

	s.Run("failure yields empty image", func() {
		state := testutils.CreateTestRoomAtStage(true, testutils.StagePlaying)
		state.LastUpdate = testutils.TestDelta()
		s.expectGet(state)
		s.mockNarrator.EXPECT().
			GenerateImage(gomock.Any(), "storm lighthouse lamp").
			Return("", errors.Unavailable("quota"))

		out, err := s.orchestrator.GenerateSceneImage(s.ctx, &session.GenerateSceneImageInput{
			Code: testutils.TestRoomCode,
		})
		s.Require().NoError(err)
		s.Empty(out.Image)
		s.Equal("storm lighthouse lamp", out.Prompt)
	})

	s.Run("success", func() {
		state := testutils.CreateTestRoomAtStage(true, testutils.StagePlaying)
		state.LastUpdate = testutils.TestDelta()
		s.expectGet(state)
		s.mockNarrator.EXPECT().
			GenerateImage(gomock.Any(), "storm lighthouse lamp").
			Return("data:image/jpeg;base64,AAAA", nil)

		out, err := s.orchestrator.GenerateSceneImage(s.ctx, &session.GenerateSceneImageInput{
			Code: testutils.TestRoomCode,
		})
		s.Require().NoError(err)
		s.Equal("data:image/jpeg;base64,AAAA", out.Image)
	})
}

func (s *OrchestratorTestSuite) TestGetJournal() {
	entries := []entities.JournalEntry{{RoomCode: testutils.TestRoomCode, Turn: 1, Action: "Look"}}
	s.mockJournal.EXPECT().
		List(s.ctx, journal.ListInput{RoomCode: testutils.TestRoomCode, Limit: 10}).
		Return(&journal.ListOutput{Entries: entries}, nil)

	out, err := s.orchestrator.GetJournal(s.ctx, &session.GetJournalInput{Code: "quest1", Limit: 10})
	s.Require().NoError(err)
	s.Equal(entries, out.Entries)
}

func (s *OrchestratorTestSuite) TestRollD20() {
	out, err := s.orchestrator.RollD20(s.ctx, &session.RollD20Input{})
	s.Require().NoError(err)
	s.Equal(12, out.Roll)
}

func (s *OrchestratorTestSuite) TestWatchRoom_RoutesAndEndsOnGone() {
	changes := make(chan room.Change, 3)
	lobby := testutils.CreateTestRoomAtStage(false, testutils.StageLobby)
	odd := lobby.Clone()
	odd.Status = entities.StatusSoloCharacterCreation
	changes <- room.Change{State: lobby}
	changes <- room.Change{State: odd}
	changes <- room.Change{Gone: true}
	close(changes)

	s.mockRoomRepo.EXPECT().
		Watch(gomock.Any(), room.WatchInput{Code: testutils.TestRoomCode}).
		Return(&room.WatchOutput{Changes: changes}, nil)

	out, err := s.orchestrator.WatchRoom(s.ctx, &session.WatchRoomInput{
		PlayerID: guestID,
		Code:     testutils.TestRoomCode,
	})
	s.Require().NoError(err)

	var got []session.RoomUpdate
	for u := range out.Updates {
		got = append(got, u)
	}

	s.Require().Len(got, 3)
	s.Equal(entities.ScreenCharacterCreation, got[0].Screen)
	// unrecognized phase keeps the previous screen
	s.Equal(entities.ScreenCharacterCreation, got[1].Screen)
	s.True(got[2].Gone)
	s.Equal(entities.ScreenEntry, got[2].Screen)
}
