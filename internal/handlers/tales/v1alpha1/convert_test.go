package v1alpha1_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	talesv1alpha1 "github.com/KirkDiggler/rpg-tales/gen/go/tales/v1alpha1"

	"github.com/KirkDiggler/rpg-tales/internal/entities"
	"github.com/KirkDiggler/rpg-tales/internal/handlers/tales/v1alpha1"
	"github.com/KirkDiggler/rpg-tales/internal/testutils"
)

type ConvertTestSuite struct {
	suite.Suite
}

func TestConvertTestSuite(t *testing.T) {
	suite.Run(t, new(ConvertTestSuite))
}

func (s *ConvertTestSuite) TestRoomToProto_SortsPlayers() {
	state := testutils.CreateTestRoom(false)
	state.Players["zeta"] = "Zed"
	state.Players["alpha"] = "Ana"

	got := v1alpha1.RoomToProto(state)

	s.Require().Len(got.GetPlayers(), 3)
	s.Equal("alpha", got.GetPlayers()[0].GetPlayerId())
	s.Equal("Ana", got.GetPlayers()[0].GetName())
	s.Equal("zeta", got.GetPlayers()[2].GetPlayerId())
	s.Equal(talesv1alpha1.RoomStatus_ROOM_STATUS_SETUP, got.GetStatus())
	s.Equal(testutils.TestTime.Unix(), got.GetCreatedAt())
	s.Nil(got.GetLastUpdate())
}

func (s *ConvertTestSuite) TestRoomRoundTrip_PlayingRoom() {
	state := testutils.CreateTestRoomAtStage(true, testutils.StagePlaying)
	state.Inventory = []string{"brass key"}
	state.Map.Locations = []entities.MapLocation{{X: 10, Y: 20, LocationName: "Tower", Icon: "🗼"}}
	state.LastUpdate = testutils.TestDelta()
	state.LastUpdate.HealthChanges = []entities.HealthChange{{CharacterName: testutils.TestCharacterName, Change: -4}}
	state.LastUpdate.MapUpdate = &entities.MapLocation{X: 10, Y: 20, LocationName: "Tower", Icon: "🗼"}
	state.Version = 7

	got := v1alpha1.RoomFromProto(v1alpha1.RoomToProto(state))

	s.Equal(state.Code, got.Code)
	s.Equal(entities.StatusPlaying, got.Status)
	s.Equal(state.Players, got.Players)
	s.Equal(state.Characters, got.Characters)
	s.Equal(state.Inventory, got.Inventory)
	s.Equal(state.Map, got.Map)
	s.Equal(state.LastUpdate, got.LastUpdate)
	s.Equal(int64(7), got.Version)
	s.True(state.CreatedAt.Equal(got.CreatedAt))
}

func (s *ConvertTestSuite) TestRoomFromProto_EmptyListsStayNonNil() {
	got := v1alpha1.RoomFromProto(&talesv1alpha1.GameState{Code: testutils.TestRoomCode})

	s.NotNil(got.Players)
	s.NotNil(got.Characters)
	s.NotNil(got.GeneratedClasses)
	s.NotNil(got.Inventory)
	s.True(got.CreatedAt.IsZero())
	s.Equal(entities.Status(""), got.Status)
}

func (s *ConvertTestSuite) TestNilRooms() {
	s.Nil(v1alpha1.RoomToProto(nil))
	s.Nil(v1alpha1.RoomFromProto(nil))
}

func (s *ConvertTestSuite) TestScreens() {
	screens := []entities.Screen{
		entities.ScreenEntry,
		entities.ScreenJoin,
		entities.ScreenSetup,
		entities.ScreenCharacterCreation,
		entities.ScreenLobby,
		entities.ScreenGame,
	}
	for _, screen := range screens {
		s.Run(string(screen), func() {
			wire := v1alpha1.ScreenToProto(screen)
			s.NotEqual(talesv1alpha1.Screen_SCREEN_UNSPECIFIED, wire)
			s.Equal(screen, v1alpha1.ScreenFromProto(wire))
		})
	}

	s.Equal(talesv1alpha1.Screen_SCREEN_UNSPECIFIED, v1alpha1.ScreenToProto(entities.ScreenNone))
	s.Equal(entities.ScreenNone, v1alpha1.ScreenFromProto(talesv1alpha1.Screen_SCREEN_UNSPECIFIED))
}
