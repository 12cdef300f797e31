package v1alpha1

import (
	"sort"
	"time"

	talesv1alpha1 "github.com/KirkDiggler/rpg-tales/gen/go/tales/v1alpha1"

	"github.com/KirkDiggler/rpg-tales/internal/entities"
)

func convertStatusToProto(status entities.Status) talesv1alpha1.RoomStatus {
	switch status {
	case entities.StatusSetup:
		return talesv1alpha1.RoomStatus_ROOM_STATUS_SETUP
	case entities.StatusLobby:
		return talesv1alpha1.RoomStatus_ROOM_STATUS_LOBBY
	case entities.StatusSoloCharacterCreation:
		return talesv1alpha1.RoomStatus_ROOM_STATUS_SOLO_CHARACTER_CREATION
	case entities.StatusPlaying:
		return talesv1alpha1.RoomStatus_ROOM_STATUS_PLAYING
	default:
		return talesv1alpha1.RoomStatus_ROOM_STATUS_UNSPECIFIED
	}
}

func convertProtoStatus(status talesv1alpha1.RoomStatus) entities.Status {
	switch status {
	case talesv1alpha1.RoomStatus_ROOM_STATUS_SETUP:
		return entities.StatusSetup
	case talesv1alpha1.RoomStatus_ROOM_STATUS_LOBBY:
		return entities.StatusLobby
	case talesv1alpha1.RoomStatus_ROOM_STATUS_SOLO_CHARACTER_CREATION:
		return entities.StatusSoloCharacterCreation
	case talesv1alpha1.RoomStatus_ROOM_STATUS_PLAYING:
		return entities.StatusPlaying
	default:
		return ""
	}
}

// ScreenToProto maps a routed screen onto the wire enum. ScreenNone becomes
// SCREEN_UNSPECIFIED.
func ScreenToProto(screen entities.Screen) talesv1alpha1.Screen {
	switch screen {
	case entities.ScreenEntry:
		return talesv1alpha1.Screen_SCREEN_ENTRY
	case entities.ScreenJoin:
		return talesv1alpha1.Screen_SCREEN_JOIN
	case entities.ScreenSetup:
		return talesv1alpha1.Screen_SCREEN_SETUP
	case entities.ScreenCharacterCreation:
		return talesv1alpha1.Screen_SCREEN_CHARACTER_CREATION
	case entities.ScreenLobby:
		return talesv1alpha1.Screen_SCREEN_LOBBY
	case entities.ScreenGame:
		return talesv1alpha1.Screen_SCREEN_GAME
	default:
		return talesv1alpha1.Screen_SCREEN_UNSPECIFIED
	}
}

// ScreenFromProto is the inverse of ScreenToProto
func ScreenFromProto(screen talesv1alpha1.Screen) entities.Screen {
	switch screen {
	case talesv1alpha1.Screen_SCREEN_ENTRY:
		return entities.ScreenEntry
	case talesv1alpha1.Screen_SCREEN_JOIN:
		return entities.ScreenJoin
	case talesv1alpha1.Screen_SCREEN_SETUP:
		return entities.ScreenSetup
	case talesv1alpha1.Screen_SCREEN_CHARACTER_CREATION:
		return entities.ScreenCharacterCreation
	case talesv1alpha1.Screen_SCREEN_LOBBY:
		return entities.ScreenLobby
	case talesv1alpha1.Screen_SCREEN_GAME:
		return entities.ScreenGame
	default:
		return entities.ScreenNone
	}
}

func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

func timeOrZero(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}

func convertLocationToProto(loc *entities.MapLocation) *talesv1alpha1.MapLocation {
	if loc == nil {
		return nil
	}
	return &talesv1alpha1.MapLocation{
		X:            loc.X,
		Y:            loc.Y,
		LocationName: loc.LocationName,
		Icon:         loc.Icon,
	}
}

func convertProtoLocation(loc *talesv1alpha1.MapLocation) *entities.MapLocation {
	if loc == nil {
		return nil
	}
	return &entities.MapLocation{
		X:            loc.GetX(),
		Y:            loc.GetY(),
		LocationName: loc.GetLocationName(),
		Icon:         loc.GetIcon(),
	}
}

func convertCharacterToProto(c entities.Character) *talesv1alpha1.Character {
	return &talesv1alpha1.Character{
		PlayerId:  c.PlayerID,
		Name:      c.Name,
		Class:     c.Class,
		Backstory: c.Backstory,
		Hp:        int32(c.HP),
		MaxHp:     int32(c.MaxHP),
	}
}

func convertProtoCharacter(c *talesv1alpha1.Character) entities.Character {
	return entities.Character{
		PlayerID:  c.GetPlayerId(),
		Name:      c.GetName(),
		Class:     c.GetClass(),
		Backstory: c.GetBackstory(),
		HP:        int(c.GetHp()),
		MaxHP:     int(c.GetMaxHp()),
	}
}

func convertDeltaToProto(d *entities.NarrativeDelta) *talesv1alpha1.NarrativeDelta {
	if d == nil {
		return nil
	}

	out := &talesv1alpha1.NarrativeDelta{
		Text:         d.Text,
		ImagePrompt:  d.ImagePrompt,
		FoundItems:   d.FoundItems,
		MapUpdate:    convertLocationToProto(d.MapUpdate),
		StorySummary: d.StorySummary,
	}
	for _, choice := range d.Choices {
		out.Choices = append(out.Choices, &talesv1alpha1.StoryChoice{Text: choice.Text})
	}
	for _, hc := range d.HealthChanges {
		out.HealthChanges = append(out.HealthChanges, &talesv1alpha1.HealthChange{
			CharacterName: hc.CharacterName,
			Change:        int32(hc.Change),
		})
	}
	return out
}

func convertProtoDelta(d *talesv1alpha1.NarrativeDelta) *entities.NarrativeDelta {
	if d == nil {
		return nil
	}

	out := &entities.NarrativeDelta{
		Text:         d.GetText(),
		ImagePrompt:  d.GetImagePrompt(),
		Choices:      make([]entities.StoryChoice, 0, len(d.GetChoices())),
		FoundItems:   d.GetFoundItems(),
		MapUpdate:    convertProtoLocation(d.GetMapUpdate()),
		StorySummary: d.GetStorySummary(),
	}
	for _, choice := range d.GetChoices() {
		out.Choices = append(out.Choices, entities.StoryChoice{Text: choice.GetText()})
	}
	for _, hc := range d.GetHealthChanges() {
		out.HealthChanges = append(out.HealthChanges, entities.HealthChange{
			CharacterName: hc.GetCharacterName(),
			Change:        int(hc.GetChange()),
		})
	}
	return out
}

// RoomToProto converts a room document to its wire form. Players are sorted
// by id so equal rooms encode identically.
func RoomToProto(state *entities.GameState) *talesv1alpha1.GameState {
	if state == nil {
		return nil
	}

	ids := make([]string, 0, len(state.Players))
	for id := range state.Players {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	players := make([]*talesv1alpha1.Player, 0, len(ids))
	for _, id := range ids {
		players = append(players, &talesv1alpha1.Player{PlayerId: id, Name: state.Players[id]})
	}

	characters := make([]*talesv1alpha1.Character, 0, len(state.Characters))
	for _, c := range state.Characters {
		characters = append(characters, convertCharacterToProto(c))
	}

	locations := make([]*talesv1alpha1.MapLocation, 0, len(state.Map.Locations))
	for i := range state.Map.Locations {
		locations = append(locations, convertLocationToProto(&state.Map.Locations[i]))
	}

	return &talesv1alpha1.GameState{
		Code:             state.Code,
		HostId:           state.HostID,
		Status:           convertStatusToProto(state.Status),
		IsSolo:           state.IsSolo,
		Players:          players,
		Characters:       characters,
		Theme:            state.Theme,
		GeneratedClasses: state.GeneratedClasses,
		Inventory:        state.Inventory,
		StorySummary:     state.StorySummary,
		Map: &talesv1alpha1.GameMap{
			Locations: locations,
			CurrentPosition: &talesv1alpha1.Position{
				X: state.Map.CurrentPosition.X,
				Y: state.Map.CurrentPosition.Y,
			},
		},
		ActiveCharacterIndex: int32(state.ActiveCharacterIndex),
		LastUpdate:           convertDeltaToProto(state.LastUpdate),
		PlayerLimit:          int32(state.PlayerLimit),
		Version:              state.Version,
		CreatedAt:            unixOrZero(state.CreatedAt),
		UpdatedAt:            unixOrZero(state.UpdatedAt),
	}
}

// RoomFromProto is the inverse of RoomToProto. Timestamps come back at
// second precision.
func RoomFromProto(state *talesv1alpha1.GameState) *entities.GameState {
	if state == nil {
		return nil
	}

	players := make(map[string]string, len(state.GetPlayers()))
	for _, p := range state.GetPlayers() {
		players[p.GetPlayerId()] = p.GetName()
	}

	characters := make([]entities.Character, 0, len(state.GetCharacters()))
	for _, c := range state.GetCharacters() {
		characters = append(characters, convertProtoCharacter(c))
	}

	locations := make([]entities.MapLocation, 0, len(state.GetMap().GetLocations()))
	for _, loc := range state.GetMap().GetLocations() {
		locations = append(locations, *convertProtoLocation(loc))
	}

	return &entities.GameState{
		Code:             state.GetCode(),
		HostID:           state.GetHostId(),
		Status:           convertProtoStatus(state.GetStatus()),
		IsSolo:           state.GetIsSolo(),
		Players:          players,
		Characters:       characters,
		Theme:            state.GetTheme(),
		GeneratedClasses: nonNil(state.GetGeneratedClasses()),
		Inventory:        nonNil(state.GetInventory()),
		StorySummary:     state.GetStorySummary(),
		Map: entities.GameMap{
			Locations: locations,
			CurrentPosition: entities.Position{
				X: state.GetMap().GetCurrentPosition().GetX(),
				Y: state.GetMap().GetCurrentPosition().GetY(),
			},
		},
		ActiveCharacterIndex: int(state.GetActiveCharacterIndex()),
		LastUpdate:           convertProtoDelta(state.GetLastUpdate()),
		PlayerLimit:          int(state.GetPlayerLimit()),
		Version:              state.GetVersion(),
		CreatedAt:            timeOrZero(state.GetCreatedAt()),
		UpdatedAt:            timeOrZero(state.GetUpdatedAt()),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// JournalEntryToProto converts one journal entry
func JournalEntryToProto(e entities.JournalEntry) *talesv1alpha1.JournalEntry {
	return &talesv1alpha1.JournalEntry{
		RoomCode:      e.RoomCode,
		Turn:          e.Turn,
		PlayerId:      e.PlayerID,
		CharacterName: e.CharacterName,
		Action:        e.Action,
		Roll:          int32(e.Roll),
		Narrative:     e.Narrative,
		CreatedAt:     unixOrZero(e.CreatedAt),
	}
}
