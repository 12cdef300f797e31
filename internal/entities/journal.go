package entities

import "time"

// JournalEntry records one merged turn of a room
type JournalEntry struct {
	RoomCode      string    `json:"room_code"`
	Turn          int64     `json:"turn"`
	PlayerID      string    `json:"player_id"`
	CharacterName string    `json:"character_name"`
	Action        string    `json:"action"`
	Roll          int       `json:"roll"`
	Narrative     string    `json:"narrative"`
	CreatedAt     time.Time `json:"created_at"`
}
