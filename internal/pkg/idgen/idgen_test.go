package idgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoomCodeGenerator(t *testing.T) {
	gen := NewRoomCode(6)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := gen.Generate()
		assert.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(RoomCodeAlphabet, r), "unexpected rune %q", r)
		}
		seen[code] = true
	}
	assert.Greater(t, len(seen), 90)
}

func TestSequentialGenerator(t *testing.T) {
	gen := NewSequential("room")
	assert.Equal(t, "room_1", gen.Generate())
	assert.Equal(t, "room_2", gen.Generate())

	bare := NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUIDGenerator(t *testing.T) {
	id := NewUUID("player").Generate()
	assert.True(t, strings.HasPrefix(id, "player_"))
	assert.Len(t, id, len("player_")+36)
}
