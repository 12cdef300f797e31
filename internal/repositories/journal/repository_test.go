package journal_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-tales/internal/entities"
	"github.com/KirkDiggler/rpg-tales/internal/errors"
	"github.com/KirkDiggler/rpg-tales/internal/repositories/journal"
)

type JournalContractSuite struct {
	suite.Suite

	newRepo func() journal.Repository
	repo    journal.Repository
	ctx     context.Context
}

func TestSQLiteJournal(t *testing.T) {
	s := &JournalContractSuite{}
	s.newRepo = func() journal.Repository {
		store, err := journal.OpenSQLite(journal.MemoryPath)
		s.Require().NoError(err)
		s.T().Cleanup(func() { _ = store.Close() })
		return store
	}
	suite.Run(t, s)
}

func TestInMemoryJournal(t *testing.T) {
	s := &JournalContractSuite{}
	s.newRepo = func() journal.Repository {
		return journal.NewInMemoryStore()
	}
	suite.Run(t, s)
}

func (s *JournalContractSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = s.newRepo()
}

func (s *JournalContractSuite) entry(room, action string, roll int) entities.JournalEntry {
	return entities.JournalEntry{
		RoomCode:      room,
		PlayerID:      "p1",
		CharacterName: "Aria",
		Action:        action,
		Roll:          roll,
		Narrative:     "Something happens.",
		CreatedAt:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *JournalContractSuite) TestAppendNumbersTurnsPerRoom() {
	first, err := s.repo.Append(s.ctx, journal.AppendInput{Entry: s.entry("ROOM01", "open the door", 12)})
	s.Require().NoError(err)
	s.Equal(int64(1), first.Entry.Turn)

	second, err := s.repo.Append(s.ctx, journal.AppendInput{Entry: s.entry("ROOM01", "light a torch", 3)})
	s.Require().NoError(err)
	s.Equal(int64(2), second.Entry.Turn)

	other, err := s.repo.Append(s.ctx, journal.AppendInput{Entry: s.entry("ROOM02", "wake up", 20)})
	s.Require().NoError(err)
	s.Equal(int64(1), other.Entry.Turn)
}

func (s *JournalContractSuite) TestListInOrder() {
	for _, action := range []string{"first", "second", "third"} {
		_, err := s.repo.Append(s.ctx, journal.AppendInput{Entry: s.entry("ROOM01", action, 10)})
		s.Require().NoError(err)
	}

	out, err := s.repo.List(s.ctx, journal.ListInput{RoomCode: "ROOM01"})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 3)
	s.Equal("first", out.Entries[0].Action)
	s.Equal("third", out.Entries[2].Action)
	s.Equal(int64(3), out.Entries[2].Turn)
	s.True(out.Entries[0].CreatedAt.Equal(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)))

	limited, err := s.repo.List(s.ctx, journal.ListInput{RoomCode: "ROOM01", Limit: 2})
	s.Require().NoError(err)
	s.Len(limited.Entries, 2)
}

func (s *JournalContractSuite) TestListEmptyRoom() {
	out, err := s.repo.List(s.ctx, journal.ListInput{RoomCode: "EMPTY0"})
	s.Require().NoError(err)
	s.NotNil(out.Entries)
	s.Empty(out.Entries)
}

func (s *JournalContractSuite) TestValidation() {
	_, err := s.repo.Append(s.ctx, journal.AppendInput{Entry: s.entry("", "act", 10)})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Append(s.ctx, journal.AppendInput{Entry: s.entry("ROOM01", " ", 10)})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Append(s.ctx, journal.AppendInput{Entry: s.entry("ROOM01", "act", 21)})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.List(s.ctx, journal.ListInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestOpenSQLiteRequiresPath(t *testing.T) {
	_, err := journal.OpenSQLite("  ")
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestOpenSQLiteFile(t *testing.T) {
	path := t.TempDir() + "/journal.db"

	store, err := journal.OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()
	_, err = store.Append(ctx, journal.AppendInput{Entry: entities.JournalEntry{RoomCode: "ROOM01", Action: "wait", Roll: 5}})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	_ = store.Close()

	reopened, err := journal.OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = reopened.Close() }()

	out, err := reopened.List(ctx, journal.ListInput{RoomCode: "ROOM01"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out.Entries) != 1 || out.Entries[0].Action != "wait" {
		t.Fatalf("unexpected entries: %+v", out.Entries)
	}
}
