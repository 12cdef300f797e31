package journal

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/KirkDiggler/rpg-tales/internal/entities"
	"github.com/KirkDiggler/rpg-tales/internal/errors"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS journal_entries (
	room_code      TEXT    NOT NULL,
	turn           INTEGER NOT NULL,
	player_id      TEXT    NOT NULL,
	character_name TEXT    NOT NULL,
	action         TEXT    NOT NULL,
	roll           INTEGER NOT NULL,
	narrative      TEXT    NOT NULL,
	created_at     INTEGER NOT NULL,
	PRIMARY KEY (room_code, turn)
)`

// SQLiteStore persists journal entries in SQLite
type SQLiteStore struct {
	db *sql.DB
}

// Ensure SQLiteStore implements Repository
var _ Repository = (*SQLiteStore)(nil)

// OpenSQLite opens a journal database at path and creates the schema
func OpenSQLite(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("storage path is required")
	}

	dsn := MemoryPath
	if path != MemoryPath {
		dsn = filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite db")
	}
	if path == MemoryPath {
		// every connection to :memory: is a separate database
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to ping sqlite db")
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to create journal schema")
	}

	return &SQLiteStore{db: db}, nil
}

// Close releases the database
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Append records an entry with the next turn number for its room
func (s *SQLiteStore) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	entry := input.Entry
	if err := validateEntry(entry); err != nil {
		return nil, err
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin journal transaction")
	}
	defer func() { _ = tx.Rollback() }()

	var last int64
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(turn), 0) FROM journal_entries WHERE room_code = ?`,
		entry.RoomCode,
	).Scan(&last)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read last turn")
	}
	entry.Turn = last + 1

	_, err = tx.ExecContext(ctx, `
INSERT INTO journal_entries (
	room_code,
	turn,
	player_id,
	character_name,
	action,
	roll,
	narrative,
	created_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`,
		entry.RoomCode,
		entry.Turn,
		entry.PlayerID,
		entry.CharacterName,
		entry.Action,
		entry.Roll,
		entry.Narrative,
		entry.CreatedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert journal entry")
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "failed to commit journal entry")
	}

	return &AppendOutput{Entry: entry}, nil
}

// List returns the first Limit turns of a room
func (s *SQLiteStore) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.RoomCode == "" {
		return nil, errors.InvalidArgument("room code is required")
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT room_code, turn, player_id, character_name, action, roll, narrative, created_at
FROM journal_entries
WHERE room_code = ?
ORDER BY turn ASC
LIMIT ?
`, input.RoomCode, listLimit(input.Limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to query journal")
	}
	defer func() { _ = rows.Close() }()

	entries := []entities.JournalEntry{}
	for rows.Next() {
		var (
			entry     entities.JournalEntry
			createdAt int64
		)
		if err := rows.Scan(
			&entry.RoomCode,
			&entry.Turn,
			&entry.PlayerID,
			&entry.CharacterName,
			&entry.Action,
			&entry.Roll,
			&entry.Narrative,
			&createdAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan journal entry")
		}
		entry.CreatedAt = time.UnixMilli(createdAt).UTC()
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate journal")
	}

	return &ListOutput{Entries: entries}, nil
}

func validateEntry(entry entities.JournalEntry) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("room_code", entry.RoomCode, vb)
	errors.ValidateRequired("action", entry.Action, vb)
	if entry.Roll != 0 {
		errors.ValidateRange("roll", entry.Roll, entities.MinRoll, entities.MaxRoll, vb)
	}
	return vb.Build()
}

func listLimit(limit int) int {
	if limit <= 0 || limit > DefaultListLimit {
		return DefaultListLimit
	}
	return limit
}
