package adapter

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"game-library/internal/core/model"
	"time"

	"github.com/mattn/go-sqlite3"
)

// SQLiteStore persists each game as a JSON document keyed by id. Catalog order
// is insertion order (rowid); replacing a record keeps its position.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path and runs migrations.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			data TEXT NOT NULL,
			archived INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_games_archived ON games(archived)`,
	}
	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// LoadGames returns all stored documents. Rows whose JSON does not decode are
// passed on as nil records so the repository drops them like any invalid record.
func (s *SQLiteStore) LoadGames(ctx context.Context) ([]model.RawGame, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT data FROM games ORDER BY rowid`)
	if err != nil {
		return nil, mapSQLiteErr("", err)
	}
	defer rows.Close()

	out := []model.RawGame{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		raw, _ := model.DecodeRawGame([]byte(data))
		out = append(out, raw)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) GetByID(ctx context.Context, id string) (model.Game, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM games WHERE id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Game{}, model.GameNotFound(id)
	}
	if err != nil {
		return model.Game{}, mapSQLiteErr(id, err)
	}
	raw, err := model.DecodeRawGame([]byte(data))
	if err != nil {
		return model.Game{}, model.UnknownPersistenceError(err)
	}
	return model.NewGame(raw)
}

func (s *SQLiteStore) Save(ctx context.Context, g model.Game) error {
	if g.ID == "" {
		return model.InvalidPath("")
	}
	data, err := json.Marshal(g)
	if err != nil {
		return model.UnknownPersistenceError(err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO games (id, data, archived, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data, archived = excluded.archived, updated_at = excluded.updated_at
	`, g.ID, string(data), g.Archived, time.Now().UTC())
	if err != nil {
		return mapSQLiteErr(g.ID, err)
	}
	return nil
}

// mapSQLiteErr translates driver errors into persistence codes.
func mapSQLiteErr(id string, err error) error {
	var se sqlite3.Error
	if errors.As(err, &se) {
		switch se.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked:
			return model.WriteConflict(id)
		case sqlite3.ErrCantOpen, sqlite3.ErrIoErr:
			return model.RepositoryUnavailable(err)
		case sqlite3.ErrAuth, sqlite3.ErrPerm:
			return model.AuthenticationError()
		}
	}
	return model.UnknownPersistenceError(err)
}
