package adapter

import (
	"context"
	"fmt"
	"game-library/internal/core/model"
	"log/slog"
)

// Store is implemented by every persistence backend: it is both the catalog
// loader and the admin write target.
type Store interface {
	LoadGames(ctx context.Context) ([]model.RawGame, error)
	GetByID(ctx context.Context, id string) (model.Game, error)
	Save(ctx context.Context, g model.Game) error
}

var (
	_ Store = (*GameRepo)(nil)
	_ Store = (*FileStore)(nil)
	_ Store = (*SQLiteStore)(nil)
)

// OpenStore builds the backend named by kind ("memory", "file" or "sqlite").
// The returned close function is never nil.
func OpenStore(kind, dataDir, dbPath string, logger *slog.Logger) (Store, func() error, error) {
	noop := func() error { return nil }
	switch kind {
	case "memory":
		return NewGameRepo(), noop, nil
	case "file":
		return NewFileStore(dataDir, logger), noop, nil
	case "sqlite":
		s, err := NewSQLiteStore(dbPath)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	}
	return nil, noop, fmt.Errorf("unknown store %q", kind)
}
