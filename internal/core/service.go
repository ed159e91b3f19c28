package core

import (
	"context"
	"errors"
	"game-library/internal/core/model"
	"log/slog"
)

// Loader supplies raw, unvalidated catalog records in catalog order.
type Loader interface {
	LoadGames(ctx context.Context) ([]model.RawGame, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context) ([]model.RawGame, error)

func (f LoaderFunc) LoadGames(ctx context.Context) ([]model.RawGame, error) { return f(ctx) }

// GameStore is the persistence collaborator of administrative writes.
// GetByID returns an error matching model.ErrGameNotFound when id is absent.
// Save replaces the whole record.
type GameStore interface {
	GetByID(ctx context.Context, id string) (model.Game, error)
	Save(ctx context.Context, g model.Game) error
}

// AdminService orchestrates add, update, archive and restore. Each use case
// validates before it writes and calls Save at most once.
type AdminService struct {
	Store GameStore
	log   *slog.Logger
}

func NewAdminService(store GameStore, logger *slog.Logger) *AdminService {
	return &AdminService{Store: store, log: orDiscard(logger)}
}

func (s *AdminService) AddGame(ctx context.Context, in model.RawGame) (model.Game, error) {
	g, err := newGame(in)
	if err != nil {
		return model.Game{}, err
	}
	if g.Archived {
		return model.Game{}, model.InvalidGameData("archived must be false", nil)
	}

	// duplicate id protection before save
	_, err = s.Store.GetByID(ctx, g.ID)
	switch {
	case err == nil:
		return model.Game{}, model.DuplicateGameID(g.ID)
	case !errors.Is(err, model.ErrGameNotFound):
		return model.Game{}, model.OperationFailed(g.ID, err)
	}

	if err := s.Store.Save(ctx, g); err != nil {
		return model.Game{}, model.OperationFailed(g.ID, err)
	}
	s.log.InfoContext(ctx, "game added", "id", g.ID)
	return g, nil
}

// UpdateGame replaces the game stored under id with in. The id of the record is
// always the path id; an id carried by in is ignored.
func (s *AdminService) UpdateGame(ctx context.Context, id string, in model.RawGame) (model.Game, error) {
	raw := in.Clone()
	raw["id"] = id
	g, err := newGame(raw)
	if err != nil {
		return model.Game{}, err
	}

	if _, err := s.load(ctx, id); err != nil {
		return model.Game{}, err
	}
	if err := s.Store.Save(ctx, g); err != nil {
		return model.Game{}, model.OperationFailed(id, err)
	}
	s.log.InfoContext(ctx, "game updated", "id", id)
	return g, nil
}

func (s *AdminService) ArchiveGame(ctx context.Context, id string) (model.Game, error) {
	return s.transition(ctx, id, "archived", Archive)
}

func (s *AdminService) RestoreGame(ctx context.Context, id string) (model.Game, error) {
	return s.transition(ctx, id, "restored", Restore)
}

func (s *AdminService) transition(ctx context.Context, id, verb string, apply func(*model.Game) (model.Game, error)) (model.Game, error) {
	existing, err := s.load(ctx, id)
	if err != nil {
		return model.Game{}, err
	}
	next, err := apply(&existing)
	if err != nil {
		return model.Game{}, err
	}
	if err := s.Store.Save(ctx, next); err != nil {
		return model.Game{}, model.OperationFailed(id, err)
	}
	s.log.InfoContext(ctx, "game "+verb, "id", id)
	return next, nil
}

func (s *AdminService) load(ctx context.Context, id string) (model.Game, error) {
	g, err := s.Store.GetByID(ctx, id)
	if errors.Is(err, model.ErrGameNotFound) {
		return model.Game{}, model.GameNotFound(id)
	}
	if err != nil {
		return model.Game{}, model.OperationFailed(id, err)
	}
	return g, nil
}

// newGame maps a validator failure to INVALID_GAME_DATA, keeping the error set.
func newGame(raw model.RawGame) (model.Game, error) {
	g, err := model.NewGame(raw)
	var ve *model.Error
	if errors.As(err, &ve) {
		return model.Game{}, model.InvalidGameData("", ve.Validation)
	}
	return g, err
}

func orDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l
}
