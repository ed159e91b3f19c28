package core

import (
	"context"
	"game-library/internal/core/model"
	"log/slog"
)

// Repository is the authoritative read path: it loads raw records, validates
// them and applies visibility.
type Repository struct {
	Loader Loader
	log    *slog.Logger
}

func NewRepository(loader Loader, logger *slog.Logger) *Repository {
	return &Repository{Loader: loader, log: orDiscard(logger)}
}

// GetAllGames returns the valid games visible in v, in loader order.
// Invalid records are dropped so one corrupt entry cannot take down the whole
// catalog. Any visibility other than model.Admin is treated as model.Visitor.
func (r *Repository) GetAllGames(ctx context.Context, v model.Visibility) ([]model.Game, error) {
	raws, err := r.Loader.LoadGames(ctx)
	if err != nil {
		return nil, model.DataLoadFailure(err)
	}

	out := make([]model.Game, 0, len(raws))
	for i, raw := range raws {
		g, err := model.NewGame(raw)
		if err != nil {
			id, _ := raw["id"].(string)
			r.log.WarnContext(ctx, "discarding invalid game record", "index", i, "id", id, "err", err)
			continue
		}
		if v != model.Admin && g.Archived {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

// GetGameByID looks the game up among all valid games, so an archived game is
// reported as hidden to visitors rather than missing.
func (r *Repository) GetGameByID(ctx context.Context, id string, v model.Visibility) (model.Game, error) {
	games, err := r.GetAllGames(ctx, model.Admin)
	if err != nil {
		return model.Game{}, err
	}
	for _, g := range games {
		if g.ID != id {
			continue
		}
		if v != model.Admin && g.Archived {
			return model.Game{}, model.GameArchivedNotVisible(id)
		}
		return g, nil
	}
	return model.Game{}, model.GameNotFound(id)
}
