package core

import (
	"context"
	"game-library/internal/core/model"
)

// Catalog runs the read pipeline:
//
//  1. Validate the filter set and sort mode, before any I/O.
//  2. Load visible games through the Repository.
//  3. Apply filters (stable).
//  4. Sort according to the mode (stable, missing keys last).
//  5. Project to cards, for list views.
type Catalog struct {
	Repo   *Repository
	Sorter Sorter
	Cards  CardMapper
}

func NewCatalog(repo *Repository, sorter Sorter, cards CardMapper) *Catalog {
	return &Catalog{Repo: repo, Sorter: sorter, Cards: cards}
}

// Games returns the full games for q.
func (c *Catalog) Games(ctx context.Context, q model.Query) ([]model.Game, error) {
	if errs := ValidateFilters(q.Filters); len(errs) > 0 {
		return nil, errs[0]
	}
	if q.Sort != model.SortNone && !model.ValidSortMode(q.Sort) {
		return nil, model.UnsupportedSortMode(q.Sort)
	}

	games, err := c.Repo.GetAllGames(ctx, q.Visibility)
	if err != nil {
		return nil, err
	}
	games, err = ApplyFilters(games, q.Filters)
	if err != nil {
		return nil, err
	}
	return c.Sorter.Apply(games, q.Sort)
}

// List returns the cards for q.
func (c *Catalog) List(ctx context.Context, q model.Query) ([]model.GameCard, error) {
	games, err := c.Games(ctx, q)
	if err != nil {
		return nil, err
	}
	return c.Cards.ToCards(games)
}

func (c *Catalog) Get(ctx context.Context, id string, v model.Visibility) (model.Game, error) {
	return c.Repo.GetGameByID(ctx, id, v)
}
