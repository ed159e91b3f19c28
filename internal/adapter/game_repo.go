package adapter

import (
	"context"
	"game-library/internal/core/model"
	"sync"
)

// GameRepo is an in-memory store. It serves as both the catalog loader and the
// admin persistence collaborator, and keeps insertion order.
type GameRepo struct {
	mu    sync.RWMutex
	byID  map[string]model.Game // id -> Game
	order []string              // ids in insertion order
}

func NewGameRepo(seed ...model.Game) *GameRepo {
	r := &GameRepo{byID: make(map[string]model.Game)}
	for _, g := range seed {
		r.put(g)
	}
	return r
}

// LoadGames returns every stored game as a raw record.
func (r *GameRepo) LoadGames(_ context.Context) ([]model.RawGame, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.RawGame, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, model.ToRaw(r.byID[id]))
	}
	return out, nil
}

func (r *GameRepo) GetByID(_ context.Context, id string) (model.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.byID[id]
	if !ok {
		return model.Game{}, model.GameNotFound(id)
	}
	return g.Clone(), nil
}

// Save inserts or replaces the whole record.
func (r *GameRepo) Save(_ context.Context, g model.Game) error {
	if g.ID == "" {
		return model.InvalidPath("")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.put(g)
	return nil
}

func (r *GameRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

func (r *GameRepo) put(g model.Game) {
	if _, ok := r.byID[g.ID]; !ok {
		r.order = append(r.order, g.ID)
	}
	r.byID[g.ID] = g.Clone()
}
