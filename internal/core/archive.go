package core

import "game-library/internal/core/model"

// Archive moves g from active to archived. It returns a new value and leaves g
// untouched. A nil game has no archive flag to read.
func Archive(g *model.Game) (model.Game, error) {
	if g == nil {
		return model.Game{}, model.MissingArchiveFlag()
	}
	if g.Archived {
		return model.Game{}, model.GameAlreadyArchived(g.ID)
	}
	next := g.Clone()
	next.Archived = true
	return next, nil
}

// Restore moves g from archived back to active.
func Restore(g *model.Game) (model.Game, error) {
	if g == nil {
		return model.Game{}, model.MissingArchiveFlag()
	}
	if !g.Archived {
		return model.Game{}, model.GameNotArchived(g.ID)
	}
	next := g.Clone()
	next.Archived = false
	return next, nil
}
