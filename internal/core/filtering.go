package core

import (
	"game-library/internal/core/model"
)

// ValidateFilters checks filter definitions in a fixed field order:
// playDuration, firstPlayComplexity, categories, mechanics. Categories and
// mechanics are open vocabularies and only need to be non-empty.
func ValidateFilters(f model.FilterSet) []*model.Error {
	var errs []*model.Error
	if f.PlayDuration != nil {
		if len(f.PlayDuration.Values) == 0 {
			errs = append(errs, model.EmptyFilterValues("playDuration"))
		}
		for _, v := range f.PlayDuration.Values {
			if !model.ValidPlayDuration(v) {
				errs = append(errs, model.InvalidFilterValue("playDuration", v))
			}
		}
	}
	if f.FirstPlayComplexity != nil {
		if len(f.FirstPlayComplexity.Values) == 0 {
			errs = append(errs, model.EmptyFilterValues("firstPlayComplexity"))
		}
		for _, v := range f.FirstPlayComplexity.Values {
			if !model.ValidComplexity(v) {
				errs = append(errs, model.InvalidFilterValue("firstPlayComplexity", v))
			}
		}
	}
	if f.Categories != nil && len(f.Categories.Values) == 0 {
		errs = append(errs, model.EmptyFilterValues("categories"))
	}
	if f.Mechanics != nil && len(f.Mechanics.Values) == 0 {
		errs = append(errs, model.EmptyFilterValues("mechanics"))
	}
	return errs
}

// ApplyFilters returns the games matching every present filter, preserving input
// order. An invalid filter set fails with the first validation error; no partial
// result is returned. The input slice is never modified.
//
// Visibility is not a filter: archived games pass through unless the caller
// already removed them.
func ApplyFilters(games []model.Game, f model.FilterSet) ([]model.Game, error) {
	if errs := ValidateFilters(f); len(errs) > 0 {
		return nil, errs[0]
	}

	out := make([]model.Game, 0, len(games))
	if f.IsEmpty() {
		return append(out, games...), nil
	}
	for _, g := range games {
		if matchFilters(g, f) {
			out = append(out, g)
		}
	}
	return out, nil
}

// matchFilters is AND across filters and OR within a filter's values.
func matchFilters(g model.Game, f model.FilterSet) bool {
	// player count: ranges overlap
	if pc := f.PlayerCount; pc != nil {
		if g.MinPlayers > pc.MaxPlayers || g.MaxPlayers < pc.MinPlayers {
			return false
		}
	}

	if f.PlayDuration != nil && !containsAny(f.PlayDuration.Values, g.PlayDuration) {
		return false
	}

	if f.FirstPlayComplexity != nil && !containsAny(f.FirstPlayComplexity.Values, g.FirstPlayComplexity) {
		return false
	}

	if f.Categories != nil && !containsAny(f.Categories.Values, g.Categories...) {
		return false
	}

	if f.Mechanics != nil && !containsAny(f.Mechanics.Values, g.Mechanics...) {
		return false
	}

	if f.HasAwards && len(g.Awards) == 0 {
		return false
	}

	if f.FavoriteOnly && !g.Favorite {
		return false
	}
	return true
}

func containsAny[T comparable](wanted []T, have ...T) bool {
	for _, w := range wanted {
		for _, h := range have {
			if w == h {
				return true
			}
		}
	}
	return false
}
