package core

import (
	"cmp"
	"game-library/internal/core/model"
	"slices"
)

// SortOrder selects how enum values compare.
type SortOrder string

const (
	// SortLexical compares the enum strings alphabetically, so durations order
	// LONG < MEDIUM < SHORT and complexities HIGH < LOW < MEDIUM.
	SortLexical SortOrder = "lexical"
	// SortSemantic orders SHORT < MEDIUM < LONG and LOW < MEDIUM < HIGH.
	SortSemantic SortOrder = "semantic"
)

var (
	durationRank   = map[model.PlayDuration]int{model.PlayDurationShort: 0, model.PlayDurationMedium: 1, model.PlayDurationLong: 2}
	complexityRank = map[model.Complexity]int{model.ComplexityLow: 0, model.ComplexityMedium: 1, model.ComplexityHigh: 2}
)

// Sorter applies a SortMode. The zero value sorts lexically.
type Sorter struct {
	Order SortOrder
}

// ApplySorting sorts with the default lexical order.
func ApplySorting(games []model.Game, mode model.SortMode) ([]model.Game, error) {
	return Sorter{}.Apply(games, mode)
}

// Apply returns a sorted copy of games. The sort is stable, and games without a
// value for the key always come last, in both directions.
func (s Sorter) Apply(games []model.Game, mode model.SortMode) ([]model.Game, error) {
	out := slices.Clone(games)
	if out == nil {
		out = []model.Game{}
	}
	if mode == model.SortNone {
		return out, nil
	}
	if !model.ValidSortMode(mode) {
		return nil, model.UnsupportedSortMode(mode)
	}

	var key func(model.Game) (string, int)
	switch mode {
	case model.SortPlayDurationAsc, model.SortPlayDurationDesc:
		key = func(g model.Game) (string, int) { return string(g.PlayDuration), durationRank[g.PlayDuration] }
	default:
		key = func(g model.Game) (string, int) { return string(g.FirstPlayComplexity), complexityRank[g.FirstPlayComplexity] }
	}
	desc := mode == model.SortPlayDurationDesc || mode == model.SortFirstPlayComplexityDesc

	slices.SortStableFunc(out, func(a, b model.Game) int {
		as, ar := key(a)
		bs, br := key(b)
		switch {
		case as == "" && bs == "":
			return 0
		case as == "":
			return 1
		case bs == "":
			return -1
		}
		c := cmp.Compare(as, bs)
		if s.Order == SortSemantic {
			c = cmp.Compare(ar, br)
		}
		if desc {
			return -c
		}
		return c
	})
	return out, nil
}
