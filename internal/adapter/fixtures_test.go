//go:build unit

package adapter

import (
	"game-library/internal/core/model"
	"game-library/pkg/util"
)

func testGame(id string) model.Game {
	return model.Game{
		ID:                  id,
		Title:               "Game " + id,
		Description:         "A game",
		MinPlayers:          2,
		MaxPlayers:          4,
		PlayDuration:        model.PlayDurationMedium,
		AgeRecommendation:   "10+",
		FirstPlayComplexity: model.ComplexityLow,
		Categories:          []string{"Famille"},
		Mechanics:           []string{"Draft"},
		Awards:              []model.Award{{Name: "As d'Or", Year: util.GetPtr(2020)}},
		Images:              []model.Image{{ID: id + "-box"}},
	}
}

func rawIDs(raws []model.RawGame) []any {
	out := make([]any, 0, len(raws))
	for _, r := range raws {
		out = append(out, r["id"])
	}
	return out
}
