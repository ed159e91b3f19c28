//go:build unit

package core

import (
	"game-library/internal/core/model"
	"game-library/pkg/util"
)

// testGame builds a valid game; opts adjust it.
func testGame(id string, opts ...func(*model.Game)) model.Game {
	g := model.Game{
		ID:                  id,
		Title:               "Game " + id,
		Description:         "A game",
		MinPlayers:          2,
		MaxPlayers:          4,
		PlayDuration:        model.PlayDurationMedium,
		AgeRecommendation:   "8+",
		FirstPlayComplexity: model.ComplexityMedium,
		Categories:          []string{"Famille"},
		Mechanics:           []string{"Draft"},
		Awards:              []model.Award{},
		Images:              []model.Image{{ID: id + "-box", Source: util.GetPtr("publisher")}},
	}
	for _, o := range opts {
		o(&g)
	}
	return g
}

func players(min, max int) func(*model.Game) {
	return func(g *model.Game) { g.MinPlayers, g.MaxPlayers = min, max }
}

func duration(d model.PlayDuration) func(*model.Game) {
	return func(g *model.Game) { g.PlayDuration = d }
}

func complexity(c model.Complexity) func(*model.Game) {
	return func(g *model.Game) { g.FirstPlayComplexity = c }
}

func categories(c ...string) func(*model.Game) {
	return func(g *model.Game) { g.Categories = append([]string{}, c...) }
}

func mechanics(m ...string) func(*model.Game) {
	return func(g *model.Game) { g.Mechanics = append([]string{}, m...) }
}

func awarded(name string, year int) func(*model.Game) {
	return func(g *model.Game) { g.Awards = append(g.Awards, model.Award{Name: name, Year: util.GetPtr(year)}) }
}

func favorite(g *model.Game) { g.Favorite = true }

func archived(g *model.Game) { g.Archived = true }

func ids(games []model.Game) []string {
	out := make([]string, 0, len(games))
	for _, g := range games {
		out = append(out, g.ID)
	}
	return out
}
