//go:build unit

package core

import (
	"game-library/internal/core/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCard(t *testing.T) {
	g := testGame("azul", players(2, 4), duration(model.PlayDurationShort), favorite, awarded("Spiel des Jahres", 2018))
	card, err := DefaultCardMapper().ToCard(&g)
	require.NoError(t, err)
	assert.Equal(t, model.GameCard{
		ID:           "azul",
		Title:        "Game azul",
		PlayerCount:  "2-4 joueurs",
		PlayDuration: model.PlayDurationShort,
		HasAwards:    true,
		IsFavorite:   true,
	}, card)
}

func TestToCard_NoAwardsNotFavorite(t *testing.T) {
	g := testGame("x")
	card, err := DefaultCardMapper().ToCard(&g)
	require.NoError(t, err)
	assert.False(t, card.HasAwards)
	assert.False(t, card.IsFavorite)
}

func TestToCard_Errors(t *testing.T) {
	m := DefaultCardMapper()

	_, err := m.ToCard(nil)
	assert.ErrorIs(t, err, model.ErrGameRequired)

	cases := map[string]func(*model.Game){
		"id":           func(g *model.Game) { g.ID = "" },
		"title":        func(g *model.Game) { g.Title = " " },
		"playDuration": duration(""),
	}
	for field, mod := range cases {
		g := testGame("x", mod)
		_, err := m.ToCard(&g)
		var e *model.Error
		require.ErrorAs(t, err, &e, field)
		assert.Equal(t, model.CodeMissingMandatoryField, e.Code)
		assert.Equal(t, field, e.Field)
	}
}

func TestFormatPlayerCount(t *testing.T) {
	m := DefaultCardMapper()
	assert.Equal(t, "1 joueur", m.FormatPlayerCount(1, 1))
	assert.Equal(t, "2 joueurs", m.FormatPlayerCount(2, 2))
	assert.Equal(t, "2-4 joueurs", m.FormatPlayerCount(2, 4))
	assert.Equal(t, "3-6+ joueurs", m.FormatPlayerCount(3, 6))
	assert.Equal(t, "6 joueurs", m.FormatPlayerCount(6, 6))
	assert.Equal(t, "4-8 joueurs", m.FormatPlayerCount(4, 8))
}

func TestFormatPlayerCount_Configurable(t *testing.T) {
	m := CardMapper{TopBucket: 0, Unit: "player", Units: "players"}
	assert.Equal(t, "3-6 players", m.FormatPlayerCount(3, 6))
	assert.Equal(t, "1 player", m.FormatPlayerCount(1, 1))

	m = CardMapper{TopBucket: 8}
	assert.Equal(t, "2-8+", m.FormatPlayerCount(2, 8))
	assert.Equal(t, "5", m.FormatPlayerCount(5, 5))
}

func TestToCards_PreservesOrder(t *testing.T) {
	cards, err := DefaultCardMapper().ToCards(sampleGames())
	require.NoError(t, err)
	require.Len(t, cards, 4)
	assert.Equal(t, "a", cards[0].ID)
	assert.Equal(t, "1-2 joueurs", cards[0].PlayerCount)
	assert.Equal(t, "2-6+ joueurs", cards[2].PlayerCount)
	assert.Equal(t, "d", cards[3].ID)

	_, err = DefaultCardMapper().ToCards([]model.Game{testGame("ok"), testGame("bad", duration(""))})
	assert.ErrorIs(t, err, model.ErrMissingMandatoryField)
}

func TestToCard_ZeroPlayers(t *testing.T) {
	g := testGame("zero", players(0, 0))
	card, err := DefaultCardMapper().ToCard(&g)
	require.NoError(t, err)
	assert.Equal(t, "0 joueur", card.PlayerCount)
}
