//go:build unit

package core

import (
	"context"
	"game-library/internal/adapter"
	"game-library/internal/core/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingLoader struct {
	Loader
	calls int
}

func (l *countingLoader) LoadGames(ctx context.Context) ([]model.RawGame, error) {
	l.calls++
	return l.Loader.LoadGames(ctx)
}

func newCatalog(games ...model.Game) (*Catalog, *countingLoader) {
	loader := &countingLoader{Loader: adapter.NewGameRepo(games...)}
	return NewCatalog(NewRepository(loader, nil), Sorter{}, DefaultCardMapper()), loader
}

func TestCatalogList_Pipeline(t *testing.T) {
	c, _ := newCatalog(sampleGames()...)
	cards, err := c.List(context.Background(), model.Query{
		Visibility: model.Visitor,
		Filters:    model.FilterSet{Categories: &model.ValuesFilter[string]{Values: []string{"Famille", "Stratégie"}}},
		Sort:       model.SortPlayDurationAsc,
	})
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "b", cards[0].ID)
	assert.Equal(t, "3-4 joueurs", cards[0].PlayerCount)
	assert.True(t, cards[0].HasAwards)
	assert.Equal(t, "a", cards[1].ID)
	assert.True(t, cards[1].IsFavorite)
}

func TestCatalogGames_AdminSeesArchived(t *testing.T) {
	c, _ := newCatalog(sampleGames()...)
	games, err := c.Games(context.Background(), model.Query{Visibility: model.Admin})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(games))

	games, err = c.Games(context.Background(), model.Query{Visibility: model.Visitor})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "d"}, ids(games))
}

func TestCatalog_RejectsBeforeLoading(t *testing.T) {
	c, loader := newCatalog(sampleGames()...)

	_, err := c.List(context.Background(), model.Query{Sort: "RANDOM"})
	assert.ErrorIs(t, err, model.ErrUnsupportedSortMode)

	_, err = c.List(context.Background(), model.Query{Filters: model.FilterSet{PlayDuration: &model.ValuesFilter[model.PlayDuration]{}}})
	assert.ErrorIs(t, err, model.ErrEmptyFilterValues)
	assert.Zero(t, loader.calls)
}

func TestCatalogGet(t *testing.T) {
	c, _ := newCatalog(sampleGames()...)
	g, err := c.Get(context.Background(), "c", model.Admin)
	require.NoError(t, err)
	assert.Equal(t, "c", g.ID)

	_, err = c.Get(context.Background(), "c", model.Visitor)
	assert.ErrorIs(t, err, model.ErrGameArchivedNotVisible)
}

func TestCatalogList_ZeroPlayerGameDoesNotBreakList(t *testing.T) {
	zero := testGame("zero", players(0, 0))
	require.Empty(t, model.Validate(model.ToRaw(zero)))

	c, _ := newCatalog(testGame("ok"), zero)
	cards, err := c.List(context.Background(), model.Query{Visibility: model.Visitor})
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "zero", cards[1].ID)
}
