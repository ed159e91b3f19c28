package core

import (
	"fmt"
	"game-library/internal/core/model"
	"strings"
)

// CardMapper projects games to list cards.
//
// TopBucket is the highest player-count option offered by the caller's UI; a
// range ending on it is rendered open-ended ("3-6+"). Zero disables the marker.
// Unit and Units are the singular and plural labels appended to counts.
type CardMapper struct {
	TopBucket int
	Unit      string
	Units     string
}

func DefaultCardMapper() CardMapper {
	return CardMapper{TopBucket: 6, Unit: "joueur", Units: "joueurs"}
}

// ToCard fails when g is nil or lacks a field the card needs; it does not trust
// that g went through the validator. Player counts are always present on a Game,
// so any pair the validator accepts renders.
func (m CardMapper) ToCard(g *model.Game) (model.GameCard, error) {
	if g == nil {
		return model.GameCard{}, model.GameRequired()
	}
	if strings.TrimSpace(g.ID) == "" {
		return model.GameCard{}, model.MissingMandatoryField("id")
	}
	if strings.TrimSpace(g.Title) == "" {
		return model.GameCard{}, model.MissingMandatoryField("title")
	}
	if g.PlayDuration == "" {
		return model.GameCard{}, model.MissingMandatoryField("playDuration")
	}

	return model.GameCard{
		ID:           g.ID,
		Title:        g.Title,
		PlayerCount:  m.FormatPlayerCount(g.MinPlayers, g.MaxPlayers),
		PlayDuration: g.PlayDuration,
		HasAwards:    len(g.Awards) > 0,
		IsFavorite:   g.Favorite,
	}, nil
}

// ToCards maps games in order, failing on the first game that cannot be projected.
func (m CardMapper) ToCards(games []model.Game) ([]model.GameCard, error) {
	cards := make([]model.GameCard, 0, len(games))
	for i := range games {
		c, err := m.ToCard(&games[i])
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func (m CardMapper) FormatPlayerCount(min, max int) string {
	if min == max {
		return m.withUnit(fmt.Sprint(min), min)
	}
	s := fmt.Sprintf("%d-%d", min, max)
	if m.TopBucket > 0 && max == m.TopBucket {
		s += "+"
	}
	return m.withUnit(s, max)
}

func (m CardMapper) withUnit(count string, n int) string {
	unit := m.Units
	if n <= 1 || unit == "" {
		unit = m.Unit
	}
	if unit == "" {
		return count
	}
	return count + " " + unit
}
