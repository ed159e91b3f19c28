package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
)

// RawGame is an unvalidated record of unknown shape, as decoded from JSON or
// submitted by a form. Validate narrows it into a Game.
type RawGame map[string]any

// Clone returns a shallow copy; nested values are never mutated by this package.
func (r RawGame) Clone() RawGame {
	out := make(RawGame, len(r)+1)
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Validate checks raw against the Game schema. Every check runs so the caller
// receives the full error set; an empty result means valid.
func Validate(raw RawGame) []*Error {
	var errs []*Error
	add := func(e *Error) { errs = append(errs, e) }

	for _, f := range []string{"id", "title", "description"} {
		if _, ok := nonEmptyString(raw[f]); !ok {
			add(MissingMandatoryField(f))
		}
	}

	minP, minOK := integer(raw["minPlayers"])
	if !minOK {
		add(MissingMandatoryField("minPlayers"))
	}
	maxP, maxOK := integer(raw["maxPlayers"])
	if !maxOK {
		add(MissingMandatoryField("maxPlayers"))
	}
	if minOK && maxOK && minP > maxP {
		add(InvalidPlayerRange(minP, maxP))
	}

	if s, _ := raw["playDuration"].(string); !ValidPlayDuration(PlayDuration(s)) {
		add(InvalidEnumValue("playDuration", raw["playDuration"]))
	}
	if s, _ := raw["ageRecommendation"].(string); !contains(AgeRanges, AgeRange(s)) {
		add(InvalidEnumValue("ageRecommendation", raw["ageRecommendation"]))
	}
	if s, _ := raw["firstPlayComplexity"].(string); !ValidComplexity(Complexity(s)) {
		add(InvalidEnumValue("firstPlayComplexity", raw["firstPlayComplexity"]))
	}

	for _, f := range []string{"categories", "mechanics"} {
		items, ok := list(raw[f])
		if !ok {
			add(MissingMandatoryField(f))
			continue
		}
		for i, v := range items {
			if _, ok := nonEmptyString(v); !ok {
				add(MissingMandatoryField(fmt.Sprintf("%s[%d]", f, i)))
			}
		}
	}

	if v, present := raw["awards"]; present && v != nil {
		awards, ok := list(v)
		if !ok {
			add(MissingMandatoryField("awards"))
		}
		for i, a := range awards {
			obj, _ := object(a)
			if _, ok := nonEmptyString(obj["name"]); !ok {
				add(MissingMandatoryField(fmt.Sprintf("awards[%d].name", i)))
			}
			if y, present := obj["year"]; present && y != nil {
				if _, ok := integer(y); !ok {
					add(InvalidEnumValue(fmt.Sprintf("awards[%d].year", i), y))
				}
			}
		}
	}

	images, ok := list(raw["images"])
	if !ok || len(images) == 0 {
		add(AtLeastOneImageRequired())
	}
	for i, img := range images {
		obj, _ := object(img)
		if _, ok := nonEmptyString(obj["id"]); !ok {
			add(MissingMandatoryField(fmt.Sprintf("images[%d].id", i)))
		}
		for _, f := range []string{"source", "attribution"} {
			if v, present := obj[f]; present && v != nil {
				if _, ok := v.(string); !ok {
					add(InvalidEnumValue(fmt.Sprintf("images[%d].%s", i, f), v))
				}
			}
		}
	}

	for _, f := range []string{"favorite", "archived"} {
		if _, ok := raw[f].(bool); !ok {
			add(MissingMandatoryField(f))
		}
	}

	return errs
}

// NewGame validates raw and builds a Game from it. raw is not modified and the
// returned value shares no memory with it.
func NewGame(raw RawGame) (Game, error) {
	if errs := Validate(raw); len(errs) > 0 {
		return Game{}, ValidationFailed(errs)
	}

	g := Game{
		ID:                  raw["id"].(string),
		Title:               raw["title"].(string),
		Description:         raw["description"].(string),
		PlayDuration:        PlayDuration(raw["playDuration"].(string)),
		AgeRecommendation:   AgeRange(raw["ageRecommendation"].(string)),
		FirstPlayComplexity: Complexity(raw["firstPlayComplexity"].(string)),
		Favorite:            raw["favorite"].(bool),
		Archived:            raw["archived"].(bool),
		Categories:          []string{},
		Mechanics:           []string{},
		Awards:              []Award{},
	}
	g.MinPlayers, _ = integer(raw["minPlayers"])
	g.MaxPlayers, _ = integer(raw["maxPlayers"])

	cats, _ := list(raw["categories"])
	for _, c := range cats {
		g.Categories = append(g.Categories, c.(string))
	}
	mechs, _ := list(raw["mechanics"])
	for _, m := range mechs {
		g.Mechanics = append(g.Mechanics, m.(string))
	}

	awards, _ := list(raw["awards"])
	for _, a := range awards {
		obj, _ := object(a)
		award := Award{Name: obj["name"].(string)}
		if y, ok := integer(obj["year"]); ok {
			award.Year = &y
		}
		g.Awards = append(g.Awards, award)
	}

	images, _ := list(raw["images"])
	for _, i := range images {
		obj, _ := object(i)
		img := Image{ID: obj["id"].(string)}
		if s, ok := obj["source"].(string); ok {
			img.Source = &s
		}
		if s, ok := obj["attribution"].(string); ok {
			img.Attribution = &s
		}
		g.Images = append(g.Images, img)
	}
	return g, nil
}

// ToRaw converts a Game back into its untyped record form.
func ToRaw(g Game) RawGame {
	b, _ := json.Marshal(g)
	var raw RawGame
	_ = json.Unmarshal(b, &raw)
	return raw
}

var errNotArray = errors.New("catalog payload is not an array")

// DecodeRawGames decodes a JSON array of records. A payload that is not an array
// is an error; an element that is not an object becomes a nil record, which fails
// validation downstream.
func DecodeRawGames(data []byte) ([]RawGame, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	items, ok := v.([]any)
	if !ok {
		return nil, errNotArray
	}
	out := make([]RawGame, 0, len(items))
	for _, it := range items {
		obj, _ := it.(map[string]any)
		out = append(out, RawGame(obj))
	}
	return out, nil
}

// DecodeRawGame decodes a single JSON object record.
func DecodeRawGame(data []byte) (RawGame, error) {
	var raw RawGame
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func nonEmptyString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

// integer accepts the numeric shapes produced by encoding/json and by Go callers,
// and rejects non-finite, fractional or out-of-range values. Counts are bounded
// to int32 so a decoded float never wraps on conversion.
func integer(v any) (int, bool) {
	var f float64
	switch n := v.(type) {
	case int:
		return inInt32(int64(n))
	case int32:
		return int(n), true
	case int64:
		return inInt32(n)
	case float32:
		f = float64(n)
	case float64:
		f = n
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return inInt32(i)
		}
		return 0, false
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

func inInt32(n int64) (int, bool) {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, false
	}
	return int(n), true
}

func list(v any) ([]any, bool) {
	switch l := v.(type) {
	case []any:
		return l, true
	case []string:
		out := make([]any, len(l))
		for i, s := range l {
			out[i] = s
		}
		return out, true
	case []map[string]any:
		out := make([]any, len(l))
		for i, m := range l {
			out[i] = m
		}
		return out, true
	}
	return nil, false
}

func object(v any) (map[string]any, bool) {
	switch o := v.(type) {
	case map[string]any:
		return o, true
	case RawGame:
		return o, true
	}
	return nil, false
}
