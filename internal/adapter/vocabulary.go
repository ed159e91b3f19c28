package adapter

import (
	_ "embed"
	"fmt"
	"game-library/internal/core/model"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed vocabulary.yaml
var defaultVocabulary []byte

// Vocabulary holds the controlled lists of the admin forms. The core treats
// categories and mechanics as open strings; membership is checked here, at the
// edge, and nowhere else.
type Vocabulary struct {
	Categories         []string `yaml:"categories"`
	Mechanics          []string `yaml:"mechanics"`
	Awards             []string `yaml:"awards"`
	PlayerCountOptions []int    `yaml:"player_count_options"`
}

// LoadVocabulary reads a YAML vocabulary file; an empty path selects the
// built-in lists. Lists missing from the file fall back to the model defaults.
func LoadVocabulary(path string) (*Vocabulary, error) {
	data := defaultVocabulary
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read vocabulary %s: %w", path, err)
		}
		data = b
	}
	var v Vocabulary
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse vocabulary: %w", err)
	}
	if len(v.Categories) == 0 {
		v.Categories = model.DefaultCategories
	}
	if len(v.Mechanics) == 0 {
		v.Mechanics = model.DefaultMechanics
	}
	if len(v.Awards) == 0 {
		v.Awards = model.DefaultAwardNames
	}
	return &v, nil
}

// TopBucket is the largest player-count option, used as the open-ended marker
// of card ranges. Zero when no options are configured.
func (v *Vocabulary) TopBucket() int {
	if len(v.PlayerCountOptions) == 0 {
		return 0
	}
	return slices.Max(v.PlayerCountOptions)
}

// Check returns one INVALID_ENUM_VALUE error per category, mechanic or award
// name of raw that is outside the vocabulary. Shape errors are left to the
// validator.
func (v *Vocabulary) Check(raw model.RawGame) []*model.Error {
	var errs []*model.Error
	check := func(field string, allowed []string) {
		items, _ := raw[field].([]any)
		for _, it := range items {
			s, ok := it.(string)
			if ok && s != "" && !slices.Contains(allowed, s) {
				errs = append(errs, model.InvalidEnumValue(field+"[]", s))
			}
		}
	}
	check("categories", v.Categories)
	check("mechanics", v.Mechanics)

	awards, _ := raw["awards"].([]any)
	for _, a := range awards {
		obj, _ := a.(map[string]any)
		if name, ok := obj["name"].(string); ok && name != "" && !slices.Contains(v.Awards, name) {
			errs = append(errs, model.InvalidEnumValue("awards[].name", name))
		}
	}
	return errs
}
