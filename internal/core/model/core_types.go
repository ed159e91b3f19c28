package model

// All core catalog models live here together for simplicity.

type PlayDuration string

const (
	PlayDurationShort  PlayDuration = "SHORT"
	PlayDurationMedium PlayDuration = "MEDIUM"
	PlayDurationLong   PlayDuration = "LONG"
)

var PlayDurations = []PlayDuration{PlayDurationShort, PlayDurationMedium, PlayDurationLong}

type Complexity string

const (
	ComplexityLow    Complexity = "LOW"
	ComplexityMedium Complexity = "MEDIUM"
	ComplexityHigh   Complexity = "HIGH"
)

var Complexities = []Complexity{ComplexityLow, ComplexityMedium, ComplexityHigh}

type AgeRange string

var AgeRanges = []AgeRange{"3+", "6+", "8+", "10+", "12+", "14+", "16+", "18+"}

// Visibility selects which records a read may see. It governs read access, not
// authorization.
type Visibility string

const (
	Visitor Visibility = "visitor"
	Admin   Visibility = "admin"
)

type Award struct {
	Name string `json:"name"`
	Year *int   `json:"year,omitempty"`
}

type Image struct {
	ID          string  `json:"id"`
	Source      *string `json:"source,omitempty"`
	Attribution *string `json:"attribution,omitempty"`
}

// Game is the canonical catalog entity. JSON field names are the persisted record
// shape and must not change.
//
// Values are treated as immutable: every operation that changes a game returns a
// new value built with Clone.
type Game struct {
	ID                  string       `json:"id"`
	Title               string       `json:"title"`
	Description         string       `json:"description"`
	MinPlayers          int          `json:"minPlayers"`
	MaxPlayers          int          `json:"maxPlayers"`
	PlayDuration        PlayDuration `json:"playDuration"`
	AgeRecommendation   AgeRange     `json:"ageRecommendation"`
	FirstPlayComplexity Complexity   `json:"firstPlayComplexity"`
	Categories          []string     `json:"categories"`
	Mechanics           []string     `json:"mechanics"`
	Awards              []Award      `json:"awards"`
	Images              []Image      `json:"images"`
	Favorite            bool         `json:"favorite"`
	Archived            bool         `json:"archived"`
}

// Clone returns a deep copy so callers can derive a new value without sharing
// slices with the receiver.
func (g Game) Clone() Game {
	g.Categories = append([]string{}, g.Categories...)
	g.Mechanics = append([]string{}, g.Mechanics...)
	awards := make([]Award, len(g.Awards))
	for i, a := range g.Awards {
		if a.Year != nil {
			y := *a.Year
			a.Year = &y
		}
		awards[i] = a
	}
	g.Awards = awards
	images := make([]Image, len(g.Images))
	for i, img := range g.Images {
		img.Source = clonePtr(img.Source)
		img.Attribution = clonePtr(img.Attribution)
		images[i] = img
	}
	g.Images = images
	return g
}

func clonePtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

type PlayerCountFilter struct {
	MinPlayers int `json:"minPlayers"`
	MaxPlayers int `json:"maxPlayers"`
}

type ValuesFilter[T ~string] struct {
	Values []T `json:"values"`
}

// FilterSet is a declarative query. Nil fields impose no constraint.
type FilterSet struct {
	PlayerCount         *PlayerCountFilter          `json:"playerCount,omitempty"`
	PlayDuration        *ValuesFilter[PlayDuration] `json:"playDuration,omitempty"`
	FirstPlayComplexity *ValuesFilter[Complexity]   `json:"firstPlayComplexity,omitempty"`
	Categories          *ValuesFilter[string]       `json:"categories,omitempty"`
	Mechanics           *ValuesFilter[string]       `json:"mechanics,omitempty"`
	HasAwards           bool                        `json:"hasAwards,omitempty"`
	FavoriteOnly        bool                        `json:"favoriteOnly,omitempty"`
}

// IsEmpty reports whether no filter is present.
func (f FilterSet) IsEmpty() bool {
	return f.PlayerCount == nil && f.PlayDuration == nil && f.FirstPlayComplexity == nil &&
		f.Categories == nil && f.Mechanics == nil && !f.HasAwards && !f.FavoriteOnly
}

type SortMode string

const (
	SortNone                    SortMode = ""
	SortPlayDurationAsc         SortMode = "PLAY_DURATION_ASC"
	SortPlayDurationDesc        SortMode = "PLAY_DURATION_DESC"
	SortFirstPlayComplexityAsc  SortMode = "FIRST_PLAY_COMPLEXITY_ASC"
	SortFirstPlayComplexityDesc SortMode = "FIRST_PLAY_COMPLEXITY_DESC"
)

var SortModes = []SortMode{SortPlayDurationAsc, SortPlayDurationDesc, SortFirstPlayComplexityAsc, SortFirstPlayComplexityDesc}

// GameCard is the lossy list-view projection of a Game.
type GameCard struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	PlayerCount  string       `json:"playerCount"`
	PlayDuration PlayDuration `json:"playDuration"`
	HasAwards    bool         `json:"hasAwards"`
	IsFavorite   bool         `json:"isFavorite"`
}

// Query is one catalog read: visibility, filters and sort mode.
type Query struct {
	Visibility Visibility
	Filters    FilterSet
	Sort       SortMode
}

// Default controlled vocabularies. Membership is enforced at the form edge only.
var (
	DefaultCategories = []string{
		"Stratégie", "Famille", "Abstrait", "Ambiance", "Coopératif",
		"Expert", "Petit jeu", "Négociation", "Autre",
	}
	DefaultMechanics = []string{
		"Jet de dés", "Draft", "Placement d'ouvriers", "Pattern Building",
		"Collecte de ressources", "Construction de routes", "Majorité",
		"Gestion de main", "Autre",
	}
	DefaultAwardNames = []string{
		"Spiel des Jahres", "Kennerspiel des Jahres", "As d'Or", "Golden Geek", "Autre",
	}
)

func contains[T comparable](list []T, v T) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

// ValidPlayDuration reports whether d is one of PlayDurations.
func ValidPlayDuration(d PlayDuration) bool { return contains(PlayDurations, d) }

// ValidComplexity reports whether c is one of Complexities.
func ValidComplexity(c Complexity) bool { return contains(Complexities, c) }

// ValidSortMode reports whether m is a supported non-empty sort mode.
func ValidSortMode(m SortMode) bool { return contains(SortModes, m) }

// ImageFile describes an uploaded file; the bytes themselves stay with the
// upload handler.
type ImageFile struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	SizeInBytes int64  `json:"sizeInBytes"`
}

type ImageMetadata struct {
	Source      *string `json:"source,omitempty"`
	Attribution *string `json:"attribution,omitempty"`
}
