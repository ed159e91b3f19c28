package core

import (
	"game-library/internal/core/model"
	"regexp"
	"slices"
	"strings"

	"github.com/google/uuid"
)

const DefaultMaxImageBytes = 5 * 1024 * 1024

var SupportedImageTypes = []string{"image/jpeg", "image/png", "image/webp"}

// ImageValidator checks image files before they are attached to a game.
type ImageValidator struct {
	MaxSizeBytes       int64
	RequireAttribution bool
}

func NewImageValidator(maxSizeBytes int64, requireAttribution bool) ImageValidator {
	if maxSizeBytes <= 0 {
		maxSizeBytes = DefaultMaxImageBytes
	}
	return ImageValidator{MaxSizeBytes: maxSizeBytes, RequireAttribution: requireAttribution}
}

// Validate returns the image descriptor for f, or the first failed check.
func (v ImageValidator) Validate(f *model.ImageFile, meta model.ImageMetadata) (model.Image, error) {
	if f == nil {
		return model.Image{}, model.CorruptedImage("missing file")
	}
	if strings.TrimSpace(f.Filename) == "" {
		return model.Image{}, model.CorruptedImage("missing filename")
	}
	if !slices.Contains(SupportedImageTypes, f.ContentType) {
		return model.Image{}, model.UnsupportedImageFormat(f.ContentType)
	}
	max := v.MaxSizeBytes
	if max <= 0 {
		max = DefaultMaxImageBytes
	}
	if f.SizeInBytes > max {
		return model.Image{}, model.ImageTooLarge(f.SizeInBytes, max)
	}
	if f.SizeInBytes < 0 {
		return model.Image{}, model.CorruptedImage("invalid size")
	}
	if v.RequireAttribution && (meta.Attribution == nil || strings.TrimSpace(*meta.Attribution) == "") {
		return model.Image{}, model.MissingAttributionMetadata()
	}

	img := model.Image{ID: ImageID(f.Filename)}
	if meta.Source != nil {
		s := *meta.Source
		img.Source = &s
	}
	if meta.Attribution != nil {
		a := *meta.Attribution
		img.Attribution = &a
	}
	return img, nil
}

var (
	extRe    = regexp.MustCompile(`\.[^.]+$`)
	unsafeRe = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
)

// ImageID derives a stable id from the filename, or a random one when the
// filename has no usable base.
func ImageID(filename string) string {
	base := unsafeRe.ReplaceAllString(extRe.ReplaceAllString(filename, ""), "_")
	if base == "" {
		return "img_" + uuid.NewString()
	}
	return base
}
