package dotbraille

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// Filter selects the resampling kernel used when scaling to the dot grid.
type Filter int

const (
	// Nearest picks the closest source pixel. Fast, and keeps hard edges.
	Nearest Filter = iota
	// Linear is a triangle filter.
	Linear
)

func (f Filter) String() string {
	switch f {
	case Nearest:
		return "nearest"
	case Linear:
		return "linear"
	}
	return fmt.Sprintf("Filter(%d)", int(f))
}

// ParseFilter accepts the names returned by Filter.String.
func ParseFilter(name string) (Filter, error) {
	switch name {
	case "", "nearest":
		return Nearest, nil
	case "linear":
		return Linear, nil
	}
	return Nearest, fmt.Errorf("%w: unknown filter %q", ErrInvalidConfig, name)
}

// A Scaler resamples img to exactly width x height pixels.
type Scaler interface {
	Scale(img image.Image, width, height int) *image.NRGBA
}

// FillScaler crops img around its center to the target aspect ratio and then
// resizes it, like a cover fit. It is the default Scaler.
type FillScaler struct {
	Filter Filter
}

func (s FillScaler) Scale(img image.Image, width, height int) *image.NRGBA {
	if width <= 0 || height <= 0 {
		return emptyNRGBA(width, height)
	}
	filter := imaging.NearestNeighbor
	if s.Filter == Linear {
		filter = imaging.Linear
	}
	return imaging.Fill(img, width, height, imaging.Center, filter)
}

// StretchScaler resizes img to the target without preserving its aspect
// ratio.
type StretchScaler struct {
	Filter Filter
}

func (s StretchScaler) Scale(img image.Image, width, height int) *image.NRGBA {
	if width <= 0 || height <= 0 {
		return emptyNRGBA(width, height)
	}
	interp := resize.NearestNeighbor
	if s.Filter == Linear {
		interp = resize.Bilinear
	}
	return imaging.Clone(resize.Resize(uint(width), uint(height), img, interp))
}

// NewScaler returns the Scaler registered under name: "fill" or "stretch".
func NewScaler(name string, f Filter) (Scaler, error) {
	switch name {
	case "", "fill":
		return FillScaler{Filter: f}, nil
	case "stretch":
		return StretchScaler{Filter: f}, nil
	}
	return nil, fmt.Errorf("%w: unknown scale mode %q", ErrInvalidConfig, name)
}

func emptyNRGBA(width, height int) *image.NRGBA {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return image.NewNRGBA(image.Rect(0, 0, width, height))
}
