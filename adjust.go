package dotbraille

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// Adjust applies the configured gamma, brightness, sharpen, contrast and
// sigmoid adjustments to img, in that order. Adjustments left at their
// defaults are skipped, and img itself is returned when none apply.
func (c Config) Adjust(img image.Image) image.Image {
	if c.Gamma != 1 {
		img = imaging.AdjustGamma(img, c.Gamma)
	}
	if c.Brightness != 0 {
		img = imaging.AdjustBrightness(img, c.Brightness)
	}
	if c.Sharpen != 0 {
		img = imaging.Sharpen(img, c.Sharpen)
	}
	if c.Contrast != 0 {
		img = imaging.AdjustContrast(img, c.Contrast)
	}
	if c.SigmoidFactor != 0 {
		img = imaging.AdjustSigmoid(img, c.SigmoidMidpoint, c.SigmoidFactor)
	}
	return img
}

func (c Config) validateAdjustments() error {
	for name, v := range map[string]float64{
		"gamma":            c.Gamma,
		"brightness":       c.Brightness,
		"contrast":         c.Contrast,
		"sharpen":          c.Sharpen,
		"sigmoid midpoint": c.SigmoidMidpoint,
		"sigmoid factor":   c.SigmoidFactor,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be a finite number", ErrInvalidConfig, name)
		}
	}
	switch {
	case c.Gamma <= 0:
		return fmt.Errorf("%w: gamma must be positive, got %g", ErrInvalidConfig, c.Gamma)
	case c.Brightness < -100 || c.Brightness > 100:
		return fmt.Errorf("%w: brightness must be within [-100, 100], got %g", ErrInvalidConfig, c.Brightness)
	case c.Contrast < -100 || c.Contrast > 100:
		return fmt.Errorf("%w: contrast must be within [-100, 100], got %g", ErrInvalidConfig, c.Contrast)
	case c.Sharpen < 0:
		return fmt.Errorf("%w: sharpen must not be negative, got %g", ErrInvalidConfig, c.Sharpen)
	case c.SigmoidMidpoint < 0 || c.SigmoidMidpoint > 1:
		return fmt.Errorf("%w: sigmoid midpoint must be within [0, 1], got %g", ErrInvalidConfig, c.SigmoidMidpoint)
	}
	return nil
}
