package dotbraille

import (
	"image"
	"image/color"
)

// A Binarizer turns a resampled image into dots.
type Binarizer interface {
	Binarize(img *image.NRGBA, t Threshold) *DotGrid
}

// ThresholdBinarizer decides every dot from the OkLab lightness of its pixel.
type ThresholdBinarizer struct{}

func (ThresholdBinarizer) Binarize(img *image.NRGBA, t Threshold) *DotGrid {
	return binarize(img, func(px []uint8) bool {
		return t.On(Lightness(nrgba(px)))
	})
}

// DiffusionBinarizer dithers the image in place to black and white first, so
// each pixel's red channel already carries the dot decision.
type DiffusionBinarizer struct {
	Diffuser *Diffuser
}

func (b DiffusionBinarizer) Binarize(img *image.NRGBA, t Threshold) *DotGrid {
	d := b.Diffuser
	if d == nil {
		d = NewDiffuser()
	}
	d.Dither(img, t.Level)
	return binarize(img, func(px []uint8) bool {
		return t.On(float64(px[0]) / 0xff)
	})
}

func binarize(img *image.NRGBA, on func(px []uint8) bool) *DotGrid {
	b := img.Bounds()
	grid := NewDotGrid(b.Dx(), b.Dy())
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			i := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			grid.Set(x, y, on(img.Pix[i:i+4:i+4]))
		}
	}
	return grid
}

func nrgba(px []uint8) color.NRGBA {
	return color.NRGBA{R: px[0], G: px[1], B: px[2], A: px[3]}
}
