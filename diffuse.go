package dotbraille

import (
	"fmt"
	"image"
	"sort"

	"github.com/makeworld-the-better-one/dither/v2"
)

// Diffusion kernels selectable by name.
var kernels = map[string]dither.ErrorDiffusionMatrix{
	"floyd-steinberg":       dither.FloydSteinberg,
	"false-floyd-steinberg": dither.FalseFloydSteinberg,
	"jarvis-judice-ninke":   dither.JarvisJudiceNinke,
	"stucki":                dither.Stucki,
	"atkinson":              dither.Atkinson,
	"burkes":                dither.Burkes,
	"sierra":                dither.Sierra,
	"two-row-sierra":        dither.TwoRowSierra,
	"sierra-lite":           dither.SierraLite,
}

// DefaultKernel is the name of the kernel used when none is configured.
const DefaultKernel = "floyd-steinberg"

// Kernel looks up a diffusion matrix by name. The empty name is the default.
func Kernel(name string) (dither.ErrorDiffusionMatrix, error) {
	if name == "" {
		name = DefaultKernel
	}
	m, ok := kernels[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown diffusion kernel %q", ErrInvalidConfig, name)
	}
	return m, nil
}

// Kernels lists the known kernel names in sorted order.
func Kernels() []string {
	names := make([]string, 0, len(kernels))
	for name := range kernels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Diffuser binarizes an image with error diffusion. The palette is pure black
// and pure white, and a pixel becomes white when its OkLab lightness reaches
// the threshold level. Quantization error is measured per channel in gamma
// encoded space and spread over unvisited neighbors by Matrix.
type Diffuser struct {
	Matrix dither.ErrorDiffusionMatrix
	// Strength scales the matrix: 1 is full strength, 0 spreads no error and
	// reduces Dither to plain thresholding.
	Strength float32
}

// NewDiffuser returns a full strength Floyd-Steinberg diffuser.
func NewDiffuser() *Diffuser {
	return &Diffuser{Matrix: dither.FloydSteinberg, Strength: 1}
}

// Dither rewrites every pixel of img to black or white in place, in raster
// order.
func (d *Diffuser) Dither(img *image.NRGBA, level float64) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return
	}

	m := d.Matrix
	if m == nil {
		m = dither.FloydSteinberg
	}
	cur := m.CurrentPixel()
	if d.Strength != 0 && d.Strength != 1 {
		m = dither.ErrorDiffusionStrength(m, d.Strength)
	}

	// Working copy of the color channels so that accumulated error is not
	// truncated between visits.
	buf := make([][3]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := img.NRGBAAt(b.Min.X+x, b.Min.Y+y)
			buf[y*w+x] = [3]float64{float64(px.R), float64(px.G), float64(px.B)}
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			old := buf[y*w+x]
			var v float64
			if lightnessOf(old[0], old[1], old[2]) >= level {
				v = 0xff
			}
			i := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			img.Pix[i+0] = uint8(v)
			img.Pix[i+1] = uint8(v)
			img.Pix[i+2] = uint8(v)
			img.Pix[i+3] = 0xff

			if d.Strength == 0 {
				continue
			}
			errs := [3]float64{old[0] - v, old[1] - v, old[2] - v}
			for my, row := range m {
				for mx, weight := range row {
					if weight == 0 || (my == 0 && mx <= cur) {
						continue
					}
					dx, dy := m.Offset(mx, my, cur)
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= w || ny >= h {
						continue
					}
					n := &buf[ny*w+nx]
					for c := range n {
						n[c] = clamp255(n[c] + errs[c]*float64(weight))
					}
				}
			}
		}
	}
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 0xff {
		return 0xff
	}
	return v
}
