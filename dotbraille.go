/*
Package dotbraille renders images as unicode braille symbols.

Any 2x4 pixel area can be represented by one of unicode's 256 braille
symbols (https://en.wikipedia.org/wiki/Braille_Patterns). An image is resampled
so that it is exactly Width symbols wide, every pixel is reduced to a dot by
comparing its OkLab lightness with a threshold, optionally after Floyd-Steinberg
error diffusion, and each 2x4 block of dots is packed into a symbol.

	img, err := dotbraille.Open(ctx, "saturn.png")
	if err != nil {
		return err
	}
	return dotbraille.NewEncoder(os.Stdout, dotbraille.WithColumns(80)).Encode(img)
*/
package dotbraille

import (
	"fmt"
	"image"
	"io"
)

// Convert renders img into a grid of braille cells. Nothing is returned if any
// stage fails.
func Convert(img image.Image, cfg Config) (*CellGrid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s, err := cfg.scaler()
	if err != nil {
		return nil, err
	}
	b, err := cfg.binarizer()
	if err != nil {
		return nil, err
	}
	return convert(img, cfg, s, b)
}

func convert(img image.Image, cfg Config, s Scaler, b Binarizer) (*CellGrid, error) {
	bounds := img.Bounds()
	size, err := Geometry(bounds.Dx(), bounds.Dy(), cfg.Width)
	if err != nil {
		return nil, err
	}
	if size.Empty() {
		return &CellGrid{Cols: size.Cols, Rows: size.Rows}, nil
	}
	dots := size.Dots()
	scaled := s.Scale(cfg.Adjust(img), dots.X, dots.Y)
	if got := scaled.Bounds().Size(); got != dots {
		return nil, fmt.Errorf("%w: scaled to %v, want %v", ErrInvalidGeometry, got, dots)
	}
	return Pack(b.Binarize(scaled, cfg.threshold())), nil
}

// Option configures an Encoder.
type Option func(enc *Encoder)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(enc *Encoder) {
		enc.cfg = cfg
	}
}

// WithColumns sets the output width in braille symbols.
func WithColumns(cols int) Option {
	return func(enc *Encoder) {
		enc.cfg.Width = cols
	}
}

// WithThreshold sets the lightness threshold.
func WithThreshold(level float64) Option {
	return func(enc *Encoder) {
		enc.cfg.Threshold = level
	}
}

// If used, dots mark dark pixels instead of light ones.
func WithInvertedColors() Option {
	return func(enc *Encoder) {
		enc.cfg.Invert = true
	}
}

// WithoutDithering thresholds every pixel on its own.
func WithoutDithering() Option {
	return func(enc *Encoder) {
		enc.cfg.Dither = false
	}
}

// WithDiffusion dithers with d instead of the configured kernel.
func WithDiffusion(d *Diffuser) Option {
	return func(enc *Encoder) {
		enc.cfg.Dither = true
		enc.binarizer = DiffusionBinarizer{Diffuser: d}
	}
}

// WithScaler resamples with s instead of the configured scale mode.
func WithScaler(s Scaler) Option {
	return func(enc *Encoder) {
		enc.scaler = s
	}
}

// Encoder writes images to an io.Writer as lines of braille symbols.
type Encoder struct {
	w         io.Writer
	cfg       Config
	scaler    Scaler
	binarizer Binarizer
}

// NewEncoder returns an Encoder using DefaultConfig modified by opts.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	enc := Encoder{
		w:   w,
		cfg: DefaultConfig(),
	}
	for _, opt := range opts {
		opt(&enc)
	}
	return &enc
}

// Encode converts img completely and then writes one line per row of
// symbols. If the conversion fails nothing is written.
func (enc *Encoder) Encode(img image.Image) error {
	if err := enc.cfg.Validate(); err != nil {
		return err
	}
	var err error
	s := enc.scaler
	if s == nil {
		if s, err = enc.cfg.scaler(); err != nil {
			return err
		}
	}
	b := enc.binarizer
	if b == nil || !enc.cfg.Dither {
		if b, err = enc.cfg.binarizer(); err != nil {
			return err
		}
	}
	grid, err := convert(img, enc.cfg, s, b)
	if err != nil {
		return err
	}
	_, err = grid.WriteTo(enc.w)
	return err
}

// Encode writes img to w using DefaultConfig.
func Encode(w io.Writer, img image.Image) error {
	return NewEncoder(w).Encode(img)
}
