package dotbraille

import (
	"fmt"
	"io/ioutil"
	"math"

	yaml "gopkg.in/yaml.v2"
)

// Config holds the parameters of a conversion. The zero value is not useful;
// start from DefaultConfig.
type Config struct {
	// Width is the number of braille columns of the output.
	Width int `yaml:"width"`
	// Threshold is the OkLab lightness at which a dot is drawn.
	Threshold float64 `yaml:"threshold"`
	// Invert draws dots for dark pixels instead of light ones.
	Invert bool `yaml:"invert"`
	// Dither enables error diffusion before thresholding.
	Dither bool `yaml:"dither"`

	Filter    string  `yaml:"filter"`    // nearest or linear
	Scale     string  `yaml:"scale"`     // fill or stretch
	Diffusion string  `yaml:"diffusion"` // kernel name, see Kernels
	Strength  float32 `yaml:"strength"`  // diffusion strength, 1 is full, 0 is none

	// Adjustments applied to the source before resampling. The defaults leave
	// the image untouched.
	Gamma           float64 `yaml:"gamma"`            // 1 is the original, below 1 darkens
	Brightness      float64 `yaml:"brightness"`       // -100 to 100
	Contrast        float64 `yaml:"contrast"`         // -100 to 100
	Sharpen         float64 `yaml:"sharpen"`          // sigma, 0 is off
	SigmoidMidpoint float64 `yaml:"sigmoid_midpoint"` // 0 to 1
	SigmoidFactor   float64 `yaml:"sigmoid_factor"`   // 0 is off
}

// DefaultConfig is 60 columns at threshold 0.5 with Floyd-Steinberg dithering.
func DefaultConfig() Config {
	return Config{
		Width:     60,
		Threshold: 0.5,
		Dither:    true,
		Filter:    Nearest.String(),
		Scale:     "fill",
		Diffusion: DefaultKernel,
		Strength:  1,

		Gamma:           1,
		SigmoidMidpoint: 0.5,
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Keys missing from the file
// keep their defaults and unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks every field and reports the first problem.
func (c Config) Validate() error {
	if c.Width < 0 {
		return fmt.Errorf("%w: width must not be negative, got %d", ErrInvalidConfig, c.Width)
	}
	if math.IsNaN(c.Threshold) || math.IsInf(c.Threshold, 0) {
		return fmt.Errorf("%w: threshold must be a finite number", ErrInvalidConfig)
	}
	if c.Strength < 0 {
		return fmt.Errorf("%w: strength must not be negative, got %g", ErrInvalidConfig, c.Strength)
	}
	if err := c.validateAdjustments(); err != nil {
		return err
	}
	if _, err := c.scaler(); err != nil {
		return err
	}
	_, err := Kernel(c.Diffusion)
	return err
}

func (c Config) threshold() Threshold {
	return Threshold{Level: c.Threshold, Invert: c.Invert}
}

func (c Config) scaler() (Scaler, error) {
	f, err := ParseFilter(c.Filter)
	if err != nil {
		return nil, err
	}
	return NewScaler(c.Scale, f)
}

func (c Config) binarizer() (Binarizer, error) {
	if !c.Dither {
		return ThresholdBinarizer{}, nil
	}
	m, err := Kernel(c.Diffusion)
	if err != nil {
		return nil, err
	}
	return DiffusionBinarizer{Diffuser: &Diffuser{Matrix: m, Strength: c.Strength}}, nil
}
