package dotbraille_test

import (
	"image/color"

	. "github.com/kevin-cantwell/dotbraille"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Adjust", func() {
	// Plain thresholding of a uniform image gives either all dots or none.
	dots := func(cfg Config, c color.Color) bool {
		cfg.Width = 2
		cfg.Dither = false
		g, err := Convert(uniform(4, 8, c), cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Rows).To(Equal(2))
		for _, cell := range g.Cells {
			Expect(cell).To(Equal(g.Cells[0]))
		}
		return g.Cells[0] == 0xff
	}
	// Just above the 0.5 lightness threshold.
	gray := color.NRGBA{0x70, 0x70, 0x70, 0xff}

	It("returns the image itself at the defaults", func() {
		img := uniform(4, 4, color.White)
		Expect(DefaultConfig().Adjust(img)).To(BeIdenticalTo(img))
		Expect(dots(DefaultConfig(), gray)).To(BeTrue())
	})

	It("darkens with gamma below 1", func() {
		cfg := DefaultConfig()
		cfg.Gamma = 0.5
		Expect(dots(cfg, gray)).To(BeFalse())
	})

	It("shifts brightness", func() {
		cfg := DefaultConfig()
		cfg.Brightness = -100
		Expect(dots(cfg, color.White)).To(BeFalse())
		cfg.Brightness = 100
		Expect(dots(cfg, color.Black)).To(BeTrue())
	})

	It("pushes grays away from the middle with contrast", func() {
		cfg := DefaultConfig()
		cfg.Contrast = 100
		Expect(dots(cfg, gray)).To(BeFalse())
	})

	It("pushes grays away from the midpoint with a sigmoid", func() {
		cfg := DefaultConfig()
		cfg.SigmoidFactor = 10
		Expect(dots(cfg, gray)).To(BeFalse())
	})

	It("sharpens without changing a flat image", func() {
		cfg := DefaultConfig()
		cfg.Sharpen = 1
		img := uniform(4, 4, gray)
		out := cfg.Adjust(img)
		Expect(out).NotTo(BeIdenticalTo(img))
		Expect(out.Bounds()).To(Equal(img.Bounds()))
		Expect(dots(cfg, gray)).To(BeTrue())
	})

	It("rejects out of range values", func() {
		bad := []func(*Config){
			func(c *Config) { c.Gamma = 0 },
			func(c *Config) { c.Brightness = 101 },
			func(c *Config) { c.Contrast = -101 },
			func(c *Config) { c.Sharpen = -1 },
			func(c *Config) { c.SigmoidMidpoint = 1.5 },
		}
		for _, mutate := range bad {
			cfg := DefaultConfig()
			mutate(&cfg)
			Expect(cfg.Validate()).To(MatchError(ErrInvalidConfig))
		}
	})
})
