package dotbraille_test

import (
	"image/color"

	. "github.com/kevin-cantwell/dotbraille"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Label", func() {
	It("sizes the canvas to the text", func() {
		b := Label("Hi").Bounds()
		Expect(b.Dx()).To(Equal(14))
		Expect(b.Dy()).To(Equal(13))

		b = Label("Hello\nyou").Bounds()
		Expect(b.Dx()).To(Equal(35))
		Expect(b.Dy()).To(Equal(26))
	})

	It("draws white glyphs on black", func() {
		img := Label("X")
		var white, black int
		b := img.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				switch color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y {
				case 0xff:
					white++
				case 0:
					black++
				}
			}
		}
		Expect(white).To(BeNumerically(">", 0))
		Expect(black).To(BeNumerically(">", white))
	})

	It("converts to braille", func() {
		cfg := DefaultConfig()
		cfg.Width = 14
		cfg.Scale = "stretch"
		cfg.Dither = false
		g, err := Convert(Label("Hi"), cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Rows).To(BeNumerically(">", 0))
		var dots int
		for _, c := range g.Cells {
			if c != 0 {
				dots++
			}
		}
		Expect(dots).To(BeNumerically(">", 0))
	})
})
