package dotbraille_test

import (
	"image"

	. "github.com/kevin-cantwell/dotbraille"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Geometry", func() {
	It("derives an even number of rows from the aspect ratio", func() {
		for w := 1; w <= 24; w++ {
			for h := 0; h <= 48; h++ {
				for c := 1; c <= 12; c++ {
					size, err := Geometry(w, h, c)
					Expect(err).NotTo(HaveOccurred())
					Expect(size.Cols).To(Equal(c))
					Expect(size.Rows).To(Equal((h * c / w / 2) &^ 1))
					Expect(size.Rows % 2).To(BeZero())
					Expect(size.Dots()).To(Equal(image.Pt(2*c, 4*size.Rows)))
				}
			}
		}
	})

	It("matches a typical landscape image", func() {
		size, err := Geometry(640, 480, 60)
		Expect(err).NotTo(HaveOccurred())
		Expect(size).To(Equal(Size{Cols: 60, Rows: 22}))
		Expect(size.Dots()).To(Equal(image.Pt(120, 88)))
	})

	It("rejects a zero width source", func() {
		_, err := Geometry(0, 10, 60)
		Expect(err).To(MatchError(ErrInvalidGeometry))
	})

	It("rejects negative columns", func() {
		_, err := Geometry(10, 10, -1)
		Expect(err).To(MatchError(ErrInvalidGeometry))
	})

	It("yields an empty size for zero columns", func() {
		size, err := Geometry(10, 10, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(size.Empty()).To(BeTrue())
		Expect(size.Dots()).To(Equal(image.Pt(0, 0)))
	})

	It("allows zero rows for wide thin images", func() {
		size, err := Geometry(1000, 10, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(size).To(Equal(Size{Cols: 10, Rows: 0}))
		Expect(size.Empty()).To(BeTrue())
	})
})
