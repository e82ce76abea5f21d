package dotbraille_test

import (
	. "github.com/kevin-cantwell/dotbraille"

	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Cell", func() {
	table.DescribeTable("sets the braille bit for each dot",
		func(x, y int, bit uint) {
			var c Cell
			c.Set(x, y)
			Expect(c).To(Equal(Cell(1 << bit)))
			Expect(c.IsSet(x, y)).To(BeTrue())
		},
		table.Entry("dot 1", 0, 0, uint(0)),
		table.Entry("dot 4", 1, 0, uint(3)),
		table.Entry("dot 2", 0, 1, uint(1)),
		table.Entry("dot 5", 1, 1, uint(4)),
		table.Entry("dot 3", 0, 2, uint(2)),
		table.Entry("dot 6", 1, 2, uint(5)),
		table.Entry("dot 7", 0, 3, uint(6)),
		table.Entry("dot 8", 1, 3, uint(7)),
	)

	It("renders codepoints from U+2800", func() {
		Expect(Cell(0b00000000).Rune()).To(Equal('⠀'))
		Expect(Cell(0b00000001).Rune()).To(Equal('⠁'))
		Expect(Cell(0b01000000).Rune()).To(Equal('⡀'))
		Expect(Cell(0xff).String()).To(Equal("⣿"))
	})
})

var _ = Describe("Pack", func() {
	It("folds 2x4 blocks of dots into cells", func() {
		d := NewDotGrid(4, 4)
		d.Set(0, 0, true) // cell 0, dot 1
		d.Set(1, 3, true) // cell 0, dot 8
		d.Set(2, 1, true) // cell 1, dot 2
		d.Set(3, 2, true) // cell 1, dot 6

		g := Pack(d)
		Expect(g.Cols).To(Equal(2))
		Expect(g.Rows).To(Equal(1))
		Expect(g.At(0, 0)).To(Equal(Cell(1<<0 | 1<<7)))
		Expect(g.At(1, 0)).To(Equal(Cell(1<<1 | 1<<5)))
	})

	It("leaves cells without dots blank", func() {
		g := Pack(NewDotGrid(6, 8))
		Expect(g.Cells).To(HaveLen(6))
		for _, c := range g.Cells {
			Expect(c).To(BeZero())
		}
		Expect(g.Lines()).To(Equal([]string{"⠀⠀⠀", "⠀⠀⠀"}))
	})

	It("pads partial blocks with blank dots", func() {
		d := NewDotGrid(3, 5)
		for i := range d.Dots {
			d.Dots[i] = true
		}

		g := Pack(d)
		Expect(g.Cols).To(Equal(2))
		Expect(g.Rows).To(Equal(2))
		Expect(g.At(0, 0)).To(Equal(Cell(0xff)))
		Expect(g.At(1, 0)).To(Equal(Cell(1<<0 | 1<<1 | 1<<2 | 1<<6)))
		Expect(g.At(0, 1)).To(Equal(Cell(1<<0 | 1<<3)))
		Expect(g.At(1, 1)).To(Equal(Cell(1 << 0)))
		Expect(g.Lines()).To(Equal([]string{"⣿⡇", "⠉⠁"}))
	})
})
