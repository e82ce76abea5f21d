package dotbraille

// DotGrid is a row-major grid of on/off dots, two per cell horizontally and
// four vertically.
type DotGrid struct {
	Width, Height int
	Dots          []bool
}

// NewDotGrid allocates an empty grid of width x height dots.
func NewDotGrid(width, height int) *DotGrid {
	return &DotGrid{
		Width:  width,
		Height: height,
		Dots:   make([]bool, width*height),
	}
}

func (d *DotGrid) At(x, y int) bool {
	return d.Dots[y*d.Width+x]
}

func (d *DotGrid) Set(x, y int, on bool) {
	d.Dots[y*d.Width+x] = on
}
