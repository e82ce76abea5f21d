package dotbraille

import (
	"fmt"
	"image"
)

// Size is the dimension of a conversion in braille cells.
type Size struct {
	Cols, Rows int
}

// Dots returns the dot resolution of s: two dots per column, four per row.
func (s Size) Dots() image.Point {
	return image.Pt(s.Cols*2, s.Rows*4)
}

// Empty reports whether s has no cells.
func (s Size) Empty() bool {
	return s.Cols == 0 || s.Rows == 0
}

// Geometry computes the cell grid for a width x height source rendered cols
// cells wide. Rows are derived from the aspect ratio at half height, since a
// terminal cell is roughly twice as tall as it is wide, and rounded down to an
// even count.
//
// A zero width source is an error. Zero cols is not: it yields an empty Size.
func Geometry(width, height, cols int) (Size, error) {
	if width <= 0 {
		return Size{}, fmt.Errorf("%w: source width %d", ErrInvalidGeometry, width)
	}
	if height < 0 {
		return Size{}, fmt.Errorf("%w: source height %d", ErrInvalidGeometry, height)
	}
	if cols < 0 {
		return Size{}, fmt.Errorf("%w: %d columns", ErrInvalidGeometry, cols)
	}
	rows := (height * cols / width / 2) &^ 1
	return Size{Cols: cols, Rows: rows}, nil
}
