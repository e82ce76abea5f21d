package dotbraille

// Cell is an 8 dot braille pattern. Dots are addressed in x,y coordinates:
//   +----------+
//   |(0,0)(1,0)|
//   |(0,1)(1,1)|
//   |(0,2)(1,2)|
//   |(0,3)(1,3)|
//   +----------+
// and each one owns a bit of the cell value according to its braille number:
//   +------+
//   |(1)(4)|
//   |(2)(5)|
//   |(3)(6)|
//   |(7)(8)|
//   +------+
// See https://en.wikipedia.org/wiki/Braille_Patterns#Identifying.2C_naming_and_ordering)
type Cell uint8

// brailleBase is the blank braille pattern, U+2800.
const brailleBase = '⠀'

// brailleBits maps a row-major dot index within a cell (y*2 + x) to the bit it
// sets in the cell value.
var brailleBits = [8]uint{0, 3, 1, 4, 2, 5, 6, 7}

// Set turns on the dot at x (0-1), y (0-3) within the cell.
func (c *Cell) Set(x, y int) {
	*c |= 1 << brailleBits[y*2+x]
}

// IsSet reports whether the dot at x, y is on.
func (c Cell) IsSet(x, y int) bool {
	return c&(1<<brailleBits[y*2+x]) != 0
}

// Rune returns the unicode symbol for the cell.
func (c Cell) Rune() rune {
	return brailleBase + rune(c)
}

// String returns a unicode braille character. One of:
//  ⠀⠁⠂⠃⠄⠅⠆⠇⠈⠉⠊⠋⠌⠍⠎⠏⠐⠑⠒⠓⠔⠕⠖⠗⠘⠙⠚⠛⠜⠝⠞⠟⠠⠡⠢⠣⠤⠥⠦⠧⠨⠩⠪⠫⠬⠭⠮⠯⠰⠱⠲⠳⠴⠵⠶⠷⠸⠹⠺⠻⠼⠽⠾⠿⡀⡁⡂⡃⡄⡅⡆⡇⡈⡉⡊⡋⡌⡍⡎⡏⡐⡑⡒⡓⡔⡕⡖⡗⡘⡙⡚⡛⡜⡝⡞⡟⡠⡡⡢⡣⡤⡥⡦⡧⡨⡩⡪⡫⡬⡭⡮⡯⡰⡱⡲⡳⡴⡵⡶⡷⡸⡹⡺⡻⡼⡽⡾⡿⢀⢁⢂⢃⢄⢅⢆⢇⢈⢉⢊⢋⢌⢍⢎⢏⢐⢑⢒⢓⢔⢕⢖⢗⢘⢙⢚⢛⢜⢝⢞⢟⢠⢡⢢⢣⢤⢥⢦⢧⢨⢩⢪⢫⢬⢭⢮⢯⢰⢱⢲⢳⢴⢵⢶⢷⢸⢹⢺⢻⢼⢽⢾⢿⣀⣁⣂⣃⣄⣅⣆⣇⣈⣉⣊⣋⣌⣍⣎⣏⣐⣑⣒⣓⣔⣕⣖⣗⣘⣙⣚⣛⣜⣝⣞⣟⣠⣡⣢⣣⣤⣥⣦⣧⣨⣩⣪⣫⣬⣭⣮⣯⣰⣱⣲⣳⣴⣵⣶⣷⣸⣹⣺⣻⣼⣽⣾⣿
func (c Cell) String() string {
	return string(c.Rune())
}

// CellGrid is a row-major grid of braille cells.
type CellGrid struct {
	Cols, Rows int
	Cells      []Cell
}

// At returns the cell in column col of row row.
func (g *CellGrid) At(col, row int) Cell {
	return g.Cells[row*g.Cols+col]
}

// Pack folds every 2x4 block of dots into one braille cell. A grid whose
// dimensions are not multiples of 2 and 4 gets an extra column or row of
// cells, with the dots beyond its edge left off.
func Pack(d *DotGrid) *CellGrid {
	cols, rows := (d.Width+1)/2, (d.Height+3)/4
	g := &CellGrid{
		Cols:  cols,
		Rows:  rows,
		Cells: make([]Cell, cols*rows),
	}
	for py := 0; py < d.Height; py++ {
		for px := 0; px < d.Width; px++ {
			if d.At(px, py) {
				g.Cells[(py/4)*cols+px/2].Set(px%2, py%4)
			}
		}
	}
	return g
}
