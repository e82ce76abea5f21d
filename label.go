package dotbraille

import (
	"image"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Label draws text in white on a black canvas just large enough to hold it,
// one line of text per line feed.
func Label(text string) image.Image {
	face := basicfont.Face7x13
	lines := strings.Split(text, "\n")

	d := &font.Drawer{Face: face}
	var width int
	for _, line := range lines {
		if w := d.MeasureString(line).Ceil(); w > width {
			width = w
		}
	}
	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()

	img := image.NewGray(image.Rect(0, 0, width, lineHeight*len(lines)))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

	d.Dst = img
	d.Src = image.White
	for i, line := range lines {
		d.Dot = fixed.P(0, i*lineHeight+metrics.Ascent.Ceil())
		d.DrawString(line)
	}
	return img
}
