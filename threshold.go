package dotbraille

// IsDotOn decides whether a dot is drawn for the given lightness. Normally a
// dot marks a pixel at least as light as threshold; inverted, a pixel at most
// as light. A pixel exactly at threshold is always drawn.
func IsDotOn(lightness, threshold float64, invert bool) bool {
	if invert {
		return lightness <= threshold
	}
	return lightness >= threshold
}

// Threshold is the dot policy applied to every pixel of a conversion.
type Threshold struct {
	Level  float64
	Invert bool
}

func (t Threshold) On(lightness float64) bool {
	return IsDotOn(lightness, t.Level, t.Invert)
}
