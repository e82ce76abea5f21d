package dotbraille

import "errors"

var (
	// ErrDecode is returned when the input could not be read or is not a
	// supported image.
	ErrDecode = errors.New("dotbraille: cannot decode image")
	// ErrInvalidGeometry is returned when the source image or the requested
	// width cannot produce a dot grid.
	ErrInvalidGeometry = errors.New("dotbraille: invalid geometry")
	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("dotbraille: invalid config")
)
