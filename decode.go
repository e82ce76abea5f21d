package dotbraille

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Stdin is read when Open is given "-".
var Stdin io.Reader = os.Stdin

// Decode reads a gif, jpeg, png, bmp, tiff or webp image from r.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, format, nil
}

// Open decodes the image named by name: "-" for Stdin, an http or https URL,
// or a file path.
func Open(ctx context.Context, name string) (image.Image, error) {
	var r io.Reader
	switch {
	case name == "-":
		r = Stdin
	case strings.HasPrefix(name, "http://"), strings.HasPrefix(name, "https://"):
		body, err := fetch(ctx, name)
		if err != nil {
			return nil, err
		}
		defer body.Close()
		r = body
	default:
		file, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		defer file.Close()
		r = file
	}
	img, _, err := Decode(r)
	return img, err
}

func fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: GET %s: %s", ErrDecode, url, resp.Status)
	}
	return resp.Body, nil
}
