package render

import (
	"image"
	"image/png"
	"io"
)

// Encode writes img to w as PNG.
func Encode(w io.Writer, img *image.NRGBA) error {
	return png.Encode(w, img)
}
