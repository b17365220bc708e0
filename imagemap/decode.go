package imagemap

import (
	"bufio"
	"image"
	_ "image/png" // register PNG decoding with image.Decode
	"io"

	"golang.org/x/image/bmp"

	"github.com/quadpath/quadpath/cell"
)

func init() {
	// register BMP decoding with image.Decode, the way the reference
	// image tooling in the pack registers its own side formats.
	image.RegisterFormat("bmp", "BM", bmp.Decode, bmp.DecodeConfig)
}

// Decode reads an occupancy map image (BMP or PNG) from r and reduces it
// to a cell.Matrix by sampling each pixel's RGB channels and discarding
// alpha: the maps this system consumes are opaque two- or three-color
// occupancy grids.
func Decode(r io.Reader) (cell.Matrix, error) {
	img, _, err := image.Decode(bufio.NewReader(r))
	if err != nil {
		return nil, ErrUnsupportedFormat
	}
	return toMatrix(img), nil
}

func toMatrix(img image.Image) cell.Matrix {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	m := make(cell.Matrix, h)
	for row := 0; row < h; row++ {
		m[row] = make([]cell.RGB, w)
		for col := 0; col < w; col++ {
			r, g, bl, _ := img.At(b.Min.X+col, b.Min.Y+row).RGBA()
			m[row][col] = cell.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8)}
		}
	}
	return m
}
