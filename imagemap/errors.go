package imagemap

import "errors"

// ErrUnsupportedFormat is returned when the image decoder cannot identify
// the input as BMP or PNG.
var ErrUnsupportedFormat = errors.New("imagemap: unsupported image format")
