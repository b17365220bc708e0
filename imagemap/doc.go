// Package imagemap decodes an occupancy map image (BMP or PNG) into a
// cell.Matrix, the pixel matrix the cell package's classifier consumes.
package imagemap
