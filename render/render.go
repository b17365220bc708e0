package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/quadpath/quadpath/cell"
	"github.com/quadpath/quadpath/spatial"
)

// Indexer is the subset of spatial.Index capabilities Draw needs, plus
// enumeration of every element the index tiles the map with. grid.Grid
// and quadtree.Quadtree both satisfy it.
type Indexer interface {
	spatial.Index
	Elements() []spatial.ElementID
}

// Draw paints idx's full tiling onto a width x height canvas: each
// element's interior is filled by its state color, its right and bottom
// edges are drawn in Border, and elements present in path are filled with
// Path instead of their state color. path may be nil.
func Draw(idx Indexer, width, height int, path []spatial.ElementID, colors Colors) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, width, height))

	onPath := make(map[spatial.ElementID]bool, len(path))
	for _, id := range path {
		onPath[id] = true
	}

	for _, id := range idx.Elements() {
		box, ok := idx.Box(id)
		if !ok {
			continue
		}
		inner := stateColor(colors, box.State)
		if onPath[id] {
			inner = colors.Path
		}
		fillCell(canvas, box, inner, colors.Border)
	}

	return canvas
}

func stateColor(c Colors, s cell.State) color.NRGBA {
	switch s {
	case cell.Passable:
		return c.Passable
	case cell.Blocked:
		return c.Blocked
	default:
		return c.Mixed
	}
}

// fillCell mirrors the reference renderer's box fill: interior up to the
// last row/column, then border strokes on the right edge and bottom edge,
// matching image.py's image[y:y+h-1, x:x+w-1] / right-column / bottom-row
// assignment order.
func fillCell(canvas *image.NRGBA, box cell.Cell, inner, border color.NRGBA) {
	x1, y1 := box.X+box.W-1, box.Y+box.H-1

	draw.Draw(canvas, image.Rect(box.X, box.Y, x1, y1), image.NewUniform(inner), image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(x1, box.Y, box.X+box.W, box.Y+box.H), image.NewUniform(border), image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(box.X, y1, box.X+box.W, box.Y+box.H), image.NewUniform(border), image.Point{}, draw.Src)
}
