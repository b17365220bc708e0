package render

import "image/color"

// Colors names every color render.Draw paints with. State colors fill a
// cell's interior; Border outlines its right and bottom edges; Path
// overrides the interior fill for cells on a search path.
type Colors struct {
	Passable color.NRGBA
	Blocked  color.NRGBA
	Mixed    color.NRGBA
	Border   color.NRGBA
	Path     color.NRGBA
}

// DefaultColors mirrors the reference renderer's palette: green passable,
// red blocked, gray mixed, black borders, blue path highlight.
func DefaultColors() Colors {
	return Colors{
		Passable: color.NRGBA{R: 0, G: 200, B: 0, A: 255},
		Blocked:  color.NRGBA{R: 200, G: 0, B: 0, A: 255},
		Mixed:    color.NRGBA{R: 150, G: 150, B: 150, A: 255},
		Border:   color.NRGBA{R: 0, G: 0, B: 0, A: 255},
		Path:     color.NRGBA{R: 0, G: 0, B: 220, A: 255},
	}
}
