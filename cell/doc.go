// Package cell defines the rectangular region primitive shared by the grid
// and quadtree spatial indices: an axis-aligned box carrying a ternary
// occupancy state (passable, blocked, or mixed).
//
// Classification is the only place raw pixels are inspected: Classify scans
// a rectangular slice of an RGB pixel matrix against two reference colors
// and reduces it to one of the three states. Both the grid and the
// quadtree build their cells by calling Classify on successively smaller
// rectangles.
package cell
