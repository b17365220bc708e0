// Package render draws a spatial index (grid or quadtree) and an optional
// search path back onto an image canvas: one filled, bordered rectangle
// per element, with path elements painted in a highlight color.
package render
