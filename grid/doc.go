// Package grid provides a uniform tiling spatial index over a pixel
// occupancy map: the image is partitioned into equal-sized square cells,
// addressable by row/column or by a flat row-major index.
//
// Grid implements spatial.Index: Get resolves a pixel to its containing
// cell, Neighbors enumerates the (up to 8) adjacent passable cells in
// deterministic order N,E,S,W,NW,NE,SE,SW, and Cost/Heuristic measure
// center-to-center distance under a caller-selected spatial.Metric.
//
// Grid is built once from a cell.Matrix and is immutable thereafter;
// concurrent readers need no locking.
package grid
