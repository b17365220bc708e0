// Package spatial defines the capability surface both the grid and the
// quadtree spatial indices satisfy, and the distance oracle used to turn
// pixel-space separations into step costs and heuristics.
//
// Grid elements are plain integers; quadtree elements are arena indices.
// Both are unified behind the opaque, comparable ElementID so the
// pathfind package never needs to know which concrete index it is
// searching over.
package spatial
