// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package grid implements the axis-aligned cell layout and low-level
// geometric primitives (boxes, sides, boundary crossings) that the
// scanline sweep is built on. It has no knowledge of polygons or
// winding; it only answers questions about rectangles and points.
package grid

// Coordinate is a planar point.
type Coordinate struct {
	X, Y float64
}

// Equal reports whether c and other are exactly the same point.
// The walker relies on exact equality (not tolerance-based) to detect
// closed rings and repeated vertices, matching how the coordinate
// sequence is produced by the geometry source.
func (c Coordinate) Equal(other Coordinate) bool {
	return c.X == other.X && c.Y == other.Y
}
