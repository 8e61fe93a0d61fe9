// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package scan implements the scanline sweep: the ring walker, coverage
// kernel, winding ledger, row sweep emitter, and per-polygon driver. It
// operates on plain ring coordinate data; geometry-source decomposition
// lives one layer up, in the gridburn package, to avoid this package
// depending on the GeometryProvider interface it is consumed through.
package scan

import "github.com/gogpu/gridburn/internal/grid"

// RingInput is one ring of a polygon, already extracted from the
// geometry source.
type RingInput struct {
	Coords []grid.Coordinate
	CCW    bool
	Hole   bool
}

// Traversal is one visit of a ring to a single grid cell: the ordered
// coordinate sequence from entry to exit, inclusive.
type Traversal struct {
	Coords    []grid.Coordinate
	EntrySide grid.Side
	ExitSide  grid.Side
}

// closed reports whether the traversal's coordinates form a closed
// ring with at least 3 unique vertices.
func (t Traversal) closed() bool {
	if len(t.Coords) < 4 {
		return false
	}
	return t.Coords[0].Equal(t.Coords[len(t.Coords)-1])
}

// valid reports whether the traversal carries enough information for
// the coverage kernel: either entry and exit are both set and it spans
// more than one coordinate, or it has no entry (ring began here) and
// closes on itself.
func (t Traversal) valid() bool {
	if t.EntrySide == grid.SideNone {
		return t.closed()
	}
	return t.ExitSide != grid.SideNone && len(t.Coords) > 1
}

// CellRecord accrues every traversal the walker recorded for one
// sub-grid cell, plus the running signed winding contribution of those
// traversals.
type CellRecord struct {
	Box        grid.Box
	Traversals []Traversal
	WindingSum float64
}

// Run is an emitted, fully-covered interior span within one grid row.
// Row and column indices are 1-based, matching the public contract.
type Run struct {
	Row, ColStart, ColEnd int
	PolyID                int
}

// Edge is an emitted single cell with fractional coverage.
type Edge struct {
	Row, Col int
	Weight   float64
	PolyID   int
}
