// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scan

import "github.com/gogpu/gridburn/internal/grid"

// cellKey addresses a CellRecord by its infinite-extent (row, col).
type cellKey struct{ row, col int }

// walkRing traces one ring's coordinates through the infinite sub-grid,
// recording a Traversal into cells for every cell the ring touches.
// sign is +1 for an exterior ring, -1 for a hole; it scales the
// winding contribution recorded against each traversal.
//
// The ring is normalised to CCW order before walking; holes and
// exteriors alike are walked CCW, with sign carrying the hole/exterior
// distinction into the coverage and winding math instead.
func walkRing(ring RingInput, sub grid.Infinite, sign float64, cells map[cellKey]*CellRecord) {
	coords := ring.Coords
	if len(coords) < 2 {
		return
	}
	if !ring.CCW {
		coords = reversed(coords)
	}

	// work is a growable copy: the cyclic-requeue rule (design note,
	// §9) appends extra coordinates to its tail mid-walk.
	work := make([]grid.Coordinate, len(coords))
	copy(work, coords)

	row := sub.Row(work[0].Y)
	col := sub.Column(work[0].X)
	box := sub.Cell(row, col)

	record := func(row, col int, t Traversal) {
		key := cellKey{row, col}
		rec, ok := cells[key]
		if !ok {
			rec = &CellRecord{Box: sub.Cell(row, col)}
			cells[key] = rec
		}
		rec.Traversals = append(rec.Traversals, t)
		rec.WindingSum += windingDelta(rec.Box, t) * sign
	}

	entrySide := grid.SideNone
	if grid.Locate(box, work[0]) == grid.LocationBoundary {
		entrySide = grid.SideOf(box, work[0])
	}
	traversal := Traversal{Coords: []grid.Coordinate{work[0]}, EntrySide: entrySide}

	// firstOpen tracks whether the in-progress traversal is the ring's
	// very first (started strictly inside its cell, so it has no entry
	// side yet and cannot be finalised until the ring returns here).
	firstOpen := entrySide == grid.SideNone

	i := 1
	for i < len(work) {
		next := work[i]
		loc := grid.Locate(box, next)
		if loc != grid.LocationOutside {
			traversal.Coords = append(traversal.Coords, next)
			i++
			continue
		}

		crossing := grid.Cross(box, work[i-1], next)
		traversal.Coords = append(traversal.Coords, crossing.Point)
		traversal.ExitSide = crossing.Side

		if firstOpen {
			// Defer: this partial traversal has no valid entry side and
			// does not close on itself here. Re-queue its coordinates
			// after the first (the ring's closing coordinate repeats
			// it), up to and including the crossing point, so the walk
			// naturally produces one continuous, valid traversal for
			// this cell on the later visit, ending on the boundary.
			work = append(work, traversal.Coords[1:]...)
			firstOpen = false
		} else {
			record(row, col, traversal)
		}

		dr, dc := crossing.Side.Delta()
		row, col = row+dr, col+dc
		box = sub.Cell(row, col)
		traversal = Traversal{Coords: []grid.Coordinate{crossing.Point}, EntrySide: grid.SideOf(box, crossing.Point)}
	}

	if traversal.EntrySide == grid.SideNone && traversal.closed() {
		record(row, col, traversal)
		return
	}

	last := traversal.Coords[len(traversal.Coords)-1]
	traversal.ExitSide = grid.SideOf(box, last)
	record(row, col, traversal)
}

func reversed(coords []grid.Coordinate) []grid.Coordinate {
	out := make([]grid.Coordinate, len(coords))
	for i, c := range coords {
		out[len(coords)-1-i] = c
	}
	return out
}
