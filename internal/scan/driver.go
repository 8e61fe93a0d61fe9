// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scan

import (
	"math"
	"sort"

	"github.com/gogpu/gridburn/internal/grid"
)

// ScanPolygon runs the full per-polygon pipeline: sub-grid derivation,
// ring walking over every ring, the winding ledger, and the row sweep
// emitter. It returns no error for a polygon whose bounding box misses
// the grid entirely (it simply contributes nothing), matching §4.6.
func ScanPolygon(rings []RingInput, full grid.Grid, polyID int) (runs []Run, edges []Edge) {
	if len(rings) == 0 {
		return nil, nil
	}

	bbox := ringsBoundingBox(rings)
	clipped := bbox.Intersection(full.Extent)
	if !full.Extent.Intersects(bbox) || clipped.IsEmpty() {
		return nil, nil
	}

	sub, rowOff, colOff := full.ShrinkToFit(clipped)
	if sub.Nrows <= 0 || sub.Ncols <= 0 {
		return nil, nil
	}
	infinite := grid.MakeInfinite(sub)

	// Each ring is walked into its own cells map so a cell's coverage
	// fraction is always computed from one ring's traversals alone.
	// An exterior ring and a hole sharing a cell must contribute two
	// independent signed fractions (+frac, -frac per §4.2/§4.3), not
	// one combined magnitude from a merged traversal set.
	totals := make(map[cellKey]*cellTotal)
	for _, ring := range rings {
		if len(ring.Coords) < 4 {
			continue
		}
		sign := 1.0
		if ring.Hole {
			sign = -1.0
		}
		cells := make(map[cellKey]*CellRecord)
		walkRing(ring, infinite, sign, cells)

		for key, rec := range cells {
			t, ok := totals[key]
			if !ok {
				t = &cellTotal{}
				totals[key] = t
			}
			t.coverage += sign * cellCoverage(rec.Box, rec.Traversals)
			t.winding += rec.WindingSum
		}
	}

	rowData := make(map[int][]boundaryCell)
	for key, t := range totals {
		// Padding rows (infinite row 0 and sub.Nrows+1) fall entirely
		// outside this polygon's real sub-grid rows; they exist only
		// so the walker had an addressable cell to cross into, and
		// carry no row of their own to sweep.
		if key.row < 1 || key.row > sub.Nrows {
			continue
		}
		// A cell touched only along a wall or at a corner carries
		// neither coverage nor winding; it is not a boundary cell, and
		// the row sweep fills it from the winding count like any other.
		if math.Abs(t.coverage) <= tau && t.winding == 0 {
			continue
		}
		fullRow := (key.row - 1) + rowOff
		fullCol := (key.col - 1) + colOff

		coverage := 0.0
		if key.col >= 1 && key.col <= sub.Ncols {
			coverage = clamp01(t.coverage)
		}
		rowData[fullRow] = append(rowData[fullRow], boundaryCell{
			col:      fullCol,
			coverage: coverage,
			winding:  t.winding,
		})
	}

	rows := make([]int, 0, len(rowData))
	for row := range rowData {
		rows = append(rows, row)
	}
	sort.Ints(rows)

	// Runs and edges are emitted row-major (§5): rows ascending, and
	// within each row emitRow already walks columns ascending.
	for _, row := range rows {
		rowRuns, rowEdges := emitRow(row, rowData[row], polyID)
		runs = append(runs, rowRuns...)
		edges = append(edges, rowEdges...)
	}
	return runs, edges
}

// cellTotal accumulates one grid cell's combined signed coverage and
// winding contributions across every ring that touched it.
type cellTotal struct {
	coverage float64
	winding  float64
}

// ringsBoundingBox returns the union of every ring's coordinate
// bounding box.
func ringsBoundingBox(rings []RingInput) grid.Box {
	box := grid.EmptyBox()
	for _, ring := range rings {
		for _, c := range ring.Coords {
			box = box.Expand(grid.Box{Xmin: c.X, Ymin: c.Y, Xmax: c.X, Ymax: c.Y})
		}
	}
	return box
}
