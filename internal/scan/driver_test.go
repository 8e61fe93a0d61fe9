// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scan

import (
	"math"
	"testing"

	"github.com/gogpu/gridburn/internal/grid"
)

func ring(hole bool, pts ...[2]float64) RingInput {
	coords := make([]grid.Coordinate, len(pts))
	for i, p := range pts {
		coords[i] = grid.Coordinate{X: p[0], Y: p[1]}
	}
	if !coords[0].Equal(coords[len(coords)-1]) {
		coords = append(coords, coords[0])
	}
	return RingInput{Coords: coords, CCW: true, Hole: hole}
}

func totalArea(runs []Run, edges []Edge, cellArea float64) float64 {
	var area float64
	for _, r := range runs {
		area += float64(r.ColEnd-r.ColStart+1) * cellArea
	}
	for _, e := range edges {
		area += e.Weight * cellArea
	}
	return area
}

func checkInvariants(t *testing.T, runs []Run, edges []Edge, nrows, ncols int) {
	t.Helper()
	for _, e := range edges {
		if !(e.Weight > 0 && e.Weight < 1-tau) {
			t.Errorf("edge %+v weight out of (0,1-tau)", e)
		}
		if e.Row < 1 || e.Row > nrows || e.Col < 1 || e.Col > ncols {
			t.Errorf("edge %+v out of grid bounds", e)
		}
	}
	for _, r := range runs {
		if r.ColStart > r.ColEnd {
			t.Errorf("run %+v has ColStart > ColEnd", r)
		}
		if r.Row < 1 || r.Row > nrows || r.ColStart < 1 || r.ColEnd > ncols {
			t.Errorf("run %+v out of grid bounds", r)
		}
	}
}

func TestUnitSquareOnIntegerGrid(t *testing.T) {
	full := grid.New(grid.Box{Xmin: 0, Ymin: 0, Xmax: 10, Ymax: 10}, 20, 20)
	square := ring(false, [2]float64{1, 1}, [2]float64{9, 1}, [2]float64{9, 9}, [2]float64{1, 9})

	runs, edges := ScanPolygon([]RingInput{square}, full, 1)
	checkInvariants(t, runs, edges, 20, 20)

	if len(edges) != 0 {
		t.Errorf("expected 0 edges for a grid-aligned square, got %d: %+v", len(edges), edges)
	}

	cellArea := full.Dx * full.Dy
	got := totalArea(runs, edges, cellArea)
	want := 64.0 // 8x8 square
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("total covered area = %v, want %v", got, want)
	}

	var cellCount int
	for _, r := range runs {
		cellCount += r.ColEnd - r.ColStart + 1
	}
	if cellCount != 256 {
		t.Errorf("covered cell count = %d, want 256 (16x16)", cellCount)
	}
}

func TestDiagonalTriangleTotalArea(t *testing.T) {
	full := grid.New(grid.Box{Xmin: 0, Ymin: 0, Xmax: 10, Ymax: 10}, 20, 20)
	tri := ring(false, [2]float64{0, 0}, [2]float64{10, 0}, [2]float64{10, 10})

	runs, edges := ScanPolygon([]RingInput{tri}, full, 1)
	checkInvariants(t, runs, edges, 20, 20)

	cellArea := full.Dx * full.Dy
	got := totalArea(runs, edges, cellArea)
	want := 50.0 // half of the 10x10 square
	if math.Abs(got-want) > 1e-3 {
		t.Errorf("total covered area = %v, want ~%v", got, want)
	}
}

func TestDonutFilledByPlug(t *testing.T) {
	full := grid.New(grid.Box{Xmin: 0, Ymin: 0, Xmax: 10, Ymax: 10}, 20, 20)
	outer := ring(false, [2]float64{1, 1}, [2]float64{9, 1}, [2]float64{9, 9}, [2]float64{1, 9})
	hole := ring(true, [2]float64{3, 3}, [2]float64{7, 3}, [2]float64{7, 7}, [2]float64{3, 7})
	plug := ring(false, [2]float64{3, 3}, [2]float64{7, 3}, [2]float64{7, 7}, [2]float64{3, 7})

	donutRuns, donutEdges := ScanPolygon([]RingInput{outer, hole}, full, 1)
	plugRuns, plugEdges := ScanPolygon([]RingInput{plug}, full, 2)
	checkInvariants(t, donutRuns, donutEdges, 20, 20)
	checkInvariants(t, plugRuns, plugEdges, 20, 20)

	cellArea := full.Dx * full.Dy
	got := totalArea(donutRuns, donutEdges, cellArea) + totalArea(plugRuns, plugEdges, cellArea)
	want := 64.0 // union area equals the outer square's area
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("donut+plug total area = %v, want %v", got, want)
	}
}

func TestPolygonExtendsBeyondGrid(t *testing.T) {
	full := grid.New(grid.Box{Xmin: 0, Ymin: 0, Xmax: 10, Ymax: 10}, 10, 10)
	big := ring(false, [2]float64{-1, -1}, [2]float64{11, -1}, [2]float64{11, 11}, [2]float64{-1, 11})

	runs, edges := ScanPolygon([]RingInput{big}, full, 1)
	checkInvariants(t, runs, edges, 10, 10)

	if len(edges) != 0 {
		t.Errorf("expected 0 edges, got %d: %+v", len(edges), edges)
	}
	var cellCount int
	for _, r := range runs {
		cellCount += r.ColEnd - r.ColStart + 1
	}
	if cellCount != 100 {
		t.Errorf("covered cell count = %d, want 100 (the whole grid)", cellCount)
	}
}

// TestSubCellSliver exercises a thin horizontal band straddling a row
// boundary: each touched cell sees a single traversal entering one
// side and exiting the opposite side, asymmetrically covering only
// 0.05 of the cell's height. This pins down the single-traversal
// formula's boundary arc direction (§4.3.1) per-cell, not just in
// aggregate — before the fix, the wrong (CCW) arc complements every
// such fraction to 1-f (~0.95) instead of f (~0.05).
func TestSubCellSliver(t *testing.T) {
	full := grid.New(grid.Box{Xmin: 0, Ymin: 0, Xmax: 10, Ymax: 10}, 10, 10)
	sliver := ring(false, [2]float64{2, 4.95}, [2]float64{8, 4.95}, [2]float64{8, 5.05}, [2]float64{2, 5.05})

	runs, edges := ScanPolygon([]RingInput{sliver}, full, 1)
	checkInvariants(t, runs, edges, 10, 10)

	if len(runs) != 0 {
		t.Errorf("expected no interior runs for a sub-cell sliver, got %+v", runs)
	}
	cellArea := full.Dx * full.Dy
	got := totalArea(runs, edges, cellArea)
	// The sliver's y-extent [4.95, 5.05] straddles the row boundary at
	// y=5.0, so it splits into two 0.05-tall bands, each spanning the
	// same 6 columns (x in [2,8], which is itself grid-aligned).
	want := 2 * 6 * 0.05
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("sliver total area = %v, want %v", got, want)
	}
	for _, e := range edges {
		if e.Row != 5 && e.Row != 6 {
			t.Errorf("edge %+v expected in row 5 or 6", e)
		}
		if e.Weight < 0.03 || e.Weight > 0.07 {
			t.Errorf("edge %+v weight = %v, want ~0.05 (not its complement ~0.95)", e, e.Weight)
		}
	}
}

// TestNonGridAlignedHoleSubtractsArea uses a hole whose boundary does
// not fall on cell walls, so its boundary cells carry genuine
// fractional coverage from the hole ring alone (TestDonutFilledByPlug's
// grid-aligned hole never exercises this: every hole boundary cell
// there has whole-cell coverage, exactly 0 or 1). Without a per-ring signed sum, a hole
// boundary cell wrongly adds a positive fraction to the total instead
// of subtracting one, so the donut would not shrink relative to the
// solo exterior.
func TestNonGridAlignedHoleSubtractsArea(t *testing.T) {
	full := grid.New(grid.Box{Xmin: 0, Ymin: 0, Xmax: 10, Ymax: 10}, 20, 20)
	outer := ring(false, [2]float64{1, 1}, [2]float64{9, 1}, [2]float64{9, 9}, [2]float64{1, 9})
	hole := ring(true, [2]float64{3.2, 3.2}, [2]float64{6.8, 3.2}, [2]float64{6.8, 6.8}, [2]float64{3.2, 6.8})

	soloRuns, soloEdges := ScanPolygon([]RingInput{outer}, full, 1)
	donutRuns, donutEdges := ScanPolygon([]RingInput{outer, hole}, full, 2)
	checkInvariants(t, soloRuns, soloEdges, 20, 20)
	checkInvariants(t, donutRuns, donutEdges, 20, 20)

	cellArea := full.Dx * full.Dy
	soloArea := totalArea(soloRuns, soloEdges, cellArea)
	donutArea := totalArea(donutRuns, donutEdges, cellArea)

	holeArea := 3.6 * 3.6
	want := soloArea - holeArea
	if math.Abs(donutArea-want) > 1.0 {
		t.Errorf("donut area with non-grid-aligned hole = %v, want ~%v (solo %v minus hole %v)", donutArea, want, soloArea, holeArea)
	}
	if donutArea >= soloArea-holeArea/2 {
		t.Errorf("donut area %v does not reflect hole subtraction from solo exterior %v (hole area %v)", donutArea, soloArea, holeArea)
	}
}

func TestAdjacentRectanglesShareMidCellEdge(t *testing.T) {
	full := grid.New(grid.Box{Xmin: 0, Ymin: 0, Xmax: 10, Ymax: 10}, 12, 12)
	left := ring(false, [2]float64{0, 0}, [2]float64{5, 0}, [2]float64{5, 10}, [2]float64{0, 10})
	right := ring(false, [2]float64{5, 0}, [2]float64{10, 0}, [2]float64{10, 10}, [2]float64{5, 10})

	leftRuns, leftEdges := ScanPolygon([]RingInput{left}, full, 1)
	rightRuns, rightEdges := ScanPolygon([]RingInput{right}, full, 2)
	checkInvariants(t, leftRuns, leftEdges, 12, 12)
	checkInvariants(t, rightRuns, rightEdges, 12, 12)

	cellArea := full.Dx * full.Dy
	got := totalArea(leftRuns, leftEdges, cellArea) + totalArea(rightRuns, rightEdges, cellArea)
	want := 100.0
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("adjacent rectangles total area = %v, want %v", got, want)
	}
}
