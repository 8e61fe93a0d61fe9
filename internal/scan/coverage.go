// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scan

import (
	"math"
	"sort"

	"github.com/gogpu/gridburn/internal/grid"
)

// arcEpsilon separates "entry and exit coincide" (treat the traversal
// as a self-closed polygon) from a genuine nonzero boundary arc, and
// separates "corner strictly inside the arc" from "corner at an
// endpoint" — the 1e-12 tolerance named in the design.
const arcEpsilon = 1e-12

// cellCoverage computes the covered area fraction for one cell from
// its accumulated traversals.
func cellCoverage(box grid.Box, traversals []Traversal) float64 {
	var valid []Traversal
	for _, t := range traversals {
		if t.valid() {
			valid = append(valid, t)
		}
	}
	if len(valid) == 0 {
		return 0
	}
	if len(valid) == 1 {
		t := valid[0]
		if t.EntrySide == grid.SideNone {
			return clamp01(math.Abs(shoelace(t.Coords)) / box.Area())
		}
		return clamp01(math.Abs(shoelace(singleTraversalPolygon(box, t))) / box.Area())
	}
	return multiTraversalCoverage(box, valid)
}

// singleTraversalPolygon builds the closed polygon described in the
// analytical single-traversal formula (§4.3.1): the traversal's own
// coordinates followed by whichever cell corners lie strictly on the
// CW boundary arc walked backward (decreasing perimeter distance) from
// the exit point to the entry point.
func singleTraversalPolygon(box grid.Box, t Traversal) []grid.Coordinate {
	entryDist := grid.PerimeterDistance(box, t.Coords[0])
	exitDist := grid.PerimeterDistance(box, t.Coords[len(t.Coords)-1])
	perimeter := box.Perimeter()

	arc := wrapDist(entryDist, exitDist, perimeter)
	if arc < arcEpsilon || perimeter-arc < arcEpsilon {
		return t.Coords
	}

	poly := make([]grid.Coordinate, len(t.Coords))
	copy(poly, t.Coords)
	return append(poly, arcCorners(box, exitDist, arc, true)...)
}

// arcCorners returns the box's corners that lie strictly within the
// arc of length arc starting at perimeter distance from, sorted by
// increasing distance along that arc. cw selects the walk direction:
// true measures decreasing perimeter distance from "from" (the CW arc
// from an exit back to an entry, used by both the single-traversal
// formula, §4.3.1, and the chain-chaser, §4.3.2), false measures
// increasing perimeter distance.
func arcCorners(box grid.Box, from, arc float64, cw bool) []grid.Coordinate {
	perimeter := box.Perimeter()
	type cand struct {
		offset float64
		point  grid.Coordinate
	}
	var cands []cand
	for _, c := range box.Corners() {
		var offset float64
		if cw {
			offset = wrapDist(c.Dist, from, perimeter)
		} else {
			offset = wrapDist(from, c.Dist, perimeter)
		}
		if offset > arcEpsilon && offset < arc-arcEpsilon {
			cands = append(cands, cand{offset, c.Point})
		}
	}
	sort.Slice(cands, func(i, j int) bool { return cands[i].offset < cands[j].offset })
	out := make([]grid.Coordinate, len(cands))
	for i, c := range cands {
		out[i] = c.point
	}
	return out
}

// multiTraversalCoverage implements the chain-chasing fallback (§4.3.2):
// standalone closed rings contribute their own area directly; open
// chains are chased from each exit CW (decreasing perimeter distance)
// to the nearest unused chain's entry, each followed by whichever
// corners lie on the boundary arc between them, until the polygon
// closes back on its starting chain. With one chain this is the
// single-traversal formula.
func multiTraversalCoverage(box grid.Box, traversals []Traversal) float64 {
	var closedArea float64
	type chain struct {
		t           Traversal
		entry, exit float64
	}
	var chains []chain
	for _, t := range traversals {
		if t.EntrySide == grid.SideNone {
			closedArea += math.Abs(shoelace(t.Coords))
			continue
		}
		chains = append(chains, chain{
			t:     t,
			entry: grid.PerimeterDistance(box, t.Coords[0]),
			exit:  grid.PerimeterDistance(box, t.Coords[len(t.Coords)-1]),
		})
	}
	if len(chains) == 0 {
		return clamp01(closedArea / box.Area())
	}

	sort.Slice(chains, func(i, j int) bool { return chains[i].entry < chains[j].entry })
	perimeter := box.Perimeter()
	used := make([]bool, len(chains))
	var total float64

	for start := range chains {
		if used[start] {
			continue
		}
		used[start] = true
		poly := append([]grid.Coordinate(nil), chains[start].t.Coords...)
		cur := chains[start].exit

		for {
			bestIdx := -1
			bestGap := wrapDist(chains[start].entry, cur, perimeter)
			for j, c := range chains {
				if used[j] {
					continue
				}
				gap := wrapDist(c.entry, cur, perimeter)
				if gap < bestGap-arcEpsilon {
					bestGap = gap
					bestIdx = j
				}
			}
			if bestIdx == -1 {
				poly = append(poly, arcCorners(box, cur, bestGap, true)...)
				break
			}
			poly = append(poly, arcCorners(box, cur, bestGap, true)...)
			poly = append(poly, chains[bestIdx].t.Coords...)
			used[bestIdx] = true
			cur = chains[bestIdx].exit
		}
		total += math.Abs(shoelace(poly))
	}
	return clamp01((total + closedArea) / box.Area())
}

// wrapDist returns the forward (increasing perimeter distance)
// distance from 'from' to 'to' around a perimeter of length p.
func wrapDist(from, to, p float64) float64 {
	d := math.Mod(to-from, p)
	if d < 0 {
		d += p
	}
	return d
}

// shoelace computes twice-the-signed-area formula's result halved,
// for an implicitly closed polygon (the edge from the last point back
// to the first is included automatically).
func shoelace(pts []grid.Coordinate) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return sum / 2
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
