// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package grid

import "math"

// cornerEpsilon separates "distinct corner crossings" from "the same
// crossing point" when two box sides produce nearly identical
// parametric distances along a segment (§4.7 of the design).
const cornerEpsilon = 1e-12

// Box is an axis-aligned rectangle: one grid cell, or a clipped region
// of the grid used to derive a sub-grid.
type Box struct {
	Xmin, Ymin, Xmax, Ymax float64
}

// EmptyBox returns a box with no area, used as the identity element
// when folding a sequence of boxes with Expand.
func EmptyBox() Box {
	return Box{Xmin: math.Inf(1), Ymin: math.Inf(1), Xmax: math.Inf(-1), Ymax: math.Inf(-1)}
}

// IsEmpty reports whether the box has never been expanded to include a
// point (Xmax < Xmin).
func (b Box) IsEmpty() bool {
	return b.Xmax < b.Xmin || b.Ymax < b.Ymin
}

// Width returns Xmax - Xmin.
func (b Box) Width() float64 { return b.Xmax - b.Xmin }

// Height returns Ymax - Ymin.
func (b Box) Height() float64 { return b.Ymax - b.Ymin }

// Area returns the box's area, zero for a degenerate box.
func (b Box) Area() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.Width() * b.Height()
}

// Perimeter returns 2*(width+height).
func (b Box) Perimeter() float64 {
	return 2 * (b.Width() + b.Height())
}

// Intersects reports whether b and other share any area or boundary.
func (b Box) Intersects(other Box) bool {
	return b.Xmin <= other.Xmax && b.Xmax >= other.Xmin &&
		b.Ymin <= other.Ymax && b.Ymax >= other.Ymin
}

// Intersection returns the overlap of b and other. Callers must check
// Intersects first; a non-overlapping pair yields an inverted (empty) box.
func (b Box) Intersection(other Box) Box {
	return Box{
		Xmin: math.Max(b.Xmin, other.Xmin),
		Ymin: math.Max(b.Ymin, other.Ymin),
		Xmax: math.Min(b.Xmax, other.Xmax),
		Ymax: math.Min(b.Ymax, other.Ymax),
	}
}

// Expand grows b to include other, treating an empty b as absorbing.
func (b Box) Expand(other Box) Box {
	if other.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return other
	}
	return Box{
		Xmin: math.Min(b.Xmin, other.Xmin),
		Ymin: math.Min(b.Ymin, other.Ymin),
		Xmax: math.Max(b.Xmax, other.Xmax),
		Ymax: math.Max(b.Ymax, other.Ymax),
	}
}

// Contains reports whether c lies within b, boundary inclusive.
func (b Box) Contains(c Coordinate) bool {
	return c.X >= b.Xmin && c.X <= b.Xmax && c.Y >= b.Ymin && c.Y <= b.Ymax
}

// StrictlyContains reports whether c lies strictly inside b, excluding
// the boundary.
func (b Box) StrictlyContains(c Coordinate) bool {
	return c.X > b.Xmin && c.X < b.Xmax && c.Y > b.Ymin && c.Y < b.Ymax
}

// Location classifies a point relative to a box.
type Location int

const (
	LocationInside Location = iota
	LocationBoundary
	LocationOutside
)

// Locate classifies c against b.
func Locate(b Box, c Coordinate) Location {
	if b.StrictlyContains(c) {
		return LocationInside
	}
	if b.Contains(c) {
		return LocationBoundary
	}
	return LocationOutside
}

// SideOf returns which side of b the boundary point c lies on. Corner
// points resolve to TOP/BOTTOM in preference to LEFT/RIGHT, matching
// the crossing tie-break rule so classification and crossing agree at
// corners. Callers must first establish that c is on the boundary
// (Locate(b, c) == LocationBoundary); SideNone is returned otherwise.
func SideOf(b Box, c Coordinate) Side {
	if c.Y == b.Ymax && c.X >= b.Xmin && c.X <= b.Xmax {
		return SideTop
	}
	if c.Y == b.Ymin && c.X >= b.Xmin && c.X <= b.Xmax {
		return SideBottom
	}
	if c.X == b.Xmin && c.Y >= b.Ymin && c.Y <= b.Ymax {
		return SideLeft
	}
	if c.X == b.Xmax && c.Y >= b.Ymin && c.Y <= b.Ymax {
		return SideRight
	}
	return SideNone
}

// PerimeterDistance returns the CCW arc length from the bottom-left
// corner of b to the boundary point c: BL=0, TL=h, TR=h+w, BR=2h+w.
// c is assumed to lie on the boundary of b.
func PerimeterDistance(b Box, c Coordinate) float64 {
	w, h := b.Width(), b.Height()
	switch SideOf(b, c) {
	case SideLeft:
		// Left side runs BL (0) -> TL (h), increasing with y.
		return c.Y - b.Ymin
	case SideTop:
		// Top side runs TL (h) -> TR (h+w), increasing with x.
		return h + (c.X - b.Xmin)
	case SideRight:
		// Right side runs TR (h+w) -> BR (2h+w), decreasing with y.
		return h + w + (b.Ymax - c.Y)
	case SideBottom:
		// Bottom side runs BR (2h+w) -> BL, decreasing with x; BL itself is 0.
		if c.X == b.Xmin {
			return 0
		}
		return 2*h + w + (b.Xmax - c.X)
	default:
		return 0
	}
}

// CornerPoint pairs a box corner with its perimeter distance from the
// bottom-left corner (see PerimeterDistance).
type CornerPoint struct {
	Point Coordinate
	Dist  float64
}

// Corners returns the box's four corners in CCW order from
// bottom-left, paired with their perimeter distance. Used by the
// coverage kernel to splice corner points into a traversal's boundary
// arc.
func (b Box) Corners() [4]CornerPoint {
	h, w := b.Height(), b.Width()
	return [4]CornerPoint{
		{Coordinate{b.Xmin, b.Ymin}, 0},
		{Coordinate{b.Xmin, b.Ymax}, h},
		{Coordinate{b.Xmax, b.Ymax}, h + w},
		{Coordinate{b.Xmax, b.Ymin}, 2*h + w},
	}
}

// Crossing is where a segment leaving the box crosses its boundary.
type Crossing struct {
	Point Coordinate
	Side  Side
}

// sideCandidate is one of up to four possible boundary intersections
// considered while resolving a Crossing.
type sideCandidate struct {
	side     Side
	t        float64
	point    Coordinate
	priority int
}

// Cross computes where the segment (from, to) leaves b, where to is
// strictly outside b. from may lie inside b, on its boundary, or behind
// it on the segment's line (the walker passes the previous ring
// coordinate); only the sides the segment heads out through (top when
// moving up, bottom when moving down, and likewise left/right) are
// considered, so a side behind the direction of travel never wins. It always
// returns a result: pathological degenerate segments fall back to the
// side nearest "from".
//
// Ties among candidate sides (segments passing exactly through a
// corner) resolve to TOP/BOTTOM before LEFT/RIGHT, a fixed rule that
// keeps the walker's cell-to-cell stepping deterministic.
func Cross(b Box, from, to Coordinate) Crossing {
	dx := to.X - from.X
	dy := to.Y - from.Y

	var candidates []sideCandidate

	add := func(t float64, side Side, priority int, point Coordinate) {
		if t > 0 && t <= 1+cornerEpsilon {
			candidates = append(candidates, sideCandidate{side: side, t: t, point: point, priority: priority})
		}
	}

	if dy != 0 {
		if t := (b.Ymax - from.Y) / dy; dy > 0 {
			x := from.X + t*dx
			if x >= b.Xmin-cornerEpsilon && x <= b.Xmax+cornerEpsilon {
				add(t, SideTop, 0, Coordinate{clampTo(x, b.Xmin, b.Xmax), b.Ymax})
			}
		}
		if t := (b.Ymin - from.Y) / dy; dy < 0 {
			x := from.X + t*dx
			if x >= b.Xmin-cornerEpsilon && x <= b.Xmax+cornerEpsilon {
				add(t, SideBottom, 1, Coordinate{clampTo(x, b.Xmin, b.Xmax), b.Ymin})
			}
		}
	}
	if dx != 0 {
		if t := (b.Xmin - from.X) / dx; dx < 0 {
			y := from.Y + t*dy
			if y >= b.Ymin-cornerEpsilon && y <= b.Ymax+cornerEpsilon {
				add(t, SideLeft, 2, Coordinate{b.Xmin, clampTo(y, b.Ymin, b.Ymax)})
			}
		}
		if t := (b.Xmax - from.X) / dx; dx > 0 {
			y := from.Y + t*dy
			if y >= b.Ymin-cornerEpsilon && y <= b.Ymax+cornerEpsilon {
				add(t, SideRight, 3, Coordinate{b.Xmax, clampTo(y, b.Ymin, b.Ymax)})
			}
		}
	}

	if len(candidates) == 0 {
		// Degenerate: from == to, or a numeric edge case. Exit through
		// whichever side "from" already sits on.
		return Crossing{Point: from, Side: SideOf(b, from)}
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.t < best.t-cornerEpsilon {
			best = c
		} else if c.t <= best.t+cornerEpsilon && c.priority < best.priority {
			best = c
		}
	}
	return Crossing{Point: best.point, Side: best.side}
}

func clampTo(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
