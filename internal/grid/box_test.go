// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package grid

import (
	"math"
	"testing"
)

func TestSideOf(t *testing.T) {
	b := Box{Xmin: 0, Ymin: 0, Xmax: 10, Ymax: 10}
	cases := []struct {
		name string
		c    Coordinate
		want Side
	}{
		{"top edge", Coordinate{5, 10}, SideTop},
		{"bottom edge", Coordinate{5, 0}, SideBottom},
		{"left edge", Coordinate{0, 5}, SideLeft},
		{"right edge", Coordinate{10, 5}, SideRight},
		{"top-left corner prefers top", Coordinate{0, 10}, SideTop},
		{"bottom-right corner prefers bottom", Coordinate{10, 0}, SideBottom},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SideOf(b, tc.c); got != tc.want {
				t.Errorf("SideOf(%v) = %v, want %v", tc.c, got, tc.want)
			}
		})
	}
}

func TestPerimeterDistance(t *testing.T) {
	b := Box{Xmin: 0, Ymin: 0, Xmax: 4, Ymax: 3}
	cases := []struct {
		c    Coordinate
		want float64
	}{
		{Coordinate{0, 0}, 0},
		{Coordinate{0, 3}, 3},
		{Coordinate{4, 3}, 7},
		{Coordinate{4, 0}, 10},
		{Coordinate{0, 1.5}, 1.5},
	}
	for _, tc := range cases {
		if got := PerimeterDistance(b, tc.c); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("PerimeterDistance(%v) = %v, want %v", tc.c, got, tc.want)
		}
	}
	if p := b.Perimeter(); p != 14 {
		t.Errorf("Perimeter() = %v, want 14", p)
	}
}

func TestCrossStraightExit(t *testing.T) {
	b := Box{Xmin: 0, Ymin: 0, Xmax: 10, Ymax: 10}
	cr := Cross(b, Coordinate{5, 5}, Coordinate{15, 5})
	if cr.Side != SideRight {
		t.Fatalf("Side = %v, want SideRight", cr.Side)
	}
	if cr.Point.X != 10 || cr.Point.Y != 5 {
		t.Fatalf("Point = %v, want (10,5)", cr.Point)
	}
}

func TestCrossCornerTieBreak(t *testing.T) {
	b := Box{Xmin: 0, Ymin: 0, Xmax: 10, Ymax: 10}
	// Exiting exactly through the top-right corner: TOP must win over RIGHT.
	cr := Cross(b, Coordinate{5, 5}, Coordinate{15, 15})
	if cr.Side != SideTop {
		t.Fatalf("Side = %v, want SideTop at a tied corner exit", cr.Side)
	}
	if math.Abs(cr.Point.X-10) > 1e-9 || math.Abs(cr.Point.Y-10) > 1e-9 {
		t.Fatalf("Point = %v, want (10,10)", cr.Point)
	}
}

func TestLocate(t *testing.T) {
	b := Box{Xmin: 0, Ymin: 0, Xmax: 10, Ymax: 10}
	if Locate(b, Coordinate{5, 5}) != LocationInside {
		t.Error("center should be inside")
	}
	if Locate(b, Coordinate{0, 5}) != LocationBoundary {
		t.Error("edge point should be boundary")
	}
	if Locate(b, Coordinate{-1, 5}) != LocationOutside {
		t.Error("point left of box should be outside")
	}
}

func TestCorners(t *testing.T) {
	b := Box{Xmin: 0, Ymin: 0, Xmax: 2, Ymax: 3}
	corners := b.Corners()
	if corners[0].Dist != 0 || corners[2].Dist != b.Perimeter()/2 {
		t.Fatalf("unexpected corner distances: %+v", corners)
	}
}
