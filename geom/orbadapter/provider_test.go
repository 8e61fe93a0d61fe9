// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package orbadapter

import (
	"testing"

	"github.com/paulmach/orb"

	"github.com/gogpu/gridburn"
)

func TestProviderPolygon(t *testing.T) {
	p := Provider{}
	poly := orb.Polygon{
		orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
		orb.Ring{{2, 2}, {4, 2}, {4, 4}, {2, 4}, {2, 2}},
	}

	if got := p.TypeOf(poly); got != gridburn.TypePolygon {
		t.Errorf("TypeOf = %v, want TypePolygon", got)
	}
	if p.IsEmpty(poly) {
		t.Error("IsEmpty = true for a populated polygon")
	}
	if n := p.NumInteriorRings(poly); n != 1 {
		t.Errorf("NumInteriorRings = %d, want 1", n)
	}

	ext := p.ExteriorRing(poly)
	coords, err := p.RingCoords(ext)
	if err != nil {
		t.Fatalf("RingCoords: %v", err)
	}
	if len(coords) != 5 {
		t.Errorf("exterior ring has %d coords, want 5", len(coords))
	}
	if !p.RingIsCCW(ext) {
		t.Error("exterior ring should be CCW")
	}

	hole := p.InteriorRing(poly, 0)
	hc, err := p.RingCoords(hole)
	if err != nil {
		t.Fatalf("RingCoords(hole): %v", err)
	}
	if len(hc) != 5 {
		t.Errorf("hole ring has %d coords, want 5", len(hc))
	}

	boxes := p.ComponentBoundingBoxes(poly)
	if len(boxes) != 1 {
		t.Fatalf("ComponentBoundingBoxes = %d boxes, want 1", len(boxes))
	}
	want := gridburn.Extent{Xmin: 0, Ymin: 0, Xmax: 10, Ymax: 10}
	if boxes[0] != want {
		t.Errorf("bounding box = %+v, want %+v", boxes[0], want)
	}
}

func TestProviderMultiPolygon(t *testing.T) {
	p := Provider{}
	mp := orb.MultiPolygon{
		orb.Polygon{orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}},
		orb.Polygon{orb.Ring{{5, 5}, {6, 5}, {6, 6}, {5, 6}, {5, 5}}},
	}

	if got := p.TypeOf(mp); got != gridburn.TypeMultiPolygon {
		t.Errorf("TypeOf = %v, want TypeMultiPolygon", got)
	}
	if n := p.NumGeometries(mp); n != 2 {
		t.Fatalf("NumGeometries = %d, want 2", n)
	}
	second := p.NthGeometry(mp, 1)
	poly, ok := second.(orb.Polygon)
	if !ok {
		t.Fatalf("NthGeometry(1) returned %T, want orb.Polygon", second)
	}
	if poly.Bound().Min.X() != 5 {
		t.Errorf("second polygon bound.Min.X = %v, want 5", poly.Bound().Min.X())
	}
}

func TestProviderRingTooShort(t *testing.T) {
	p := Provider{}
	_, err := p.RingCoords(orb.Ring{{0, 0}, {1, 1}})
	if err == nil {
		t.Error("expected an error for a ring with fewer than 4 points")
	}
}
