// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package orbadapter implements gridburn.GeometryProvider over
// github.com/paulmach/orb, the planar geometry library this project
// shares with the rest of the retrieved example corpus.
package orbadapter

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/gogpu/gridburn"
)

// Provider adapts orb.Geometry values (orb.Polygon, orb.MultiPolygon,
// and orb.Collection) to gridburn.GeometryProvider. It holds no state
// of its own and is safe for concurrent use.
type Provider struct{}

var _ gridburn.GeometryProvider = Provider{}

func (Provider) TypeOf(g any) gridburn.GeometryType {
	switch g.(type) {
	case orb.Polygon:
		return gridburn.TypePolygon
	case orb.MultiPolygon:
		return gridburn.TypeMultiPolygon
	case orb.Collection:
		return gridburn.TypeGeometryCollection
	default:
		return gridburn.TypeOther
	}
}

func (Provider) NumGeometries(g any) int {
	switch v := g.(type) {
	case orb.MultiPolygon:
		return len(v)
	case orb.Collection:
		return len(v)
	default:
		return 0
	}
}

func (Provider) NthGeometry(g any, i int) any {
	switch v := g.(type) {
	case orb.MultiPolygon:
		return v[i]
	case orb.Collection:
		return v[i]
	default:
		return nil
	}
}

func (Provider) ExteriorRing(g any) gridburn.Ring {
	poly, ok := g.(orb.Polygon)
	if !ok || len(poly) == 0 {
		return nil
	}
	return poly[0]
}

func (Provider) NumInteriorRings(g any) int {
	poly, ok := g.(orb.Polygon)
	if !ok || len(poly) == 0 {
		return 0
	}
	return len(poly) - 1
}

func (Provider) InteriorRing(g any, i int) gridburn.Ring {
	poly := g.(orb.Polygon)
	return poly[i+1]
}

func (Provider) RingCoords(r gridburn.Ring) ([]gridburn.Coordinate, error) {
	ring, ok := r.(orb.Ring)
	if !ok {
		return nil, fmt.Errorf("orbadapter: not an orb.Ring: %T", r)
	}
	if len(ring) < 4 {
		return nil, fmt.Errorf("orbadapter: ring has %d points, need at least 4 (closed)", len(ring))
	}
	coords := make([]gridburn.Coordinate, len(ring))
	for i, p := range ring {
		coords[i] = gridburn.Coordinate{X: p.X(), Y: p.Y()}
	}
	return coords, nil
}

func (Provider) RingIsCCW(r gridburn.Ring) bool {
	ring, ok := r.(orb.Ring)
	if !ok {
		return false
	}
	return ring.Orientation() == orb.CCW
}

func (Provider) ComponentBoundingBoxes(g any) []gridburn.Extent {
	switch v := g.(type) {
	case orb.Polygon:
		b := v.Bound()
		return []gridburn.Extent{toExtent(b)}
	case orb.MultiPolygon:
		out := make([]gridburn.Extent, len(v))
		for i, p := range v {
			out[i] = toExtent(p.Bound())
		}
		return out
	default:
		return nil
	}
}

func (Provider) IsEmpty(g any) bool {
	switch v := g.(type) {
	case orb.Polygon:
		return len(v) == 0 || len(v[0]) == 0
	case orb.MultiPolygon:
		return len(v) == 0
	case orb.Collection:
		return len(v) == 0
	default:
		return g == nil
	}
}

func toExtent(b orb.Bound) gridburn.Extent {
	return gridburn.Extent{Xmin: b.Min.X(), Ymin: b.Min.Y(), Xmax: b.Max.X(), Ymax: b.Max.Y()}
}
