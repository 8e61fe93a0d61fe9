// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gridburn

// GeometryType classifies a value returned by a GeometryProvider.
type GeometryType int

const (
	TypePolygon GeometryType = iota
	TypeMultiPolygon
	TypeGeometryCollection
	TypeOther
)

// Coordinate is a planar point.
type Coordinate struct {
	X, Y float64
}

// Extent is an axis-aligned bounding rectangle.
type Extent struct {
	Xmin, Ymin, Xmax, Ymax float64
}

// Ring is an opaque handle to one ring of a polygon, as returned by a
// GeometryProvider. The core never constructs or inspects a Ring
// itself; it only passes the value back into the provider.
type Ring any

// GeometryProvider is the only geometry capability ScanBurn requires.
// A typical implementation wraps a planar geometry library; see
// geom/orbadapter for one built on github.com/paulmach/orb.
type GeometryProvider interface {
	TypeOf(g any) GeometryType
	NumGeometries(g any) int
	NthGeometry(g any, i int) any
	ExteriorRing(g any) Ring
	NumInteriorRings(g any) int
	InteriorRing(g any, i int) Ring
	RingCoords(r Ring) ([]Coordinate, error)
	RingIsCCW(r Ring) bool
	ComponentBoundingBoxes(g any) []Extent
	IsEmpty(g any) bool
}
