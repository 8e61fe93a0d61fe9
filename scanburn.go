// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gridburn

import (
	"reflect"

	"github.com/gogpu/gridburn/cache"
	"github.com/gogpu/gridburn/internal/grid"
	"github.com/gogpu/gridburn/internal/scan"
)

// Run is an emitted, fully-covered interior span within one grid row.
// Row and column indices are 1-based.
type Run struct {
	Row, ColStart, ColEnd int
	PolyID                int
}

// Edge is an emitted single cell with fractional coverage, 0 < Weight < 1.
type Edge struct {
	Row, Col int
	Weight   float64
	PolyID   int
}

// bboxCache memoizes a leaf polygon's coordinate bounding box, keyed by
// the geometry value's identity. It exists so a caller invoking
// ScanBurn repeatedly over the same polygon set against different grid
// tiles doesn't re-walk every ring's coordinates just to find out a
// polygon misses the current tile entirely.
var bboxCache = cache.NewSharded[uint64, Extent](4096, cache.Uint64Hasher)

// ScanBurn computes the sparse polygon–grid intersection for every
// polygon in polygons against a grid of ncols x nrows cells covering
// extent. Each polygon's 1-based position in polygons becomes its
// PolyID; that PolyID is shared by every component of a MultiPolygon
// or GeometryCollection entry, each of which is still swept
// independently so their winding never leaks into one another (§4.6).
func ScanBurn(provider GeometryProvider, polygons []any, extent Extent, ncols, nrows int) ([]Run, []Edge, []SkippedPolygon, error) {
	if extent.Xmax <= extent.Xmin || extent.Ymax <= extent.Ymin {
		return nil, nil, nil, ErrInvalidExtent
	}
	if ncols <= 0 || nrows <= 0 {
		return nil, nil, nil, ErrInvalidDimension
	}

	full := grid.New(grid.Box{Xmin: extent.Xmin, Ymin: extent.Ymin, Xmax: extent.Xmax, Ymax: extent.Ymax}, ncols, nrows)

	var runs []Run
	var edges []Edge
	var skipped []SkippedPolygon

	for i, g := range polygons {
		polyID := i + 1
		if provider.IsEmpty(g) {
			continue
		}
		leaves, err := decompose(provider, g)
		if err != nil {
			skipped = append(skipped, SkippedPolygon{PolyID: polyID, Reason: &InvalidGeometryError{PolyID: polyID, Err: err}})
			Logger().Warn("skipping polygon with invalid geometry", "poly_id", polyID, "err", err)
			continue
		}
		for _, leaf := range leaves {
			if provider.IsEmpty(leaf) {
				continue
			}
			if !bboxMayIntersect(provider, leaf, extent) {
				continue
			}
			rings, err := extractRings(provider, leaf)
			if err != nil {
				skipped = append(skipped, SkippedPolygon{PolyID: polyID, Reason: &InvalidGeometryError{PolyID: polyID, Err: err}})
				Logger().Warn("skipping polygon component with invalid geometry", "poly_id", polyID, "err", err)
				continue
			}
			scanRuns, scanEdges := scan.ScanPolygon(rings, full, polyID)
			for _, r := range scanRuns {
				runs = append(runs, Run{Row: r.Row, ColStart: r.ColStart, ColEnd: r.ColEnd, PolyID: r.PolyID})
			}
			for _, e := range scanEdges {
				edges = append(edges, Edge{Row: e.Row, Col: e.Col, Weight: e.Weight, PolyID: e.PolyID})
			}
		}
	}
	return runs, edges, skipped, nil
}

// decompose recursively expands a MultiPolygon or GeometryCollection
// into its leaf Polygon geometries. A bare Polygon decomposes to itself.
func decompose(provider GeometryProvider, g any) ([]any, error) {
	switch provider.TypeOf(g) {
	case TypePolygon:
		return []any{g}, nil
	case TypeMultiPolygon, TypeGeometryCollection:
		n := provider.NumGeometries(g)
		leaves := make([]any, 0, n)
		for i := 0; i < n; i++ {
			child := provider.NthGeometry(g, i)
			childLeaves, err := decompose(provider, child)
			if err != nil {
				return nil, err
			}
			leaves = append(leaves, childLeaves...)
		}
		return leaves, nil
	default:
		return nil, errUnsupportedGeometryType
	}
}

// extractRings pulls a leaf polygon's exterior and interior rings into
// plain RingInput values the scan package can walk.
func extractRings(provider GeometryProvider, g any) ([]scan.RingInput, error) {
	ext := provider.ExteriorRing(g)
	coords, err := provider.RingCoords(ext)
	if err != nil {
		return nil, err
	}
	rings := make([]scan.RingInput, 0, 1+provider.NumInteriorRings(g))
	rings = append(rings, toRingInput(coords, provider.RingIsCCW(ext), false))

	n := provider.NumInteriorRings(g)
	for i := 0; i < n; i++ {
		hole := provider.InteriorRing(g, i)
		hc, err := provider.RingCoords(hole)
		if err != nil {
			return nil, err
		}
		rings = append(rings, toRingInput(hc, provider.RingIsCCW(hole), true))
	}
	return rings, nil
}

func toRingInput(coords []Coordinate, ccw, hole bool) scan.RingInput {
	gc := make([]grid.Coordinate, len(coords))
	for i, c := range coords {
		gc[i] = grid.Coordinate{X: c.X, Y: c.Y}
	}
	return scan.RingInput{Coords: gc, CCW: ccw, Hole: hole}
}

// bboxMayIntersect reports whether g's bounding box (memoized) could
// overlap extent, used to skip ring extraction for polygons nowhere
// near the current tile.
func bboxMayIntersect(provider GeometryProvider, g any, extent Extent) bool {
	key, ok := geometryIdentity(g)
	if !ok {
		return true // no stable identity to cache against; always attempt
	}
	box, found := bboxCache.Get(key)
	if !found {
		box = unionExtents(provider.ComponentBoundingBoxes(g))
		bboxCache.Set(key, box)
	}
	if box.Xmax < box.Xmin {
		return true // degenerate/unknown box: don't risk a false negative
	}
	return box.Xmin <= extent.Xmax && box.Xmax >= extent.Xmin &&
		box.Ymin <= extent.Ymax && box.Ymax >= extent.Ymin
}

func unionExtents(boxes []Extent) Extent {
	if len(boxes) == 0 {
		return Extent{Xmin: 1, Xmax: 0} // degenerate: Xmax < Xmin signals "unknown"
	}
	u := boxes[0]
	for _, b := range boxes[1:] {
		if b.Xmin < u.Xmin {
			u.Xmin = b.Xmin
		}
		if b.Ymin < u.Ymin {
			u.Ymin = b.Ymin
		}
		if b.Xmax > u.Xmax {
			u.Xmax = b.Xmax
		}
		if b.Ymax > u.Ymax {
			u.Ymax = b.Ymax
		}
	}
	return u
}

// geometryIdentity derives a stable cache key from g's underlying
// pointer, slice, or map identity. Value types (structs passed by
// value) have no such identity and report ok=false.
func geometryIdentity(g any) (uint64, bool) {
	v := reflect.ValueOf(g)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if v.IsNil() {
			return 0, false
		}
		return uint64(v.Pointer()), true
	case reflect.Slice:
		if v.IsNil() || v.Len() == 0 {
			return 0, false
		}
		return uint64(v.Pointer()), true
	default:
		return 0, false
	}
}
