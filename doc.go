// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gridburn computes the exact intersection of planar polygons
// with a regular rectangular grid: a scanline sweep with winding-number
// interior classification and analytical boundary coverage, producing
// a sparse polygon–grid intersection database.
//
// # Overview
//
// For every grid cell touched by a polygon, ScanBurn reports either a
// run-length-encoded interior span (coverage exactly 1) or an
// individually weighted boundary cell (0 < weight < 1). Memory use
// scales with a polygon's perimeter in grid cells, not with grid area,
// so intersection at tile sizes a dense float buffer could not hold
// (hundreds of thousands of cells per side) stays tractable.
//
// # Quick start
//
//	import "github.com/gogpu/gridburn"
//
//	runs, edges, skipped, err := gridburn.ScanBurn(
//	    orbadapter.Provider{},
//	    polygons,
//	    gridburn.Extent{Xmin: 0, Ymin: 0, Xmax: 10, Ymax: 10},
//	    20, 20,
//	)
//
// # Architecture
//
//   - Public API: ScanBurn, Run, Edge, GeometryProvider
//   - internal/grid: cell layout, boxes, sides, boundary crossings
//   - internal/scan: ring walker, coverage kernel, winding ledger,
//     row sweep emitter, per-polygon driver
//   - geom/orbadapter: a GeometryProvider over github.com/paulmach/orb
//   - dense: a reference flood-fill backend for cross-validation,
//     outside the core's scope
//
// # Coordinate system
//
// Planar coordinates, y increasing upward. Grid row 0 is the top row
// (largest y); columns increase with x. Output row/column indices are
// 1-based.
package gridburn

// Version information.
const (
	Version      = "0.1.0-alpha.1"
	VersionMajor = 0
	VersionMinor = 1
	VersionPatch = 0
)
