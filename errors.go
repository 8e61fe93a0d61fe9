// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gridburn

import (
	"errors"
	"fmt"
)

// Sentinel errors for the driver-level failure kinds. These are fatal:
// ScanBurn returns immediately with no outputs produced.
var (
	ErrInvalidExtent    = errors.New("gridburn: invalid grid extent")
	ErrInvalidDimension = errors.New("gridburn: invalid grid dimension")
	ErrNumericOverflow  = errors.New("gridburn: cell index exceeds representable range")

	errUnsupportedGeometryType = errors.New("gridburn: geometry is neither Polygon, MultiPolygon, nor GeometryCollection")
)

// InvalidGeometryError reports that one polygon's geometry could not be
// accessed or decomposed. It is never fatal to the whole ScanBurn call:
// the offending polygon is skipped and scanning continues.
type InvalidGeometryError struct {
	PolyID int
	Err    error
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("gridburn: polygon %d: invalid geometry: %v", e.PolyID, e.Err)
}

func (e *InvalidGeometryError) Unwrap() error { return e.Err }

// SkippedPolygon records one polygon ScanBurn could not process.
type SkippedPolygon struct {
	PolyID int
	Reason error
}
