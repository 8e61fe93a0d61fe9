// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scan

import "github.com/gogpu/gridburn/internal/grid"

// windingDelta returns the unsigned ±1 contribution a traversal makes
// to the row mid-line crossing count, or 0 if it doesn't cross the
// mid-line (or has no entry/exit, i.e. it is a closed ring wholly
// inside the cell). The caller scales this by the ring's sign.
func windingDelta(box grid.Box, t Traversal) float64 {
	if t.EntrySide == grid.SideNone || t.ExitSide == grid.SideNone {
		return 0
	}
	mid := (box.Ymin + box.Ymax) / 2
	entryY := t.Coords[0].Y
	exitY := t.Coords[len(t.Coords)-1].Y
	switch {
	case entryY < mid && exitY > mid:
		return 1
	case entryY > mid && exitY < mid:
		return -1
	default:
		return 0
	}
}
