// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package grid

import "math"

// snapEpsilon absorbs floating point error when an extent boundary
// should land exactly on a cell edge (e.g. dx*ncols == width) but
// division introduced a sliver of drift.
const snapEpsilon = 1e-9

// Grid is a bounded rectangular cell layout: rows and columns are
// addressable in [0, Nrows) x [0, Ncols). Row 0 sits at the top
// (largest Y); columns increase with X.
type Grid struct {
	Extent       Box
	Dx, Dy       float64
	Nrows, Ncols int
}

// New builds a grid covering extent with ncols x nrows cells.
func New(extent Box, ncols, nrows int) Grid {
	return Grid{
		Extent: extent,
		Dx:     extent.Width() / float64(ncols),
		Dy:     extent.Height() / float64(nrows),
		Nrows:  nrows,
		Ncols:  ncols,
	}
}

// Row returns the row index containing y, clamped to [0, Nrows-1].
func (g Grid) Row(y float64) int {
	r := int(math.Floor((g.Extent.Ymax-y)/g.Dy + snapEpsilon))
	return clampInt(r, 0, g.Nrows-1)
}

// Column returns the column index containing x, clamped to [0, Ncols-1].
func (g Grid) Column(x float64) int {
	c := int(math.Floor((x-g.Extent.Xmin)/g.Dx + snapEpsilon))
	return clampInt(c, 0, g.Ncols-1)
}

// Cell returns the box for (row, col). The arithmetic is valid for
// indices outside [0,Nrows)x[0,Ncols) too: it is the formula the
// infinite-extent view relies on to synthesize padding cells.
func (g Grid) Cell(row, col int) Box {
	ymax := g.Extent.Ymax - float64(row)*g.Dy
	xmin := g.Extent.Xmin + float64(col)*g.Dx
	return Box{
		Xmin: xmin,
		Xmax: g.Extent.Xmin + float64(col+1)*g.Dx,
		Ymax: ymax,
		Ymin: g.Extent.Ymax - float64(row+1)*g.Dy,
	}
}

// ShrinkToFit returns the bounded sub-grid of g that snaps outward to
// cell boundaries and covers region, along with the row/column offset
// of the sub-grid's origin within g. region must already be clipped to
// g.Extent by the caller; ShrinkToFit clamps defensively regardless.
func (g Grid) ShrinkToFit(region Box) (sub Grid, rowOff, colOff int) {
	colStart := clampInt(int(math.Floor((region.Xmin-g.Extent.Xmin)/g.Dx+snapEpsilon)), 0, g.Ncols-1)
	colEnd := clampInt(int(math.Ceil((region.Xmax-g.Extent.Xmin)/g.Dx-snapEpsilon))-1, colStart, g.Ncols-1)
	rowStart := clampInt(int(math.Floor((g.Extent.Ymax-region.Ymax)/g.Dy+snapEpsilon)), 0, g.Nrows-1)
	rowEnd := clampInt(int(math.Ceil((g.Extent.Ymax-region.Ymin)/g.Dy-snapEpsilon))-1, rowStart, g.Nrows-1)

	subExtent := Box{
		Xmin: g.Extent.Xmin + float64(colStart)*g.Dx,
		Xmax: g.Extent.Xmin + float64(colEnd+1)*g.Dx,
		Ymax: g.Extent.Ymax - float64(rowStart)*g.Dy,
		Ymin: g.Extent.Ymax - float64(rowEnd+1)*g.Dy,
	}
	sub = Grid{
		Extent: subExtent,
		Dx:     g.Dx,
		Dy:     g.Dy,
		Nrows:  rowEnd - rowStart + 1,
		Ncols:  colEnd - colStart + 1,
	}
	return sub, rowStart, colStart
}

// Infinite wraps a bounded Grid, virtually padding it by one row and
// one column on each side so that ring coordinates outside the grid
// still resolve to an addressable (padding) cell instead of an
// unbounded index.
type Infinite struct {
	Bounded Grid
}

// MakeInfinite adapts a bounded grid to the infinite-extent view.
func MakeInfinite(g Grid) Infinite {
	return Infinite{Bounded: g}
}

// Rows and Cols include the one-cell padding on each side.
func (g Infinite) Rows() int { return g.Bounded.Nrows + 2 }
func (g Infinite) Cols() int { return g.Bounded.Ncols + 2 }

// IsEmpty reports whether the underlying bounded grid has no cells.
func (g Infinite) IsEmpty() bool {
	return g.Bounded.Nrows <= 0 || g.Bounded.Ncols <= 0
}

// Row maps y to an infinite-extent row index in [0, Rows()-1]. Index 0
// and Rows()-1 are the padding rows; every point further outside the
// grid than one cell still collapses onto the same padding index,
// since the padding row's notional box extends outward without limit.
func (g Infinite) Row(y float64) int {
	raw := int(math.Floor((g.Bounded.Extent.Ymax-y)/g.Bounded.Dy+snapEpsilon)) + 1
	return clampInt(raw, 0, g.Rows()-1)
}

// Column maps x to an infinite-extent column index in [0, Cols()-1].
func (g Infinite) Column(x float64) int {
	raw := int(math.Floor((x-g.Bounded.Extent.Xmin)/g.Bounded.Dx+snapEpsilon)) + 1
	return clampInt(raw, 0, g.Cols()-1)
}

// Cell returns the box for an infinite-extent (row, col) pair,
// including padding rows/columns. A padding cell's box is unbounded on
// its outward side(s), matching Row and Column, which collapse every
// point beyond the grid onto the padding index.
func (g Infinite) Cell(row, col int) Box {
	b := g.Bounded.Cell(row-1, col-1)
	if row <= 0 {
		b.Ymax = math.Inf(1)
	}
	if row >= g.Rows()-1 {
		b.Ymin = math.Inf(-1)
	}
	if col <= 0 {
		b.Xmin = math.Inf(-1)
	}
	if col >= g.Cols()-1 {
		b.Xmax = math.Inf(1)
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
