// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package grid

import "testing"

func TestGridRowColumn(t *testing.T) {
	g := New(Box{Xmin: 0, Ymin: 0, Xmax: 10, Ymax: 10}, 10, 10)
	if r := g.Row(9.5); r != 0 {
		t.Errorf("Row(9.5) = %d, want 0 (top row)", r)
	}
	if r := g.Row(0.5); r != 9 {
		t.Errorf("Row(0.5) = %d, want 9 (bottom row)", r)
	}
	if c := g.Column(0.5); c != 0 {
		t.Errorf("Column(0.5) = %d, want 0", c)
	}
	if r := g.Row(-5); r != 9 {
		t.Errorf("Row(-5) = %d, want clamped to 9", r)
	}
	if r := g.Row(50); r != 0 {
		t.Errorf("Row(50) = %d, want clamped to 0", r)
	}
}

func TestGridCell(t *testing.T) {
	g := New(Box{Xmin: 0, Ymin: 0, Xmax: 10, Ymax: 10}, 10, 10)
	cell := g.Cell(0, 0)
	want := Box{Xmin: 0, Ymin: 9, Xmax: 1, Ymax: 10}
	if cell != want {
		t.Errorf("Cell(0,0) = %+v, want %+v", cell, want)
	}
	cell = g.Cell(9, 9)
	want = Box{Xmin: 9, Ymin: 0, Xmax: 10, Ymax: 1}
	if cell != want {
		t.Errorf("Cell(9,9) = %+v, want %+v", cell, want)
	}
}

func TestShrinkToFit(t *testing.T) {
	g := New(Box{Xmin: 0, Ymin: 0, Xmax: 10, Ymax: 10}, 10, 10)
	sub, rowOff, colOff := g.ShrinkToFit(Box{Xmin: 2.5, Ymin: 2.5, Xmax: 5.5, Ymax: 5.5})
	if colOff != 2 || rowOff != 4 {
		t.Fatalf("offsets = (%d,%d), want (4,2)", rowOff, colOff)
	}
	if sub.Ncols != 4 || sub.Nrows != 4 {
		t.Fatalf("sub dims = (%d,%d), want (4,4)", sub.Nrows, sub.Ncols)
	}
	if sub.Extent.Xmin != 2 || sub.Extent.Xmax != 6 {
		t.Fatalf("sub extent x = [%v,%v], want [2,6]", sub.Extent.Xmin, sub.Extent.Xmax)
	}
}

func TestInfiniteGridPadding(t *testing.T) {
	sub := New(Box{Xmin: 0, Ymin: 0, Xmax: 4, Ymax: 4}, 4, 4)
	inf := MakeInfinite(sub)

	if inf.Rows() != 6 || inf.Cols() != 6 {
		t.Fatalf("Rows/Cols = (%d,%d), want (6,6)", inf.Rows(), inf.Cols())
	}
	if r := inf.Row(100); r != 0 {
		t.Errorf("Row(100) = %d, want 0 (top padding)", r)
	}
	if r := inf.Row(-100); r != inf.Rows()-1 {
		t.Errorf("Row(-100) = %d, want %d (bottom padding)", r, inf.Rows()-1)
	}
	if c := inf.Column(-100); c != 0 {
		t.Errorf("Column(-100) = %d, want 0 (left padding)", c)
	}
	// A real cell should map through the +1 offset onto the same box
	// the bounded grid reports at index-1.
	real := inf.Cell(1, 1)
	if real != sub.Cell(0, 0) {
		t.Errorf("Infinite.Cell(1,1) = %+v, want %+v", real, sub.Cell(0, 0))
	}
}
