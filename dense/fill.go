// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package dense is the simpler reference backend named in the core
// specification: it allocates a per-subgrid float matrix and
// flood-fills the interior with a classic active-edge-table scanline
// pass, trading the sparse sweep's memory efficiency for a
// straightforward implementation suitable for cross-validating
// internal/scan on random inputs. ScanBurn never calls this package.
package dense

import (
	"math"

	"github.com/gogpu/gridburn/core"
	"github.com/gogpu/gridburn/internal/grid"
	"github.com/gogpu/gridburn/internal/raster"
	"github.com/gogpu/gridburn/internal/scan"
)

// superSamples is the number of vertical sub-scanlines averaged per
// grid row to approximate the analytical core's exact boundary coverage.
const superSamples = 8

// Matrix is a dense ncols x nrows coverage buffer, Matrix[row][col] in [0,1].
type Matrix [][]float64

// Fill rasterizes rings onto a dense matrix covering extent with
// ncols x nrows cells.
func Fill(rings []scan.RingInput, extent grid.Box, ncols, nrows int) Matrix {
	g := grid.New(extent, ncols, nrows)
	matrix := make(Matrix, nrows)
	for i := range matrix {
		matrix[i] = make([]float64, ncols)
	}

	edges := buildEdges(rings)
	if len(edges) == 0 {
		return matrix
	}

	runs := core.NewAlphaRuns(ncols)
	sampleSum := make([]float64, ncols)
	for row := 0; row < nrows; row++ {
		rowTop := g.Extent.Ymax - float64(row)*g.Dy
		rowBottom := rowTop - g.Dy

		for i := range sampleSum {
			sampleSum[i] = 0
		}
		for s := 0; s < superSamples; s++ {
			y := rowBottom + g.Dy*(float64(s)+0.5)/float64(superSamples)
			runs.Reset()
			for _, sp := range spansAt(edges, y) {
				addSpan(runs, g, sp, ncols)
			}
			for x, alpha := range runs.Iter() {
				sampleSum[x] += float64(alpha)
			}
		}
		for x, sum := range sampleSum {
			matrix[row][x] = sum / (255 * float64(superSamples))
		}
	}
	return matrix
}

// buildEdges turns every ring's consecutive coordinate pairs into
// raster.Edges, scaling each edge's winding direction by the ring's
// sign so holes subtract from the nonzero winding count regardless of
// their stored coordinate order.
func buildEdges(rings []scan.RingInput) []raster.Edge {
	var edges []raster.Edge
	for _, r := range rings {
		sign := 1
		if r.Hole {
			sign = -1
		}
		var area float64
		for i := 0; i+1 < len(r.Coords); i++ {
			area += r.Coords[i].X*r.Coords[i+1].Y - r.Coords[i+1].X*r.Coords[i].Y
		}
		if area < 0 {
			sign = -sign // walk every ring as if CCW before applying the hole sign
		}
		for i := 0; i+1 < len(r.Coords); i++ {
			a, b := r.Coords[i], r.Coords[i+1]
			if a.Y == b.Y {
				continue // horizontal edges never become active on a scanline
			}
			edges = append(edges, raster.NewSignedEdge(
				raster.Point{X: a.X, Y: a.Y},
				raster.Point{X: b.X, Y: b.Y},
				sign,
			))
		}
	}
	return edges
}

// spansAt returns the nonzero-winding-rule inside intervals on the
// horizontal line y.
func spansAt(edges []raster.Edge, y float64) [][2]float64 {
	aet := raster.NewActiveEdgeTable()
	for _, e := range edges {
		if y >= e.YMin() && y < e.YMax() {
			aet.AddAtY(e, y)
		}
	}
	aet.Sort()

	var out [][2]float64
	winding := 0
	var start float64
	for _, ae := range aet.Edges() {
		before := winding
		winding += ae.Dir()
		switch {
		case before == 0 && winding != 0:
			start = ae.X()
		case before != 0 && winding == 0:
			out = append(out, [2]float64{start, ae.X()})
		}
	}
	return out
}

// addSpan converts one inside span, in world x coordinates, into a
// single AlphaRuns.Add call carrying a fractional left pixel, a run of
// fully-covered middle pixels, and a fractional right pixel.
func addSpan(runs *core.AlphaRuns, g grid.Grid, span [2]float64, ncols int) {
	left := (span[0] - g.Extent.Xmin) / g.Dx
	right := (span[1] - g.Extent.Xmin) / g.Dx
	if right <= 0 || left >= float64(ncols) {
		return
	}
	left = math.Max(left, 0)
	right = math.Min(right, float64(ncols))

	c0 := int(math.Floor(left))
	c1 := int(math.Floor(right))
	if c1 >= ncols {
		c1 = ncols - 1
	}
	if c0 >= ncols {
		return
	}

	if c0 == c1 {
		runs.Add(c0, uint8(clamp01(right-left)*255), 0, 0)
		return
	}
	startAlpha := uint8(clamp01(float64(c0+1)-left) * 255)
	endAlpha := uint8(clamp01(right-float64(c1)) * 255)
	middleCount := c1 - c0 - 1
	runs.Add(c0, startAlpha, middleCount, endAlpha)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
