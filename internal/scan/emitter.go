// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scan

import "sort"

// boundaryCell is the row sweep's per-column working record: a
// full-grid (0-based) column paired with the coverage and winding
// accrued there. Columns at or beyond a polygon's own sub-grid bounds
// (i.e. the infinite sub-grid's padding) carry coverage 0 and a
// nonzero winding delta only.
type boundaryCell struct {
	col      int
	coverage float64
	winding  float64
}

// tau separates boundary cells from saturated (fully covered)
// boundary cells and from negligible (winding-anchor-only) ones.
const tau = 1e-6

// emitRow performs the left-to-right row sweep (§4.5) over one row's
// boundary cell records, producing Runs and Edges in full-grid 1-based
// coordinates.
func emitRow(row int, cells []boundaryCell, polyID int) (runs []Run, edges []Edge) {
	if len(cells) == 0 {
		return nil, nil
	}
	merged := mergeByColumn(cells)

	winding := 0.0
	prevCol := -2
	havePrev := false

	for _, c := range merged {
		if winding != 0 && havePrev && c.col > prevCol+1 {
			runs = append(runs, Run{
				Row:      row + 1,
				ColStart: prevCol + 1 + 1,
				ColEnd:   c.col - 1 + 1,
				PolyID:   polyID,
			})
		}

		w := c.coverage
		switch {
		case w >= 1-tau:
			runs = append(runs, Run{Row: row + 1, ColStart: c.col + 1, ColEnd: c.col + 1, PolyID: polyID})
		case w > tau:
			edges = append(edges, Edge{Row: row + 1, Col: c.col + 1, Weight: w, PolyID: polyID})
		}

		winding += c.winding
		prevCol = c.col
		havePrev = true
	}
	return runs, edges
}

// mergeByColumn sorts cells by column and sums coverage/winding for
// records sharing a column.
func mergeByColumn(cells []boundaryCell) []boundaryCell {
	sorted := append([]boundaryCell(nil), cells...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].col < sorted[j].col })

	merged := make([]boundaryCell, 0, len(sorted))
	for _, c := range sorted {
		if n := len(merged); n > 0 && merged[n-1].col == c.col {
			merged[n-1].coverage += c.coverage
			merged[n-1].winding += c.winding
			continue
		}
		merged = append(merged, c)
	}
	return merged
}
