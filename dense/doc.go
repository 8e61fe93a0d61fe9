// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package dense offers the reference backend the sparse sweep in
// internal/scan is checked against during development: a classic
// active-edge-table scanline flood fill over a dense float matrix,
// with vertical supersampling standing in for exact analytical
// boundary coverage. It is deliberately simple and O(rows x edges);
// nothing in gridburn's public API calls it.
package dense
