// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package core provides the run-length-encoded coverage buffer the
// dense reference backend uses to accumulate per-row alpha coverage
// during its scanline flood-fill, before compositing a row into the
// backend's dense float matrix.
//
// AlphaRuns stores runs of constant coverage rather than one value per
// pixel, which keeps a row's bookkeeping proportional to the number of
// edge crossings on that row rather than the row's width.
package core
