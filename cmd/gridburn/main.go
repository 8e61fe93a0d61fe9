// Command gridburn sweeps the polygons in a GeoJSON file against a
// uniform grid and prints the resulting runs and edges.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"golang.org/x/image/draw"

	"github.com/gogpu/gridburn"
	"github.com/gogpu/gridburn/dense"
	"github.com/gogpu/gridburn/geom/orbadapter"
	"github.com/gogpu/gridburn/internal/grid"
	"github.com/gogpu/gridburn/internal/scan"
)

func main() {
	var (
		input    = flag.String("input", "", "GeoJSON file containing a FeatureCollection of polygon geometries")
		ncols    = flag.Int("cols", 100, "grid column count")
		nrows    = flag.Int("rows", 100, "grid row count")
		xmin     = flag.Float64("xmin", 0, "grid extent west bound")
		ymin     = flag.Float64("ymin", 0, "grid extent south bound")
		xmax     = flag.Float64("xmax", 100, "grid extent east bound")
		ymax     = flag.Float64("ymax", 100, "grid extent north bound")
		debugMat = flag.String("debug-matrix", "", "also fill polygons densely and write the coverage matrix as JSON to this file")
		debugPNG = flag.String("debug-png", "", "also fill polygons densely and write the coverage matrix as an upscaled grayscale PNG to this file")
		pngScale = flag.Int("debug-png-scale", 8, "pixels per grid cell in -debug-png output")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("gridburn: -input is required")
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("gridburn: reading input: %v", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		log.Fatalf("gridburn: parsing GeoJSON: %v", err)
	}

	polygons := make([]any, 0, len(fc.Features))
	for _, f := range fc.Features {
		switch f.Geometry.(type) {
		case orb.Polygon, orb.MultiPolygon, orb.Collection:
			polygons = append(polygons, f.Geometry)
		default:
			log.Printf("gridburn: skipping feature with unsupported geometry type %T", f.Geometry)
		}
	}

	extent := gridburn.Extent{Xmin: *xmin, Ymin: *ymin, Xmax: *xmax, Ymax: *ymax}
	runs, edges, skipped, err := gridburn.ScanBurn(orbadapter.Provider{}, polygons, extent, *ncols, *nrows)
	if err != nil {
		log.Fatalf("gridburn: %v", err)
	}
	for _, s := range skipped {
		log.Printf("gridburn: skipped polygon %d: %v", s.PolyID, s.Reason)
	}

	fmt.Printf("runs: %d, edges: %d, skipped: %d\n", len(runs), len(edges), len(skipped))
	for _, r := range runs {
		fmt.Printf("RUN  row=%d cols=[%d,%d] poly=%d\n", r.Row, r.ColStart, r.ColEnd, r.PolyID)
	}
	for _, e := range edges {
		fmt.Printf("EDGE row=%d col=%d weight=%.6f poly=%d\n", e.Row, e.Col, e.Weight, e.PolyID)
	}

	var total dense.Matrix
	if *debugMat != "" || *debugPNG != "" {
		total, err = fillDebugMatrix(polygons, extent, *ncols, *nrows)
		if err != nil {
			log.Fatalf("gridburn: filling debug matrix: %v", err)
		}
	}
	if *debugMat != "" {
		if err := writeDebugMatrixJSON(*debugMat, total); err != nil {
			log.Fatalf("gridburn: writing debug matrix: %v", err)
		}
	}
	if *debugPNG != "" {
		if err := writeDebugMatrixPNG(*debugPNG, total, *pngScale); err != nil {
			log.Fatalf("gridburn: writing debug png: %v", err)
		}
	}
}

// fillDebugMatrix runs every polygon's rings through the dense
// reference backend and sums the resulting matrices, for comparing
// against the sparse runs/edges above on small inputs.
func fillDebugMatrix(polygons []any, extent gridburn.Extent, ncols, nrows int) (dense.Matrix, error) {
	box := grid.Box{Xmin: extent.Xmin, Ymin: extent.Ymin, Xmax: extent.Xmax, Ymax: extent.Ymax}
	total := make(dense.Matrix, nrows)
	for i := range total {
		total[i] = make([]float64, ncols)
	}

	provider := orbadapter.Provider{}
	for _, g := range polygons {
		rings, err := collectRings(provider, g)
		if err != nil {
			log.Printf("gridburn: debug matrix: skipping polygon: %v", err)
			continue
		}
		m := dense.Fill(rings, box, ncols, nrows)
		for r := range total {
			for c := range total[r] {
				total[r][c] += m[r][c]
			}
		}
	}
	return total, nil
}

func writeDebugMatrixJSON(path string, total dense.Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(total)
}

// writeDebugMatrixPNG renders the coverage matrix as a grayscale PNG,
// one source pixel per grid cell, then upscales it by scale using
// x/image/draw's bilinear interpolation so boundary antialiasing
// survives the magnification instead of producing hard pixel blocks.
func writeDebugMatrixPNG(path string, total dense.Matrix, scale int) error {
	if scale < 1 {
		scale = 1
	}
	nrows := len(total)
	if nrows == 0 {
		return fmt.Errorf("gridburn: empty debug matrix")
	}
	ncols := len(total[0])

	src := image.NewGray(image.Rect(0, 0, ncols, nrows))
	for r, row := range total {
		for c, v := range row {
			if v > 1 {
				v = 1
			}
			src.SetGray(c, r, color.Gray{Y: uint8(v * 255)})
		}
	}

	dst := image.NewGray(image.Rect(0, 0, ncols*scale, nrows*scale))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, dst)
}

// collectRings flattens a Polygon/MultiPolygon/GeometryCollection into
// the plain ring data the dense backend consumes, mirroring the
// decomposition ScanBurn performs internally.
func collectRings(provider gridburn.GeometryProvider, g any) ([]scan.RingInput, error) {
	switch provider.TypeOf(g) {
	case gridburn.TypePolygon:
		return ringsOf(provider, g)
	case gridburn.TypeMultiPolygon, gridburn.TypeGeometryCollection:
		var all []scan.RingInput
		n := provider.NumGeometries(g)
		for i := 0; i < n; i++ {
			rings, err := collectRings(provider, provider.NthGeometry(g, i))
			if err != nil {
				return nil, err
			}
			all = append(all, rings...)
		}
		return all, nil
	default:
		return nil, fmt.Errorf("unsupported geometry type %T", g)
	}
}

func ringsOf(provider gridburn.GeometryProvider, g any) ([]scan.RingInput, error) {
	ext := provider.ExteriorRing(g)
	coords, err := provider.RingCoords(ext)
	if err != nil {
		return nil, err
	}
	rings := []scan.RingInput{toRing(coords, false)}
	n := provider.NumInteriorRings(g)
	for i := 0; i < n; i++ {
		hc, err := provider.RingCoords(provider.InteriorRing(g, i))
		if err != nil {
			return nil, err
		}
		rings = append(rings, toRing(hc, true))
	}
	return rings, nil
}

func toRing(coords []gridburn.Coordinate, hole bool) scan.RingInput {
	gc := make([]grid.Coordinate, len(coords))
	for i, c := range coords {
		gc[i] = grid.Coordinate{X: c.X, Y: c.Y}
	}
	return scan.RingInput{Coords: gc, Hole: hole}
}
