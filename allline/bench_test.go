package allline_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/axialmap/allline"
	"github.com/katalvlaran/axialmap/explore"
	"github.com/katalvlaran/axialmap/geom"
	"github.com/katalvlaran/axialmap/layout"
	"github.com/katalvlaran/axialmap/polygon"
)

// BenchmarkAssemble measures assembly of a 3×3 block grid's exploration.
func BenchmarkAssemble(b *testing.B) {
	walls, err := layout.Compose(layout.BlockGrid(3, 3, 4, 2))
	if err != nil {
		b.Fatalf("setup Compose failed: %v", err)
	}
	region := geom.RegionOf(walls)
	g, err := polygon.Build(walls, region)
	if err != nil {
		b.Fatalf("setup Build failed: %v", err)
	}
	res, err := explore.Explore(context.Background(), g, geom.Pt(0.5, 0.5))
	if err != nil {
		b.Fatalf("setup Explore failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := allline.Assemble(context.Background(), region, res); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDedup measures merging of a candidate list where every line
// appears twice.
func BenchmarkDedup(b *testing.B) {
	const n = 2000
	cands := make([]explore.Candidate, 0, 2*n)
	for i := 0; i < n; i++ {
		l := geom.NewLine(geom.Pt(float64(i), 0), geom.Pt(float64(i)+5, 10))
		cands = append(cands, explore.Candidate{Line: l, KeyVertices: []int{i}})
		cands = append(cands, explore.Candidate{Line: geom.Line{Start: l.End, End: l.Start}, KeyVertices: []int{i + n}})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = allline.Dedup(cands, 1e-9)
	}
}
