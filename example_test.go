package axialmap_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/axialmap"
	"github.com/katalvlaran/axialmap/geom"
	"github.com/katalvlaran/axialmap/layout"
)

// ExampleMakeFewestLineMap builds the axial map of an empty rectangular room:
// its two diagonals touch all four corners and both are needed.
func ExampleMakeFewestLineMap() {
	walls, err := layout.Compose(layout.Rectangle(0, 0, 10, 6))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	ctx := context.Background()
	m, err := axialmap.MakeAllLineMap(ctx, walls, geom.Pt(5, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fl, err := axialmap.MakeFewestLineMap(ctx, m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("all lines:", m.Graph.Len())
	fmt.Println("minimal:", fl.Minimal.Len())
	fmt.Println("crossing:", fl.Minimal.Connected(0, 1))
	// Output:
	// all lines: 2
	// minimal: 2
	// crossing: true
}
