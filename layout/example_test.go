package layout_test

import (
	"fmt"

	"github.com/katalvlaran/axialmap/geom"
	"github.com/katalvlaran/axialmap/layout"
)

// ExampleCompose draws a room with a free-standing wall in it.
func ExampleCompose() {
	walls, err := layout.Compose(
		layout.Rectangle(0, 0, 10, 6),
		layout.Wall(geom.Pt(7, 3), geom.Pt(3, 3)),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("walls:", len(walls))
	w := walls[len(walls)-1]
	fmt.Printf("last: (%g,%g)-(%g,%g)\n", w.Start.X, w.Start.Y, w.End.X, w.End.Y)
	// Output:
	// walls: 5
	// last: (3,3)-(7,3)
}
