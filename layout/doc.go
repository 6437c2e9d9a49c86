// Package layout draws wall fixtures for tests, examples and benchmarks.
//
// A drawing is a sequence of Constructors applied in order by Compose:
//
//	walls, err := layout.Compose(
//		layout.Rectangle(0, 0, 10, 6),
//		layout.Wall(geom.Pt(3, 3), geom.Pt(7, 3)),
//	)
//
// Output is deterministic: the same constructors in the same order always
// yield the same walls in the same order, each in canonical orientation.
// Constructors validate their parameters and return sentinel errors; they
// never panic.
package layout
