package layout

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/axialmap/geom"
)

var (
	// ErrTooFewCells indicates a count parameter below its minimum.
	ErrTooFewCells = errors.New("layout: parameter too small")

	// ErrDegenerate indicates a shape with no extent (zero width, height or length).
	ErrDegenerate = errors.New("layout: degenerate shape")

	// ErrConstructFailed indicates a nil constructor.
	ErrConstructFailed = errors.New("layout: construction failed")
)

// Drawing accumulates walls.
type Drawing struct {
	walls []geom.Line
}

// Walls returns the walls drawn so far.
func (d *Drawing) Walls() []geom.Line { return d.walls }

func (d *Drawing) add(a, b geom.Point) {
	d.walls = append(d.walls, geom.NewLine(a, b))
}

// Constructor draws into d.
type Constructor func(d *Drawing) error

// Compose applies cons in order and returns the walls.
// Any constructor error is wrapped with the index of its constructor.
func Compose(cons ...Constructor) ([]geom.Line, error) {
	d := &Drawing{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("layout: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d); err != nil {
			return nil, fmt.Errorf("layout: constructor %d: %w", i, err)
		}
	}
	return d.walls, nil
}

// Rectangle draws the outline with corners (x0,y0) and (x1,y1),
// counter-clockwise from (x0,y0).
func Rectangle(x0, y0, x1, y1 float64) Constructor {
	return func(d *Drawing) error {
		if x0 == x1 || y0 == y1 {
			return fmt.Errorf("Rectangle(%g,%g,%g,%g): %w", x0, y0, x1, y1, ErrDegenerate)
		}
		outline(d, geom.Pt(x0, y0), geom.Pt(x1, y0), geom.Pt(x1, y1), geom.Pt(x0, y1))
		return nil
	}
}

// Block draws a w×h rectangular obstacle centred on c.
func Block(c geom.Point, w, h float64) Constructor {
	return func(d *Drawing) error {
		if !(w > 0 && h > 0) {
			return fmt.Errorf("Block(%v, %g, %g): %w", c, w, h, ErrDegenerate)
		}
		return Rectangle(c.X-w/2, c.Y-h/2, c.X+w/2, c.Y+h/2)(d)
	}
}

// Wall draws a single free-standing wall.
func Wall(a, b geom.Point) Constructor {
	return func(d *Drawing) error {
		if a == b {
			return fmt.Errorf("Wall(%v, %v): %w", a, b, ErrDegenerate)
		}
		d.add(a, b)
		return nil
	}
}

// Polygon draws the closed outline through pts in order.
func Polygon(pts ...geom.Point) Constructor {
	return func(d *Drawing) error {
		if len(pts) < 3 {
			return fmt.Errorf("Polygon: %d points (need ≥ 3): %w", len(pts), ErrTooFewCells)
		}
		for i := range pts {
			if pts[i] == pts[(i+1)%len(pts)] {
				return fmt.Errorf("Polygon: repeated point %v: %w", pts[i], ErrDegenerate)
			}
		}
		outline(d, pts...)
		return nil
	}
}

// BlockGrid draws a room of rows×cols square cells of side pitch, with a
// square block of side size centred in every cell.
func BlockGrid(rows, cols int, pitch, size float64) Constructor {
	return func(d *Drawing) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("BlockGrid: rows=%d, cols=%d (each must be ≥ 1): %w", rows, cols, ErrTooFewCells)
		}
		if !(size > 0 && size < pitch) {
			return fmt.Errorf("BlockGrid: size=%g, pitch=%g (need 0 < size < pitch): %w", size, pitch, ErrDegenerate)
		}
		if err := Rectangle(0, 0, float64(cols)*pitch, float64(rows)*pitch)(d); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				centre := geom.Pt((float64(c)+0.5)*pitch, (float64(r)+0.5)*pitch)
				if err := Block(centre, size, size)(d); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

func outline(d *Drawing, pts ...geom.Point) {
	for i, p := range pts {
		d.add(p, pts[(i+1)%len(pts)])
	}
}
