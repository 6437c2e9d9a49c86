// Package tidy cleans a wall drawing before it is turned into a polygon
// graph: segments too short to matter are dropped, every segment is put in
// canonical orientation, and exact duplicates (in either direction) are
// removed. Input order is otherwise preserved.
package tidy

import (
	"github.com/katalvlaran/axialmap/geom"
)

// Lines returns the tidied copy of lines. A segment shorter than
// scale·MaxDim(region) is dropped; scale is normally geom.ToleranceC.
//
// Complexity: O(n) time and memory.
func Lines(lines []geom.Line, region geom.Region, scale float64) []geom.Line {
	minLen := scale * geom.MaxDim(region)
	seen := make(map[geom.Line]struct{}, len(lines))
	out := make([]geom.Line, 0, len(lines))
	for _, l := range lines {
		l = geom.NewLine(l.Start, l.End)
		if !(l.Length() > minLen) {
			continue
		}
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}
