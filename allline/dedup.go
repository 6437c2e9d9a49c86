package allline

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/axialmap/explore"
	"github.com/katalvlaran/axialmap/geom"
)

// Dedup merges candidates whose endpoints agree within tol, in either order,
// so near-vertical lines whose canonical orientation flips still match.
// Each group of duplicates survives once, at the lowest index of the group,
// carrying the union of the group's key vertices. The surviving geometry is
// the group's leftmost line, so no two survivors are within tol of each
// other and Dedup(Dedup(c, tol), tol) equals Dedup(c, tol).
//
// Complexity: O(n log n) sorting plus the pairs whose start X coordinates
// differ by at most 2·tol.
func Dedup(cands []explore.Candidate, tol float64) []explore.Candidate {
	n := len(cands)
	if n == 0 {
		return nil
	}
	lines := make([]geom.Line, n)
	for i, c := range cands {
		lines[i] = geom.NewLine(c.Line.Start, c.Line.End)
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		if c := cmp.Compare(lines[a].Start.X, lines[b].Start.X); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	type group struct {
		at   int
		line geom.Line
		keys []int
	}
	taken := make([]bool, n)
	var groups []group
	for a, i := range order {
		if taken[i] {
			continue
		}
		taken[i] = true
		gr := group{at: i, line: lines[i], keys: append([]int(nil), cands[i].KeyVertices...)}
		for _, j := range order[a+1:] {
			if lines[j].Start.X-lines[i].Start.X > 2*tol {
				break
			}
			if taken[j] || !sameLine(lines[i], lines[j], tol) {
				continue
			}
			taken[j] = true
			gr.at = min(gr.at, j)
			gr.keys = append(gr.keys, cands[j].KeyVertices...)
		}
		groups = append(groups, gr)
	}
	slices.SortFunc(groups, func(a, b group) int { return cmp.Compare(a.at, b.at) })

	out := make([]explore.Candidate, len(groups))
	for k, gr := range groups {
		slices.Sort(gr.keys)
		out[k] = explore.Candidate{Line: gr.line, KeyVertices: slices.Compact(gr.keys)}
	}
	return out
}

// sameLine reports whether a and b join the same endpoints within tol.
func sameLine(a, b geom.Line, tol float64) bool {
	return geom.LinesApproxEq(a, b, tol) ||
		geom.ApproxEq(a.Start, b.End, tol) && geom.ApproxEq(a.End, b.Start, tol)
}

// Crop clips every candidate to r and drops those left shorter than tol.
func Crop(cands []explore.Candidate, r geom.Region, tol float64) []explore.Candidate {
	out := make([]explore.Candidate, 0, len(cands))
	for _, c := range cands {
		l, ok := geom.CropLine(c.Line, r)
		if !ok || l.Length() <= tol {
			continue
		}
		out = append(out, explore.Candidate{Line: l, KeyVertices: c.KeyVertices})
	}
	return out
}
