// Package allline assembles the all-line map from an exploration result.
//
// Steps:
//
//  1. Dedup merges candidates whose endpoints agree within
//     max(width,height)·ToleranceB; the survivor keeps the lower index and
//     the union of the key vertices.
//  2. Every line is cropped to the region grown by the crop margin.
//  3. The lines go into a shapegraph.Graph and are connected.
//  4. Radial lines are sorted by key; consecutive radials of one corner with
//     distinct angles form radial segments.
//  5. Divisions: each poly connector is walked through the shape index and
//     every axial line meeting it that also cuts its radial becomes a
//     divisor of that radial. A line covers a segment when it divides both
//     of the segment's radials.
//
// The Map is read-only once built; the minimiser works on its own copies.
package allline
