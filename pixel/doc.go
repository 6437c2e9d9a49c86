// Package pixel provides the pixelated spatial index shared by the polygon
// builder, the visibility explorer and the line-graph container.
//
// What:
//
//   - Grid: a rectangular lattice of equal square cells laid over a region,
//     addressed row-major exactly like a raster: Index(x,y) = y*Cols + x.
//   - Rasterise: every cell a segment passes through (supercover walk).
//   - Buckets: per-cell id lists, filled by AddLine/AddPoint.
//   - Ring: the cells at a given Chebyshev distance from a centre, used to
//     spiral outward when looking for the nearest candidate.
//
// Complexity:
//
//   - NewGrid: O(1).
//   - Rasterise: O(Cols + Rows) per segment.
//   - Ring: O(r) cells for ring r.
//
// Errors:
//
//   - ErrEmptyRegion: the region has no area to index.
//   - ErrOptionViolation: a non-positive resolution was requested.
package pixel
