// Package geom provides the planar primitives the axial map engine is built on:
// points and regions (aliases of github.com/golang/geo/r2), normalised line
// segments, and the tolerance-aware predicates used by every later stage.
//
// What:
//
//   - Line: a segment whose Start sorts before its End (x first, then y).
//   - Intersection tests: IntersectRegion, Intersects, IntersectDistinguish.
//   - Construction: IntersectionPoint, CropLine, RayToRegion.
//   - Region helpers: RegionOf, Diagonal, MaxDim, Grow.
//
// Tolerances:
//
//   - ToleranceA (1e-9): intersection and classification tolerances, scaled
//     by a length (segment length or region diagonal).
//   - ToleranceB (1e-12): duplicate-line merging, scaled by the region's
//     larger dimension.
//   - ToleranceC (1e-6): tidying of near-zero segments.
//
// Every predicate takes its tolerance explicitly, already scaled by the caller.
package geom
