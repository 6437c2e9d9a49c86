// Package polygon turns a tidied wall drawing into the vertex graph the
// visibility explorer walks, and classifies each vertex as seen from a
// given point of open space.
//
// What:
//
//   - Build registers every segment endpoint as a vertex, links the two
//     endpoints of each segment, sorts vertices and their neighbour lists by
//     point, labels connected components (polygons), and indexes vertices
//     and walls in a pixel grid.
//   - Blocked answers whether a sight line properly crosses a wall.
//   - SeedVertex spirals outward from a point to the nearest vertex that is
//     visible and classifiable from it.
//   - Classify ("make vertex") picks the two neighbour edges bounding the
//     open wedge around the viewing direction and decides whether the corner
//     is convex (seen from inside) or concave, and whether a line glancing
//     off it can continue.
//
// Vertex kinds:
//
//   - convex: the open wedge is narrower than π; it bounds axial lines.
//   - concave, axial: the continuation of the viewing direction stays in
//     open space, so a line may graze the corner and carry on.
//   - concave, non-axial: the continuation runs into the wall.
//
// A vertex with fewer than two neighbours is not classifiable unless free
// ends are enabled (WithFreeEnds), in which case the end of a free-standing
// wall is treated as a concave corner of zero width.
//
// Complexity:
//
//   - Build: O(E log E) for E segments.
//   - Blocked: O(k) for k walls and vertices sharing cells with the line.
//   - Classify: O(d) for d neighbours.
//
// Errors:
//
//   - ErrNoLines: nothing to build from.
//   - ErrUnresolvedVertex: an endpoint could not be matched to a vertex.
//   - ErrNoSeedVertex: no vertex is visible and classifiable from the seed.
//   - ErrOptionViolation: invalid option.
package polygon
