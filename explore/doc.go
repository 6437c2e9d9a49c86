// Package explore walks the polygon graph from a seed point, corner to
// corner, and collects everything the all-line map is assembled from.
//
// What:
//
//   - Candidates: axial lines spanning mutually visible corners. A line ends
//     at a convex corner; past a glancing concave corner it is extended to
//     the first wall (or the region boundary) it meets.
//   - Radial lines: sight lines from a processed corner to a corner of a
//     different polygon, keyed by (vertex key, angle, segment end). They
//     partition the open wedge at the corner into radial segments.
//   - Poly connectors: the same sight lines as plain segments, used to find
//     which axial lines cut each radial.
//
// How:
//
//   - The open set is a max-heap of classified vertices keyed by
//     polygon.Key; a key is processed at most once (handled set).
//   - Processing v classifies every vertex w visible from v through an
//     unblocked sight line, as seen from v, and queues the new keys.
//   - When the open set runs dry the walker re-seeds with the next vertex
//     visible from the seed point whose key is still unhandled, so separate
//     visibility clusters reachable from the seed are all explored.
//
// Complexity:
//
//   - O(K·V·k) for K processed keys, V vertices and k the cost of one
//     blocked-sight test.
//
// Errors:
//
//   - ErrGraphNil, ErrOptionViolation.
//   - polygon.ErrNoSeedVertex (wrapped) when the seed sees nothing.
//   - ErrSeedUnclassifiable when the seed vertex cannot be classified.
//   - progress.ErrCancelled when the communicator cancels.
package explore
