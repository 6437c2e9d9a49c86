// Package axialmap builds axial maps of wall drawings.
//
// An axial map is the set of longest straight lines of sight and movement
// that together touch every corner reachable from a seed point. Two
// entry points cover the whole process:
//
//	m, err := axialmap.MakeAllLineMap(ctx, walls, seed)      // every axial line
//	fl, err := axialmap.MakeFewestLineMap(ctx, m)            // the reduced sets
//
// The work is done by the subpackages:
//
//	geom/       points, segments, regions and tolerance-scaled predicates
//	pixel/      square-cell grid and per-cell id buckets
//	progress/   progress reporting and cooperative cancellation
//	tidy/       removes short and duplicate walls
//	polygon/    wall graph, corner classification, line-of-sight tests
//	explore/    corner-to-corner visibility walk from the seed
//	shapegraph/ line arena with a connection graph
//	allline/    deduplication, cropping, radial segments and divisions
//	minimise/   subset removal and fewest-longest reduction
//	config/     tunables and their YAML form
//	layout/     deterministic wall fixtures
//
// Errors:
//
// Construction failures (no lines, no seed vertex, an unresolvable vertex,
// no axial lines) are reported wrapped in ErrCannotBuild together with the
// specific cause. Cancellation, through the context or a
// progress.Communicator, is returned as progress.ErrCancelled and never
// wrapped. Degenerate geometry is not an error; it only changes which lines
// are found. Walls with a NaN or infinite coordinate are rejected with
// polygon.ErrUnresolvedVertex.
//
// Free-standing walls:
//
// The ends of a wall touching nothing else are not corners by default. A
// room whose only interior feature is such a wall then yields no axial lines
// (allline.ErrNoAxialLines); set Settings.FreeEnds (free_ends in YAML) and
// pass it through WithSettings to let those ends anchor lines.
//
// Logging:
//
// The packages are silent by default. SetLogger installs a *slog.Logger;
// milestones are logged at Info and per-phase counts at Debug.
package axialmap
