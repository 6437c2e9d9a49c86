// Package minimise reduces an all-line map to a fewest-line map.
//
// Reduce runs two ordered phases over a private copy of the map's
// connections; the Map itself is never modified.
//
//   - Phase A (subsets) repeatedly removes lines whose neighbours are all
//     reached through one of their neighbours, until a full pass removes
//     nothing.
//   - Phase B (fewest longest) walks the survivors once, shortest and least
//     connected first, and removes what the guards allow.
//
// A line is vital, and never removed, when it is the last live line of one of
// its key vertices, or when it is the last line across a radial segment that
// no connected pair of other lines closes off.
//
// Every line is in exactly one State: Live, Vital or Removed. Vital and
// Removed are final.
//
// The phases share coverage counters that every removal updates, so they run
// on one goroutine; splitting a phase across goroutines would race on them.
package minimise
