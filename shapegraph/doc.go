// Package shapegraph provides the line-graph container axial maps are stored
// in: an arena of segments with stable integer ids, their key vertices, and
// sorted adjacency lists of the segments each one meets.
//
// What:
//
//   - AddLine appends a segment and returns its id (0, 1, 2, ...).
//   - MakeConnections rebuilds every adjacency list in bulk through a pixel
//     shape index: two lines are connected when they touch or cross within
//     ToleranceA times the longer length.
//   - Connections, Degree and Connected query the result; Connections never
//     contains the line itself.
//   - Subset copies chosen lines into a fresh graph with rebuilt connections.
//   - Attributes exposes per-line connectivity and length.
//
// Concurrency:
//
//   - A single sync.RWMutex guards the arena; reads may run concurrently
//     with each other, mutations are serialised.
//
// Determinism:
//
//   - Ids follow insertion order; adjacency lists are ascending.
//
// Complexity:
//
//   - AddLine: O(1) amortised.
//   - MakeConnections: O(L·(Cols+Rows) + P) for L lines and P candidate pairs
//     sharing a cell.
//   - Connected: O(log d).
package shapegraph
