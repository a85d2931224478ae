// Package io provides JSON import and export for checker problems.
//
// # Overview
//
// The textual wire protocol is compact but opaque; this package offers a
// JSON document equivalent for:
//
//   - Integration with external tools (computer algebra systems) that
//     produce orbit data as structured output
//   - Storing problems alongside their trial lists in one file
//   - Round-trip preservation: import, run, export, and re-import
//     identically
//
// # JSON Format
//
//	{
//	  "n": 4,
//	  "k": 2,
//	  "coset_reps": [
//	    [1, 2, 3, 4],
//	    [2, 3, 4, 1],
//	    [3, 4, 1, 2],
//	    [4, 1, 2, 3]
//	  ],
//	  "adjacency": [2, 4],
//	  "trials": [[1], [2]]
//	}
//
// coset_reps holds one image list per point, in point order; each list
// has n entries. adjacency lists the positions, in the lexicographic
// table of (k-1)-subsets, of the subsets S with S ∪ {base point} in the
// orbit. trials holds the short representatives to run, in order; the
// textual protocol's zero-length terminator has no JSON counterpart.
//
// # Import
//
// Use [ImportJSON] to read a problem from a file path, or [ReadJSON] to
// read from any io.Reader:
//
//	p, err := io.ImportJSON("problem.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Both functions validate the document shape (dimensions, table sizes).
// Orbit-level validation happens when the problem is turned into tables
// with Problem.Orbit.
//
// # Export
//
// Use [ExportJSON] to write a problem to a file, or [WriteJSON] to write
// to any io.Writer. The export includes the trial list, so a document
// can be re-imported and re-run identically.
package io
