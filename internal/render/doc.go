// Package render produces the printable trim sheet: the calculation table,
// totals and verdict, and the envelope chart with the loading points ruled
// across it.
//
// Output is assembled fully in memory and written via a temp file plus
// rename, so an interrupted run never leaves a corrupt artifact.
package render
