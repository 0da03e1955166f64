// Package report orchestrates one trim sheet run end to end: load sheet,
// profile lookup, balance computation, envelope check, and rendering of the
// output artifact under its deterministic name.
package report
