// Package envelope tests a computed (CoG, weight) point against an aircraft
// profile's certified envelope polygon.
//
// Classification uses an even-odd ray cast with an inclusive boundary rule:
// points on an edge or vertex count as in limits.
package envelope
