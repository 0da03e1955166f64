// Package balance computes weight, moment and centre of gravity for a load
// sheet against an aircraft profile's arm table.
package balance
