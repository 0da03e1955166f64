// Package commands defines the trimsheet CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - report  Compute weight and balance and write the trim sheet PDF
//   - check   Print totals, CoG and the envelope verdict
//   - fleet   List supported aircraft
//
// # Implementation
//
// The root command loads optional .env defaults and builds the dependency
// graph (profile registry, load sheet loader, calculator, envelope checker,
// renderer) before any subcommand runs, so handlers share one app context.
package commands
