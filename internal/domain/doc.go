// Package domain defines the core weight-and-balance types shared across the
// application: aircraft profiles, load sheets, balance results, envelope
// verdicts, the error taxonomy, and the service interfaces the CLI is wired
// against.
package domain
