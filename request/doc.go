// Package request turns the flat, loosely-typed parameter map accepted by the
// tool surface into strongly-typed, fully-defaulted [Arguments], and validates
// them against business rules.
//
// Parsing and validation are deliberately separate passes: [Parse] never
// rejects malformed values (it defaults them), and [Validate] accumulates
// every rule violation instead of stopping at the first one, so the caller
// can report all problems in a single round trip.
package request
