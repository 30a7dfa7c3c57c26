// Package diagnostic classifies and accumulates the three error kinds the
// predicate chooser can raise: input errors, resource exhaustion, and
// internal-consistency violations. Only the last of these is non-fatal —
// it is reported and the offending segment falls back to a wildcard.
package diagnostic
