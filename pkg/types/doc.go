// Package types defines the shared vocabulary of the docfinder core: API
// records, caller-facing result shapes, and sentinel errors.
//
// A Record is the atomic searchable unit, keyed by its qualified name
// "<component>.<member>". Records carry a best-effort rendered call shape
// and the first line of the member's documentation. They are transient:
// every lookup call rebuilds the full record list from the live object
// model, so no type in this package has identity across calls.
package types
