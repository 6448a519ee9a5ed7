// Package index builds the flat record list the lookup engine resolves
// against. The index has no lifecycle beyond one query: it is rebuilt from
// the live object model on every call, trading speed for freshness.
package index
