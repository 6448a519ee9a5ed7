// Package mcp exposes the lookup engine over the Model Context Protocol.
//
// Six tools are registered:
//
//   - list_components: canonical component names in discovery order
//   - search_api: multi-strategy search by component and method filters
//   - lookup_api: reference-style or free-text lookup
//   - verify_api: exact existence check for a name or full signature
//   - get_library_version: metadata about the indexed library
//   - debug_components: discovery diagnostics
//
// Handlers return well-formed JSON for every recoverable condition; the
// only tool-level errors are invalid parameters and total unavailability
// of the object model. Stdout carries protocol framing, so nothing here
// may print to it.
package mcp
