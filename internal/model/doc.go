// Package model abstracts the external object model being indexed: a set
// of named components, each exposing public members with a name, a
// callability flag, a best-effort call signature, and documentation.
//
// Two implementations are provided:
//
//   - SourceModel parses a Go library's source tree with go/parser.
//     Exported types become class components (methods and documented
//     fields as members), exported top-level functions become free-function
//     components, and immediate sub-packages become module-like groupings.
//
//   - ManifestModel loads a precomputed JSON or YAML manifest of
//     component/member metadata, decoupling the lookup core from any
//     particular reflection facility.
//
// Both load once and are read-only afterwards, so concurrent lookups need
// no coordination. The only fatal condition either can report is total
// unavailability of the underlying model (types.ErrModelUnavailable);
// individual missing sub-namespaces and unrenderable signatures degrade
// per the lookup core's sentinel rules.
package model
