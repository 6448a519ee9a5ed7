// Package lookup implements the multi-strategy resolution engine over the
// flat API record index.
//
// # Strategy selection
//
// Search evaluates mutually exclusive strategies in priority order:
//
//  1. exact_components: only component filters given; each resolves
//     case-insensitively to its canonical name and expands to all of that
//     component's records.
//  2. exact_methods: only method filters given; case-folded exact match
//     against bare member names.
//  3. component_and_method: both given; the intersection.
//  4. Fuzzy fallback: fires if and only if at least one filter was
//     supplied and strategies 1-3 returned nothing. Ratio-based near
//     matching runs independently over the distinct lowercase component
//     and member name universes (cutoff 0.6; 3 component / 5 method
//     candidates per term) and every near-match expands to its records.
//
// Deduplication by qualified name preserves first-seen order, and the
// final list is truncated to the result cap.
//
// # Reference lookup
//
// Lookup treats each token independently: tokens containing "." match
// qualified names exactly, bare tokens expand whole components. With no
// tokens, a free-text query substring-matches qualified names and
// descriptions, then falls back to a deliberately permissive fuzzy pass
// (cutoff 0.1) over member names. Reference resolution ignores the result
// cap; free-text resolution enforces it.
//
// Every operation rebuilds the index from the live object model, so
// results are always fresh and calls are freely parallelizable.
package lookup
