// Package discovery enumerates the indexable components of an object
// model: public class-like entities, free functions, and a fixed
// allow-list of sub-namespace groupings. The result is an ordered set;
// downstream deduplication and result ordering both lean on discovery
// order, so it must be deterministic for an unchanged model.
package discovery
