package index

import (
	"strings"

	"github.com/docfinder/docfinder-mcp/internal/discovery"
	"github.com/docfinder/docfinder-mcp/pkg/types"
)

// SignatureUnavailable is the sentinel recorded when a member's call shape
// cannot be rendered. Rendering failures never drop a record.
const SignatureUnavailable = "(...)"

// privateMarker prefixes implementation-private member names, which are
// never surfaced.
const privateMarker = "_"

// Build constructs the flat, de-duplicated record list for one query.
// Construction order is discovery order crossed with member enumeration
// order; duplicates by qualified name collapse to the first occurrence.
//
// A member is included only if it is callable, or carries a non-empty
// description; everything else is noise.
func Build(set *discovery.Set) []types.Record {
	var records []types.Record
	seen := make(map[string]struct{})

	for _, compName := range set.Names() {
		comp, ok := set.Get(compName)
		if !ok {
			continue
		}

		for _, mem := range comp.Members() {
			name := mem.Name()
			if strings.HasPrefix(name, privateMarker) {
				continue
			}

			description := firstLine(mem.Doc())
			callable := mem.Callable()
			if !callable && description == "" {
				continue
			}

			signature := ""
			if callable {
				sig, err := mem.Signature()
				if err != nil {
					signature = SignatureUnavailable
				} else {
					signature = sig
				}
			}

			qualified := compName + "." + name
			if _, dup := seen[qualified]; dup {
				continue
			}
			seen[qualified] = struct{}{}

			records = append(records, types.Record{
				QualifiedName: qualified,
				Component:     compName,
				Method:        name,
				Signature:     signature,
				Description:   description,
			})
		}
	}

	return records
}

// firstLine returns the first non-blank line of a documentation string.
func firstLine(doc string) string {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return ""
	}
	if i := strings.IndexByte(doc, '\n'); i >= 0 {
		return strings.TrimSpace(doc[:i])
	}
	return doc
}
