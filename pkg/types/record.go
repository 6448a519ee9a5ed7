package types

// ComponentKind classifies a discovered component.
type ComponentKind string

const (
	KindClass    ComponentKind = "class"    // named container of methods and fields
	KindFunction ComponentKind = "function" // free function in the library's top-level namespace
	KindGroup    ComponentKind = "group"    // module-like sub-namespace grouping
)

// Record is the atomic searchable unit: one callable or described member of
// one component. Records are transient, call-scoped values rebuilt from the
// live object model on every lookup.
type Record struct {
	// QualifiedName is "<component>.<member>", unique within one index build.
	QualifiedName string
	// Component is the owning component's canonical name, case preserved as
	// declared.
	Component string
	// Method is the bare member name.
	Method string
	// Signature is the rendered call shape, e.g. "(name string) error".
	// "(...)" when introspection failed, "" when the member is a
	// non-callable attribute.
	Signature string
	// Description is the first non-blank line of the member's
	// documentation, "" when the member is undocumented.
	Description string
}

// Rendered returns the fully rendered signature string,
// "Component.Method(args) results". For non-callable members this is just
// the qualified name.
func (r Record) Rendered() string {
	return r.QualifiedName + r.Signature
}

// View projects the record into its caller-facing shape.
func (r Record) View() RecordView {
	return RecordView{
		Name:        r.QualifiedName,
		Signature:   r.Rendered(),
		Description: r.Description,
	}
}
