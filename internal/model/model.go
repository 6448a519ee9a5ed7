package model

import (
	"github.com/docfinder/docfinder-mcp/pkg/types"
)

// Model is the external, introspectable object model being indexed. The
// lookup core requires nothing beyond this capability: enumerate named
// entities, test callability, and best-effort render a signature and a
// short description.
//
// Implementations must be safe for concurrent read-only use; the core never
// mutates a model.
type Model interface {
	// Entities returns the model's public top-level entities (class-like
	// definitions and free functions) in declaration order.
	Entities() ([]Component, error)

	// Group returns the sub-namespace grouping with the given name. A
	// missing group is not an error; ok is false.
	Group(name string) (Component, bool)

	// Info reports metadata about the indexed library.
	Info() types.LibraryInfo
}

// Component is an opaque handle to one named container of members.
type Component interface {
	// Name is the component's declared name, case preserved.
	Name() string
	// Kind reports whether this is a class, a free function, or a
	// module-like group.
	Kind() types.ComponentKind
	// Members enumerates the component's public members in a stable
	// order. Free-function components have none.
	Members() []Member
}

// Member is one attribute of a component.
type Member interface {
	// Name is the bare member name.
	Name() string
	// Callable reports whether the member can be invoked.
	Callable() bool
	// Signature renders the member's call shape, e.g.
	// "(path string) (*Frame, error)". An error means introspection
	// failed; callers substitute the "(...)" sentinel rather than
	// dropping the member.
	Signature() (string, error)
	// Doc returns the member's documentation, possibly multi-line and
	// possibly empty.
	Doc() string
}

// component is the shared concrete Component used by both model
// implementations.
type component struct {
	name    string
	kind    types.ComponentKind
	members []Member
}

func (c *component) Name() string              { return c.name }
func (c *component) Kind() types.ComponentKind { return c.kind }
func (c *component) Members() []Member         { return c.members }

// member is the shared concrete Member. Signature strings are rendered at
// load time; sigErr records an introspection failure for the sentinel path.
type member struct {
	name     string
	callable bool
	sig      string
	sigErr   error
	doc      string
}

func (m *member) Name() string   { return m.name }
func (m *member) Callable() bool { return m.callable }
func (m *member) Doc() string    { return m.doc }

func (m *member) Signature() (string, error) {
	if m.sigErr != nil {
		return "", m.sigErr
	}
	return m.sig, nil
}
