package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/docfinder/docfinder-mcp/pkg/types"
)

// Manifest is the on-disk schema for a precomputed object model: a
// versioned listing of component and member metadata generated offline.
// Manifests decouple the lookup core from any particular reflection API and
// let docfinder serve libraries written in any language.
type Manifest struct {
	Library    ManifestLibrary     `json:"library" yaml:"library"`
	Components []ManifestComponent `json:"components" yaml:"components"`
	Groups     []ManifestComponent `json:"groups,omitempty" yaml:"groups,omitempty"`
}

// ManifestLibrary is the manifest's metadata header.
type ManifestLibrary struct {
	Name     string            `json:"name" yaml:"name"`
	Version  string            `json:"version,omitempty" yaml:"version,omitempty"`
	Location string            `json:"location,omitempty" yaml:"location,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// ManifestComponent describes one component. Kind defaults to "class";
// entries under "groups" are always module-like groupings regardless of
// their declared kind.
type ManifestComponent struct {
	Name    string           `json:"name" yaml:"name"`
	Kind    string           `json:"kind,omitempty" yaml:"kind,omitempty"`
	Members []ManifestMember `json:"members,omitempty" yaml:"members,omitempty"`
}

// ManifestMember describes one member. Callable defaults to true. An empty
// signature on a callable member means the generator could not render one;
// the index substitutes the "(...)" sentinel.
type ManifestMember struct {
	Name      string `json:"name" yaml:"name"`
	Callable  *bool  `json:"callable,omitempty" yaml:"callable,omitempty"`
	Signature string `json:"signature,omitempty" yaml:"signature,omitempty"`
	Doc       string `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// ManifestModel serves a Manifest through the Model interface.
type ManifestModel struct {
	info     types.LibraryInfo
	entities []Component
	groups   map[string]Component
}

// NewManifestModel builds a model from an in-memory manifest.
func NewManifestModel(m *Manifest) *ManifestModel {
	mm := &ManifestModel{
		info: types.LibraryInfo{
			Name:     m.Library.Name,
			Version:  m.Library.Version,
			Location: m.Library.Location,
			Metadata: m.Library.Metadata,
		},
		groups: make(map[string]Component, len(m.Groups)),
	}
	if mm.info.Version == "" {
		mm.info.Version = "unknown"
	}

	for i := range m.Components {
		mm.entities = append(mm.entities, manifestComponent(&m.Components[i], ""))
	}
	for i := range m.Groups {
		grp := manifestComponent(&m.Groups[i], types.KindGroup)
		mm.groups[m.Groups[i].Name] = grp
	}

	return mm
}

// LoadManifest reads a manifest from a JSON or YAML file, chosen by
// extension. A manifest that cannot be read or decoded is fatal: it is the
// object model.
func LoadManifest(path string) (*ManifestModel, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrModelUnavailable, err)
	}

	var manifest Manifest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &manifest)
	default:
		err = json.Unmarshal(content, &manifest)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", types.ErrModelUnavailable, path, err)
	}

	return NewManifestModel(&manifest), nil
}

// Entities returns the manifest's components in listed order.
func (m *ManifestModel) Entities() ([]Component, error) {
	return m.entities, nil
}

// Group returns the named grouping, if the manifest declares one.
func (m *ManifestModel) Group(name string) (Component, bool) {
	grp, ok := m.groups[name]
	return grp, ok
}

// Info reports the manifest's library header.
func (m *ManifestModel) Info() types.LibraryInfo {
	return m.info
}

// manifestComponent converts one manifest entry. forceKind overrides the
// declared kind for entries listed under "groups".
func manifestComponent(mc *ManifestComponent, forceKind types.ComponentKind) Component {
	kind := forceKind
	if kind == "" {
		switch mc.Kind {
		case string(types.KindFunction):
			kind = types.KindFunction
		case string(types.KindGroup):
			kind = types.KindGroup
		default:
			kind = types.KindClass
		}
	}

	members := make([]Member, 0, len(mc.Members))
	for _, mm := range mc.Members {
		callable := true
		if mm.Callable != nil {
			callable = *mm.Callable
		}
		mem := &member{
			name:     mm.Name,
			callable: callable,
			sig:      mm.Signature,
			doc:      mm.Doc,
		}
		if callable && mm.Signature == "" {
			mem.sigErr = fmt.Errorf("manifest carries no signature for %s.%s", mc.Name, mm.Name)
		}
		members = append(members, mem)
	}

	return &component{name: mc.Name, kind: kind, members: members}
}
