package model

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docfinder/docfinder-mcp/pkg/types"
)

func writeManifest(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadManifest_JSON(t *testing.T) {
	path := writeManifest(t, "api.json", `{
  "library": {"name": "widgetlib", "version": "1.2.3"},
  "components": [
    {"name": "Widget", "members": [
      {"name": "Render", "signature": "(w io.Writer) error", "doc": "Render draws the widget."}
    ]}
  ],
  "groups": [
    {"name": "io", "members": [
      {"name": "ReadLayout", "signature": "(path string) ([]byte, error)", "doc": "ReadLayout parses a layout file."}
    ]}
  ]
}`)

	m, err := LoadManifest(path)
	require.NoError(t, err)

	info := m.Info()
	assert.Equal(t, "widgetlib", info.Name)
	assert.Equal(t, "1.2.3", info.Version)

	entities, err := m.Entities()
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.Equal(t, "Widget", entities[0].Name())
	assert.Equal(t, types.KindClass, entities[0].Kind())

	grp, ok := m.Group("io")
	require.True(t, ok)
	assert.Equal(t, types.KindGroup, grp.Kind())
}

func TestLoadManifest_YAML(t *testing.T) {
	path := writeManifest(t, "api.yaml", `library:
  name: widgetlib
components:
  - name: Concat
    kind: function
  - name: Widget
    members:
      - name: Title
        callable: false
        doc: Title is the display text.
`)

	m, err := LoadManifest(path)
	require.NoError(t, err)

	// Version defaults when the manifest omits it.
	assert.Equal(t, "unknown", m.Info().Version)

	entities, err := m.Entities()
	require.NoError(t, err)
	require.Len(t, entities, 2)
	assert.Equal(t, types.KindFunction, entities[0].Kind())
	assert.Equal(t, types.KindClass, entities[1].Kind())

	title := entities[1].Members()[0]
	assert.False(t, title.Callable())
	assert.Equal(t, "Title is the display text.", title.Doc())
}

func TestManifestMember_Defaults(t *testing.T) {
	m := NewManifestModel(&Manifest{
		Library: ManifestLibrary{Name: "fixture"},
		Components: []ManifestComponent{
			{Name: "Widget", Members: []ManifestMember{
				{Name: "Render", Doc: "Render draws the widget."},
			}},
		},
	})

	entities, err := m.Entities()
	require.NoError(t, err)
	mem := entities[0].Members()[0]

	// Callable defaults to true; with no recorded signature the member
	// reports a rendering failure rather than an empty call shape.
	assert.True(t, mem.Callable())
	_, sigErr := mem.Signature()
	assert.Error(t, sigErr)
}

func TestLoadManifest_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadManifest(filepath.Join(t.TempDir(), "absent.json"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrModelUnavailable))
	})

	t.Run("malformed content", func(t *testing.T) {
		path := writeManifest(t, "bad.json", `{"library": `)
		_, err := LoadManifest(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrModelUnavailable))
	})
}
