package index

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docfinder/docfinder-mcp/internal/discovery"
	"github.com/docfinder/docfinder-mcp/internal/model"
	"github.com/docfinder/docfinder-mcp/pkg/types"
)

func boolPtr(b bool) *bool { return &b }

func buildFrom(t *testing.T, manifest *model.Manifest) []types.Record {
	t.Helper()
	set, err := discovery.New(model.NewManifestModel(manifest)).Discover(context.Background())
	require.NoError(t, err)
	return Build(set)
}

func TestBuild_Filtering(t *testing.T) {
	records := buildFrom(t, &model.Manifest{
		Library: model.ManifestLibrary{Name: "fixture"},
		Components: []model.ManifestComponent{
			{Name: "Frame", Members: []model.ManifestMember{
				{Name: "Filter", Signature: "(pred Expr) *Frame", Doc: "Filter keeps matching rows."},
				{Name: "_reindex", Signature: "()", Doc: "internal"},
				{Name: "Width", Callable: boolPtr(false), Doc: "Width is the column count."},
				{Name: "state", Callable: boolPtr(false)},
			}},
		},
	})

	require.Len(t, records, 2)

	assert.Equal(t, "Frame.Filter", records[0].QualifiedName)
	assert.Equal(t, "(pred Expr) *Frame", records[0].Signature)

	// Documented non-callable members keep a record with no call shape.
	assert.Equal(t, "Frame.Width", records[1].QualifiedName)
	assert.Empty(t, records[1].Signature)
	assert.Equal(t, "Width is the column count.", records[1].Description)
}

func TestBuild_SignatureSentinel(t *testing.T) {
	records := buildFrom(t, &model.Manifest{
		Library: model.ManifestLibrary{Name: "fixture"},
		Components: []model.ManifestComponent{
			{Name: "Frame", Members: []model.ManifestMember{
				{Name: "Filter", Doc: "Filter keeps matching rows."},
			}},
		},
	})

	require.Len(t, records, 1)
	assert.Equal(t, SignatureUnavailable, records[0].Signature)
}

func TestBuild_DescriptionFirstLine(t *testing.T) {
	records := buildFrom(t, &model.Manifest{
		Library: model.ManifestLibrary{Name: "fixture"},
		Components: []model.ManifestComponent{
			{Name: "Frame", Members: []model.ManifestMember{
				{Name: "Filter", Signature: "()", Doc: "Filter keeps matching rows.\n\nThe predicate runs once per row\nand must be pure."},
			}},
		},
	})

	require.Len(t, records, 1)
	assert.Equal(t, "Filter keeps matching rows.", records[0].Description)
}

func TestBuild_DuplicateQualifiedNames(t *testing.T) {
	records := buildFrom(t, &model.Manifest{
		Library: model.ManifestLibrary{Name: "fixture"},
		Components: []model.ManifestComponent{
			{Name: "Frame", Members: []model.ManifestMember{
				{Name: "Filter", Signature: "(pred Expr) *Frame", Doc: "First occurrence."},
				{Name: "Filter", Signature: "(other Expr) *Frame", Doc: "Shadowed occurrence."},
			}},
		},
	})

	require.Len(t, records, 1)
	assert.Equal(t, "First occurrence.", records[0].Description)
}

func TestBuild_Order(t *testing.T) {
	records := buildFrom(t, &model.Manifest{
		Library: model.ManifestLibrary{Name: "fixture"},
		Components: []model.ManifestComponent{
			{Name: "Frame", Members: []model.ManifestMember{
				{Name: "Filter", Signature: "()", Doc: "Filter keeps matching rows."},
				{Name: "Sort", Signature: "()", Doc: "Sort orders rows."},
			}},
			{Name: "Series", Members: []model.ManifestMember{
				{Name: "Sum", Signature: "() float64", Doc: "Sum adds the values."},
			}},
		},
		Groups: []model.ManifestComponent{
			{Name: "io", Members: []model.ManifestMember{
				{Name: "ReadCSV", Signature: "(path string) (*Frame, error)", Doc: "ReadCSV parses a CSV file."},
			}},
		},
	})

	names := make([]string, len(records))
	for i, rec := range records {
		names[i] = rec.QualifiedName
	}
	assert.Equal(t, []string{"Frame.Filter", "Frame.Sort", "Series.Sum", "io.ReadCSV"}, names)
}
