package discovery

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docfinder/docfinder-mcp/internal/model"
	"github.com/docfinder/docfinder-mcp/pkg/types"
)

// failingModel simulates an object model that cannot be enumerated at all.
type failingModel struct{}

func (failingModel) Entities() ([]model.Component, error) {
	return nil, types.ErrModelUnavailable
}
func (failingModel) Group(string) (model.Component, bool) { return nil, false }
func (failingModel) Info() types.LibraryInfo              { return types.LibraryInfo{} }

func fixtureModel() *model.ManifestModel {
	return model.NewManifestModel(&model.Manifest{
		Library: model.ManifestLibrary{Name: "fixture"},
		Components: []model.ManifestComponent{
			{Name: "Concat", Kind: "function"},
			{Name: "Frame"},
			{Name: "Series"},
		},
		Groups: []model.ManifestComponent{
			{Name: "datatypes", Members: []model.ManifestMember{
				{Name: "Int64", Callable: nil, Doc: "Int64 is the signed 64-bit integer type."},
			}},
			{Name: "io"},
			{Name: "plotting"},
		},
	})
}

func TestDiscover_Order(t *testing.T) {
	set, err := New(fixtureModel()).Discover(context.Background())
	require.NoError(t, err)

	// Classes in model order, then functions, then the allow-listed
	// groupings in allow-list order. "plotting" is not allow-listed and
	// "convert"/"functions" do not exist, so neither appears.
	assert.Equal(t, []string{"Frame", "Series", "Concat", "io", "datatypes"}, set.Names())
}

func TestDiscover_CustomGroups(t *testing.T) {
	set, err := NewWithGroups(fixtureModel(), []string{"plotting"}).Discover(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Frame", "Series", "Concat", "plotting"}, set.Names())
}

func TestDiscover_CollisionKeepsPosition(t *testing.T) {
	// A grouping that shares a class's name replaces the class but stays
	// at the class's original position.
	m := model.NewManifestModel(&model.Manifest{
		Library: model.ManifestLibrary{Name: "fixture"},
		Components: []model.ManifestComponent{
			{Name: "io"},
			{Name: "Frame"},
		},
		Groups: []model.ManifestComponent{
			{Name: "io", Members: []model.ManifestMember{
				{Name: "ReadCSV", Signature: "(path string) (*Frame, error)", Doc: "ReadCSV parses a CSV file."},
			}},
		},
	})

	set, err := New(m).Discover(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"io", "Frame"}, set.Names())
	comp, ok := set.Get("io")
	require.True(t, ok)
	assert.Equal(t, types.KindGroup, comp.Kind())
	assert.Len(t, comp.Members(), 1)
}

func TestDiscover_ModelUnavailable(t *testing.T) {
	_, err := New(failingModel{}).Discover(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrModelUnavailable))
}

func TestDiscover_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(fixtureModel()).Discover(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
