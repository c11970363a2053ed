package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crate/internal/core/domain"
)

type stubClassifier struct {
	kinds map[domain.GUID]domain.AssetKind
	paths map[domain.GUID]string
}

func (s stubClassifier) Kind(g domain.GUID) domain.AssetKind { return s.kinds[g] }
func (s stubClassifier) Path(g domain.GUID) string         { return s.paths[g] }

var (
	texGUID   = domain.MustParseGUID("00000000000000000000000000000001")
	matGUID   = domain.MustParseGUID("00000000000000000000000000000002")
	sceneGUID = domain.MustParseGUID("00000000000000000000000000000003")
	custGUID  = domain.MustParseGUID("00000000000000000000000000000004")
	badGUID   = domain.MustParseGUID("00000000000000000000000000000005")
)

func classifier() stubClassifier {
	return stubClassifier{
		kinds: map[domain.GUID]domain.AssetKind{
			texGUID:   domain.KindAsset,
			matGUID:   domain.KindAsset,
			sceneGUID: domain.KindScene,
		},
		paths: map[domain.GUID]string{
			texGUID:   "Assets/tex.png",
			matGUID:   "Assets/mat.mat",
			sceneGUID: "Assets/level.unity",
		},
	}
}

func TestNewBundleBuildContent(t *testing.T) {
	builds := []domain.BundleBuild{
		{Name: "props", Members: []domain.BundleMember{{GUID: texGUID, Address: "tex"}, {GUID: matGUID}}},
		{Name: "level", Members: []domain.BundleMember{{GUID: sceneGUID}}},
	}

	content, err := domain.NewBundleBuildContent(builds, nil, classifier())
	require.NoError(t, err)

	assert.Equal(t, []domain.GUID{texGUID, matGUID}, content.AssetList())
	assert.Equal(t, []domain.GUID{sceneGUID}, content.SceneList())
	assert.Equal(t, "tex", content.AddressOf(texGUID))
	assert.Equal(t, "Assets/mat.mat", content.AddressOf(matGUID))
	assert.Equal(t, domain.KindScene, content.KindOf(sceneGUID))

	layout := content.BundleLayout()
	require.Len(t, layout, 2)
	assert.Equal(t, "props", layout[0].Name)
	assert.Equal(t, "level", layout[1].Name)
}

func TestNewBundleBuildContent_Errors(t *testing.T) {
	tests := []struct {
		name    string
		builds  []domain.BundleBuild
		wantErr error
	}{
		{
			name:    "invalid member",
			builds:  []domain.BundleBuild{{Name: "a", Members: []domain.BundleMember{{GUID: badGUID}}}},
			wantErr: domain.ErrInvalidAsset,
		},
		{
			name: "mixed bundle",
			builds: []domain.BundleBuild{{Name: "a", Members: []domain.BundleMember{
				{GUID: texGUID}, {GUID: sceneGUID},
			}}},
			wantErr: domain.ErrMixedBundle,
		},
		{
			name: "duplicate bundle",
			builds: []domain.BundleBuild{
				{Name: "a", Members: []domain.BundleMember{{GUID: texGUID}}},
				{Name: "a", Members: []domain.BundleMember{{GUID: matGUID}}},
			},
			wantErr: domain.ErrDuplicateBundle,
		},
		{
			name: "asset in two bundles",
			builds: []domain.BundleBuild{
				{Name: "a", Members: []domain.BundleMember{{GUID: texGUID}}},
				{Name: "b", Members: []domain.BundleMember{{GUID: texGUID}}},
			},
			wantErr: domain.ErrAssetInMultipleBundles,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewBundleBuildContent(tt.builds, nil, classifier())
			require.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

func TestNewBundleBuildContent_CustomAssets(t *testing.T) {
	builds := []domain.BundleBuild{
		{Name: "generated", Members: []domain.BundleMember{{GUID: custGUID, Address: "gen"}, {GUID: texGUID}}},
	}

	content, err := domain.NewBundleBuildContent(builds, []domain.GUID{custGUID}, classifier())
	require.NoError(t, err)

	assert.Equal(t, []domain.GUID{custGUID, texGUID}, content.AssetList())
	assert.Equal(t, []domain.GUID{custGUID}, content.CustomAssetList())
	assert.Equal(t, []domain.GUID{texGUID}, domain.ResolvableAssets(content.AssetList(), content))
	assert.Equal(t, content.AssetList(), domain.ResolvableAssets(content.AssetList(), nil))
	assert.Equal(t, domain.KindAsset, content.KindOf(custGUID))
}

func TestObjectSet(t *testing.T) {
	a := domain.ObjectID{GUID: texGUID, LocalID: 1}
	b := domain.ObjectID{GUID: texGUID, LocalID: 2}

	set := domain.NewObjectSet(b, a, b)
	set.Add(a)

	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []domain.ObjectID{b, a}, set.Slice())
	assert.True(t, set.Contains(a))
	assert.False(t, set.Contains(domain.ObjectID{GUID: matGUID}))
}

func TestObjectID_IsDefaultResource(t *testing.T) {
	builtin := domain.ObjectID{FilePath: domain.NewInternedString("Library/Unity Default Resources"), LocalID: 10}
	assert.True(t, builtin.IsDefaultResource())
	assert.Equal(t, "Library/Unity Default Resources:10", builtin.String())

	regular := domain.ObjectID{GUID: texGUID, LocalID: 3}
	assert.False(t, regular.IsDefaultResource())
}
