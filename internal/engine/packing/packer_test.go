package packing_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/engine/packing"
)

type classifier map[domain.GUID]domain.AssetKind

func (c classifier) Kind(g domain.GUID) domain.AssetKind { return c[g] }
func (c classifier) Path(g domain.GUID) string         { return "Assets/" + g.String() }

var (
	guidA  = domain.MustParseGUID("00000000000000000000000000000001")
	guidB  = domain.MustParseGUID("00000000000000000000000000000002")
	guidC  = domain.MustParseGUID("00000000000000000000000000000003")
	scene1 = domain.MustParseGUID("00000000000000000000000000000010")
	scene2 = domain.MustParseGUID("00000000000000000000000000000011")

	objA = domain.ObjectID{GUID: guidA, LocalID: 1}
	objB = domain.ObjectID{GUID: guidB, LocalID: 1}
	objC = domain.ObjectID{GUID: guidC, LocalID: 1}

	builtin = domain.ObjectID{
		FilePath: domain.NewInternedString("Library/Unity Default Resources"),
		LocalID:  10,
		FileType: domain.FileTypeBuiltin,
	}
)

func loose(name string) domain.ObjectID {
	return domain.ObjectID{FilePath: domain.NewInternedString(name), LocalID: 1, FileType: domain.FileTypeSerialized}
}

func kinds() classifier {
	return classifier{
		guidA:  domain.KindAsset,
		guidB:  domain.KindAsset,
		guidC:  domain.KindAsset,
		scene1: domain.KindScene,
		scene2: domain.KindScene,
	}
}

func content(t *testing.T, custom []domain.GUID, bundles ...domain.BundleBuild) *domain.BundleBuildContent {
	t.Helper()
	c, err := domain.NewBundleBuildContent(bundles, custom, kinds())
	require.NoError(t, err)
	return c
}

func bundle(name string, members ...domain.GUID) domain.BundleBuild {
	b := domain.BundleBuild{Name: name}
	for _, m := range members {
		b.Members = append(b.Members, domain.BundleMember{GUID: m})
	}
	return b
}

func assetInfo(guid domain.GUID, refs ...domain.ObjectID) domain.AssetLoadInfo {
	return domain.AssetLoadInfo{
		Asset:             guid,
		IncludedObjects:   []domain.ObjectID{{GUID: guid, LocalID: 1}},
		ReferencedObjects: refs,
	}
}

func assetFile(name string) string {
	id := packing.HashedIdentifiers{}.GenerateInternalFileName(name)
	return fmt.Sprintf("archive:/%s/%s", id, id)
}

func TestPacker_SingleAssetBundle(t *testing.T) {
	x := loose("Assets/Shared/x.asset")
	deps := domain.NewDependencyData()
	deps.AssetInfo[guidA] = assetInfo(guidA)
	deps.AssetInfo[guidB] = assetInfo(guidB, objA, builtin, x)

	plan, err := packing.NewPacker(nil).Run(content(t, nil, bundle("props", guidA, guidB)), deps, nil)
	require.NoError(t, err)

	file := assetFile("props")
	assert.Equal(t, map[string]string{file: "props"}, plan.FileToBundle)
	assert.Equal(t, []domain.ObjectID{objA, objB, x}, plan.FileToObjects[file])
	assert.Equal(t, []string{file}, plan.AssetToFiles[guidA])
	assert.Equal(t, []string{file}, plan.AssetToFiles[guidB])
}

func TestPacker_SharedReferences(t *testing.T) {
	shared := loose("Assets/Shared/s.asset")

	tests := []struct {
		name     string
		refsA    []domain.ObjectID
		refsB    []domain.ObjectID
		objectsA []domain.ObjectID
		objectsB []domain.ObjectID
		filesA   []string
		filesB   []string
	}{
		{
			name:     "one way reference",
			refsA:    []domain.ObjectID{objB, shared},
			refsB:    []domain.ObjectID{shared},
			objectsA: []domain.ObjectID{objA},
			objectsB: []domain.ObjectID{objB, shared},
			filesA:   []string{assetFile("a"), assetFile("b")},
			filesB:   []string{assetFile("b")},
		},
		{
			name:     "cycle keeps shared objects in the lower identity",
			refsA:    []domain.ObjectID{objB, shared},
			refsB:    []domain.ObjectID{objA, shared},
			objectsA: []domain.ObjectID{objA, shared},
			objectsB: []domain.ObjectID{objB},
			filesA:   []string{assetFile("a"), assetFile("b")},
			filesB:   []string{assetFile("b"), assetFile("a")},
		},
	}

	layouts := map[string][]domain.BundleBuild{
		"a first": {bundle("a", guidA), bundle("b", guidB)},
		"b first": {bundle("b", guidB), bundle("a", guidA)},
	}

	for _, tt := range tests {
		for order, bundles := range layouts {
			t.Run(tt.name+"/"+order, func(t *testing.T) {
				deps := domain.NewDependencyData()
				deps.AssetInfo[guidA] = assetInfo(guidA, tt.refsA...)
				deps.AssetInfo[guidB] = assetInfo(guidB, tt.refsB...)

				plan, err := packing.NewPacker(nil).Run(content(t, nil, bundles...), deps, nil)
				require.NoError(t, err)

				assert.Equal(t, tt.objectsA, plan.FileToObjects[assetFile("a")])
				assert.Equal(t, tt.objectsB, plan.FileToObjects[assetFile("b")])
				assert.Equal(t, tt.filesA, plan.AssetToFiles[guidA])
				assert.Equal(t, tt.filesB, plan.AssetToFiles[guidB])
			})
		}
	}
}

func TestPacker_CycleWithinOneBundle(t *testing.T) {
	shared := loose("Assets/Shared/s.asset")
	deps := domain.NewDependencyData()
	deps.AssetInfo[guidA] = assetInfo(guidA, objB, shared)
	deps.AssetInfo[guidB] = assetInfo(guidB, objA, shared)

	plan, err := packing.NewPacker(nil).Run(content(t, nil, bundle("BundleX", guidA, guidB)), deps, nil)
	require.NoError(t, err)

	file := assetFile("BundleX")
	assert.Equal(t, map[string]string{file: "BundleX"}, plan.FileToBundle)
	assert.Equal(t, []domain.ObjectID{objA, shared, objB}, plan.FileToObjects[file])
	assert.Equal(t, []string{file}, plan.AssetToFiles[guidA])
	assert.Equal(t, []string{file}, plan.AssetToFiles[guidB])
}

func sceneFiles(first, name string) string {
	ids := packing.HashedIdentifiers{}
	return fmt.Sprintf("archive:/%s/%s.sharedAssets",
		ids.GenerateInternalFileName(first), ids.GenerateInternalFileName(name))
}

func TestPacker_SceneBundle(t *testing.T) {
	x, y, z := loose("x.asset"), loose("y.asset"), loose("z.asset")

	deps := domain.NewDependencyData()
	deps.AssetInfo[guidA] = assetInfo(guidA, x)
	deps.SceneInfo[scene1] = domain.SceneDependencyInfo{
		Scene: scene1, Path: "Assets/one.unity", ReferencedObjects: []domain.ObjectID{objA, x, y},
	}
	deps.SceneInfo[scene2] = domain.SceneDependencyInfo{
		Scene: scene2, Path: "Assets/two.unity", ReferencedObjects: []domain.ObjectID{objA, x, y, z},
	}

	c := content(t, nil, bundle("props", guidA), bundle("levels", scene1, scene2))
	plan, err := packing.NewPacker(nil).Run(c, deps, nil)
	require.NoError(t, err)

	first := sceneFiles("Assets/one.unity", "Assets/one.unity")
	second := sceneFiles("Assets/one.unity", "Assets/two.unity")

	assert.Equal(t, []domain.ObjectID{y}, plan.FileToObjects[first])
	assert.Equal(t, []domain.ObjectID{z}, plan.FileToObjects[second])
	assert.Equal(t, "levels", plan.FileToBundle[first])
	assert.Equal(t, "levels", plan.FileToBundle[second])
	assert.Equal(t, []string{first, assetFile("props")}, plan.AssetToFiles[scene1])
	assert.Equal(t, []string{second, first, assetFile("props")}, plan.AssetToFiles[scene2])
}

func TestPacker_SceneReusesEarlierSceneAssets(t *testing.T) {
	x := loose("x.asset")

	deps := domain.NewDependencyData()
	deps.AssetInfo[guidA] = assetInfo(guidA, x)
	deps.SceneInfo[scene1] = domain.SceneDependencyInfo{
		Scene: scene1, Path: "Assets/one.unity", ReferencedObjects: []domain.ObjectID{objA, x},
	}
	deps.SceneInfo[scene2] = domain.SceneDependencyInfo{
		Scene: scene2, Path: "Assets/two.unity", ReferencedObjects: []domain.ObjectID{x},
	}

	c := content(t, nil, bundle("props", guidA), bundle("levels", scene1, scene2))
	plan, err := packing.NewPacker(nil).Run(c, deps, nil)
	require.NoError(t, err)

	second := sceneFiles("Assets/one.unity", "Assets/two.unity")
	assert.Empty(t, plan.FileToObjects[second])
	assert.Equal(t, []string{second, sceneFiles("Assets/one.unity", "Assets/one.unity"), assetFile("props")},
		plan.AssetToFiles[scene2])
}

func TestPacker_CustomAsset(t *testing.T) {
	custom := domain.MustParseGUID("000000000000000000000000000000cc")
	generated := domain.ObjectID{GUID: custom, LocalID: 7}

	deps := domain.NewDependencyData()
	deps.AssetInfo[custom] = domain.AssetLoadInfo{Asset: custom, IncludedObjects: []domain.ObjectID{generated}}
	deps.AssetInfo[guidA] = assetInfo(guidA, generated)

	c := content(t, []domain.GUID{custom}, bundle("generated", custom), bundle("props", guidA))
	plan, err := packing.NewPacker(nil).Run(c, deps, []domain.GUID{custom})
	require.NoError(t, err)

	assert.Equal(t, []domain.ObjectID{generated}, plan.FileToObjects[assetFile("generated")])
	assert.Equal(t, []string{assetFile("props"), assetFile("generated")}, plan.AssetToFiles[guidA])
}

func TestPacker_Errors(t *testing.T) {
	t.Run("missing dependency data", func(t *testing.T) {
		_, err := packing.NewPacker(nil).Run(content(t, nil, bundle("props", guidA)), domain.NewDependencyData(), nil)
		require.ErrorContains(t, err, domain.ErrMissingDependencyData.Error())
	})

	t.Run("missing scene data", func(t *testing.T) {
		_, err := packing.NewPacker(nil).Run(content(t, nil, bundle("levels", scene1)), domain.NewDependencyData(), nil)
		require.ErrorContains(t, err, domain.ErrMissingDependencyData.Error())
	})

	t.Run("reference without bundle file", func(t *testing.T) {
		deps := domain.NewDependencyData()
		deps.AssetInfo[guidA] = assetInfo(guidA, objC)
		deps.AssetInfo[guidC] = assetInfo(guidC)

		_, err := packing.NewPacker(nil).Run(content(t, nil, bundle("props", guidA)), deps, nil)
		require.ErrorContains(t, err, domain.ErrMissingBundleFile.Error())
	})
}

func TestPacker_Deterministic(t *testing.T) {
	shared := loose("s.asset")
	deps := domain.NewDependencyData()
	deps.AssetInfo[guidA] = assetInfo(guidA, objB, shared)
	deps.AssetInfo[guidB] = assetInfo(guidB, objA, shared)
	deps.AssetInfo[guidC] = assetInfo(guidC, objA, objB)
	c := content(t, nil, bundle("a", guidA), bundle("b", guidB), bundle("c", guidC))

	first, err := packing.NewPacker(nil).Run(c, deps, nil)
	require.NoError(t, err)
	second, err := packing.NewPacker(nil).Run(c, deps, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestHashedIdentifiers(t *testing.T) {
	ids := packing.HashedIdentifiers{}

	name := ids.GenerateInternalFileName("props")
	assert.True(t, strings.HasPrefix(name, "CAB-"))
	assert.Len(t, name, 36)
	assert.Equal(t, name, ids.GenerateInternalFileName("props"))
	assert.NotEqual(t, name, ids.GenerateInternalFileName("prop"))
}
