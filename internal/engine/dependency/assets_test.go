package dependency_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports/mocks"
	"go.trai.ch/crate/internal/engine/dependency"
	"go.uber.org/mock/gomock"
)

func assetInput(mode domain.DependencyMode, buildSet []domain.GUID) dependency.AssetInput {
	return dependency.AssetInput{
		Assets:        allAssets,
		BuildSet:      buildSet,
		Addresses:     map[domain.GUID]string{atlasGUID: "ui/atlas"},
		Mode:          mode,
		SpritePacking: true,
		GlobalUsage:   5,
		UsageCache:    domain.NewUsageCache(),
	}
}

func TestAssetResolver_Recursive(t *testing.T) {
	_, catalog := loadCatalog(t)
	resolver := dependency.NewAssetResolver(catalog, catalog)

	out, code, err := resolver.Run(context.Background(), assetInput(domain.DependencyRecursive, allAssets))
	require.NoError(t, err)
	require.Equal(t, domain.Success, code)
	require.Len(t, out.Results, 3)
	assert.Zero(t, out.CachedCount)

	atlas := out.Results[0]
	assert.Equal(t, "ui/atlas", atlas.Info.Address)
	assert.Equal(t, []domain.ObjectID{texture, sprite}, atlas.Info.IncludedObjects)
	assert.Empty(t, atlas.Info.ReferencedObjects)
	require.NotNil(t, atlas.SpriteData)
	assert.Equal(t, domain.SpriteImporterData{PackedSprite: false, SourceTexture: texture}, *atlas.SpriteData)
	require.NotNil(t, atlas.ExtendedData)
	assert.Equal(t, []domain.ObjectID{sprite}, atlas.ExtendedData.Representations)

	mat := out.Results[1]
	assert.Equal(t, []domain.ObjectID{sprite, shader, texture}, mat.Info.ReferencedObjects)
	assert.Nil(t, mat.SpriteData)
	assert.Nil(t, mat.ExtendedData)
	assert.Equal(t, domain.GlobalUsage(5), mat.Usage.Global)
	assert.Equal(t, []domain.ObjectUsage{
		{Object: panel, Flags: domain.UsageIncluded},
		{Object: sprite, Flags: domain.UsageReferenced},
		{Object: shader, Flags: domain.UsageReferenced},
		{Object: texture, Flags: domain.UsageReferenced},
	}, mat.Usage.Tags)

	prefab := out.Results[2]
	assert.Equal(t, []domain.ObjectID{panel, sprite, shader, texture}, prefab.Info.ReferencedObjects)
	assert.Contains(t, prefab.ObjectTypes, domain.ObjectTypes{Object: shader, Types: []string{"Shader"}})
}

func TestAssetResolver_NonRecursive(t *testing.T) {
	_, catalog := loadCatalog(t)
	resolver := dependency.NewAssetResolver(catalog, catalog)

	out, code, err := resolver.Run(context.Background(), assetInput(domain.DependencyNonRecursive, allAssets))
	require.NoError(t, err)
	require.Equal(t, domain.Success, code)

	assert.Empty(t, out.Results[0].Info.ReferencedObjects)
	assert.Equal(t, []domain.ObjectID{shader, texture, sprite}, out.Results[1].Info.ReferencedObjects)
	assert.Equal(t, []domain.ObjectID{panel}, out.Results[2].Info.ReferencedObjects)
}

func TestAssetResolver_NonRecursive_FollowsAssetsOutsideBuild(t *testing.T) {
	_, catalog := loadCatalog(t)
	resolver := dependency.NewAssetResolver(catalog, catalog)

	in := assetInput(domain.DependencyNonRecursive, []domain.GUID{prefabGUID})
	in.Assets = []domain.GUID{prefabGUID}

	out, _, err := resolver.Run(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, []domain.ObjectID{panel, sprite, shader, texture}, out.Results[0].Info.ReferencedObjects)
}

func TestAssetResolver_ProgressLabels(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir, catalog := loadCatalog(t)
	cache := newBuildCache(t, dir, catalog, mocks.NewMockLogger(ctrl))
	resolver := dependency.NewAssetResolver(catalog, catalog)

	tracker := mocks.NewMockProgressTracker(ctrl)
	gomock.InOrder(
		tracker.EXPECT().UpdateInfo("Assets/UI/atlas.png").Return(true),
		tracker.EXPECT().UpdateInfo("Assets/UI/panel.mat").Return(true),
		tracker.EXPECT().UpdateInfo("Assets/UI/hud.prefab").Return(true),
		tracker.EXPECT().UpdateInfo("Assets/UI/atlas.png (cached)").Return(true),
		tracker.EXPECT().UpdateInfo("Assets/UI/panel.mat (cached)").Return(true),
		tracker.EXPECT().UpdateInfo("Assets/UI/hud.prefab (cached)").Return(true),
	)

	in := assetInput(domain.DependencyRecursive, allAssets)
	in.Cache = cache
	in.Tracker = tracker

	first, code, err := resolver.Run(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, domain.Success, code)

	second, code, err := resolver.Run(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, domain.Success, code)
	assert.Equal(t, 3, second.CachedCount)

	for i := range first.Results {
		assert.True(t, second.Results[i].Cached)
		assert.Equal(t, first.Results[i].Info.IncludedObjects, second.Results[i].Info.IncludedObjects)
		assert.ElementsMatch(t, first.Results[i].Info.ReferencedObjects, second.Results[i].Info.ReferencedObjects)
		assert.Equal(t, first.Results[i].Usage.Tags, second.Results[i].Usage.Tags)
		assert.Equal(t, first.Results[i].SpriteData, second.Results[i].SpriteData)
	}
}

func TestAssetResolver_ContentChangeInvalidatesDependents(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir, catalog := loadCatalog(t)
	cache := newBuildCache(t, dir, catalog, mocks.NewMockLogger(ctrl))
	resolver := dependency.NewAssetResolver(catalog, catalog)

	in := assetInput(domain.DependencyRecursive, allAssets)
	in.Cache = cache

	_, _, err := resolver.Run(context.Background(), in)
	require.NoError(t, err)

	touch(t, dir, "Assets/UI/panel.mat", "color: red")

	out, code, err := resolver.Run(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, domain.Success, code)
	assert.Equal(t, 1, out.CachedCount)
	assert.True(t, out.Results[0].Cached)
	assert.False(t, out.Results[1].Cached)
	assert.False(t, out.Results[2].Cached)
}

func TestAssetResolver_ModesDoNotShareRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir, catalog := loadCatalog(t)
	cache := newBuildCache(t, dir, catalog, mocks.NewMockLogger(ctrl))
	resolver := dependency.NewAssetResolver(catalog, catalog)

	in := assetInput(domain.DependencyRecursive, allAssets)
	in.Cache = cache
	_, _, err := resolver.Run(context.Background(), in)
	require.NoError(t, err)

	in.Mode = domain.DependencyNonRecursive
	out, _, err := resolver.Run(context.Background(), in)
	require.NoError(t, err)
	assert.Zero(t, out.CachedCount)
	assert.Equal(t, []domain.ObjectID{panel}, out.Results[2].Info.ReferencedObjects)
}

func TestAssetResolver_SpriteRecordOrderMatters(t *testing.T) {
	_, catalog := loadCatalog(t)
	resolver := dependency.NewAssetResolver(catalog, catalog)
	key := domain.CacheEntry{Hash: domain.Hash128{7}, GUID: panelGUID, Version: 5, Kind: domain.EntryAsset}

	record := func(refs ...domain.ObjectID) *domain.CachedInfo {
		return &domain.CachedInfo{
			Asset: key,
			Data: domain.CachedData{
				AssetInfo: &domain.AssetLoadInfo{
					Asset:             panelGUID,
					IncludedObjects:   []domain.ObjectID{panel},
					ReferencedObjects: refs,
				},
				UsageTags:   &domain.UsageTagSet{Global: 5},
				ObjectTypes: []domain.ObjectTypes{{Object: sprite, Types: []string{"Sprite"}}},
			},
		}
	}

	tests := []struct {
		name   string
		refs   []domain.ObjectID
		cached bool
		saved  int
	}{
		{"same order is fresh", []domain.ObjectID{sprite, shader, texture}, true, 0},
		{"reordered references are stale", []domain.ObjectID{shader, sprite, texture}, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cache := mocks.NewMockBuildCache(ctrl)
			cache.EXPECT().GetCacheEntry(panelGUID, 5).Return(key, nil)
			cache.EXPECT().LoadCached([]domain.CacheEntry{key}).Return([]*domain.CachedInfo{record(tt.refs...)})
			cache.EXPECT().GetObjectEntry(gomock.Any()).Return(key, nil).AnyTimes()
			cache.EXPECT().GetScriptTypeEntry(gomock.Any()).Return(domain.CacheEntry{}).AnyTimes()
			cache.EXPECT().SaveCached(gomock.Len(tt.saved))

			in := assetInput(domain.DependencyRecursive, allAssets)
			in.Assets = []domain.GUID{panelGUID}
			in.Cache = cache

			out, code, err := resolver.Run(context.Background(), in)
			require.NoError(t, err)
			require.Equal(t, domain.Success, code)
			assert.Equal(t, tt.cached, out.Results[0].Cached)
			assert.Equal(t, []domain.ObjectID{sprite, shader, texture}, out.Results[0].Info.ReferencedObjects)
		})
	}
}

func TestAssetResolver_Canceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, catalog := loadCatalog(t)
	cache := mocks.NewMockBuildCache(ctrl)
	cache.EXPECT().GetCacheEntry(gomock.Any(), 5).Return(domain.CacheEntry{}, nil).Times(3)
	cache.EXPECT().LoadCached(gomock.Len(3)).Return(make([]*domain.CachedInfo, 3))

	tracker := mocks.NewMockProgressTracker(ctrl)
	gomock.InOrder(
		tracker.EXPECT().UpdateInfo("Assets/UI/atlas.png").Return(true),
		tracker.EXPECT().UpdateInfo("Assets/UI/panel.mat").Return(false),
	)

	in := assetInput(domain.DependencyRecursive, allAssets)
	in.Cache = cache
	in.Tracker = tracker

	out, code, err := dependency.NewAssetResolver(catalog, catalog).Run(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, domain.Canceled, code)
	require.Len(t, out.Results, 1)
	assert.Equal(t, atlasGUID, out.Results[0].Asset)
}

func TestAssetResolver_ContextCanceled(t *testing.T) {
	_, catalog := loadCatalog(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, code, err := dependency.NewAssetResolver(catalog, catalog).Run(ctx, assetInput(domain.DependencyRecursive, allAssets))
	require.NoError(t, err)
	assert.Equal(t, domain.Canceled, code)
	assert.Empty(t, out.Results)
}

func TestAssetResolver_UnknownAsset(t *testing.T) {
	_, catalog := loadCatalog(t)
	in := assetInput(domain.DependencyRecursive, allAssets)
	in.Assets = []domain.GUID{{0xff}}

	_, code, err := dependency.NewAssetResolver(catalog, catalog).Run(context.Background(), in)
	assert.Equal(t, domain.Error, code)
	require.ErrorContains(t, err, domain.ErrAssetNotFound.Error())
}

func TestAssetOutput_Commit(t *testing.T) {
	_, catalog := loadCatalog(t)
	out, _, err := dependency.NewAssetResolver(catalog, catalog).
		Run(context.Background(), assetInput(domain.DependencyRecursive, allAssets))
	require.NoError(t, err)

	deps := domain.NewDependencyData()
	sprites, extended := out.Commit(deps, nil, nil, false)

	assert.Len(t, deps.AssetInfo, 3)
	assert.Len(t, deps.AssetUsage, 3)
	assert.Equal(t, []string{"Sprite"}, deps.ObjectTypes[sprite])
	require.NotNil(t, sprites)
	assert.Contains(t, sprites.ImporterData, atlasGUID)
	require.NotNil(t, extended)
	assert.Equal(t, []domain.ObjectID{sprite}, extended.ExtendedData[atlasGUID].Representations)

	_, extended = out.Commit(domain.NewDependencyData(), nil, nil, true)
	assert.Nil(t, extended)
}
