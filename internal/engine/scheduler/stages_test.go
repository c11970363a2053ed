package scheduler_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crate/internal/adapters/assetdb"
	"go.trai.ch/crate/internal/adapters/fs"
	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/engine/buildctx"
	"go.trai.ch/crate/internal/engine/packing"
	"go.trai.ch/crate/internal/engine/scheduler"
)

const manifest = `
version: "1"
assets:
  - guid: 00000000000000000000000000000001
    path: Assets/UI/atlas.png
    importer: sprite
    objects:
      - id: 2800000
        types: [Texture2D]
      - id: 21300000
        types: [Sprite]
        references: ["00000000000000000000000000000001:2800000"]
  - guid: 00000000000000000000000000000002
    path: Assets/UI/panel.mat
    objects:
      - id: 2100000
        types: [Material]
        references:
          - "Assets/UI/atlas.png:21300000"
          - "library/unity default resources:10"
  - guid: 00000000000000000000000000000004
    path: Assets/Scenes/level.unity
    kind: scene
    globalUsage: 5
    objects:
      - id: 1
        types: [GameObject]
        references: ["Assets/UI/panel.mat:2100000"]
files:
  - path: library/unity default resources
    objects:
      - id: 10
        types: [Shader]
`

var (
	atlasGUID  = domain.MustParseGUID("00000000000000000000000000000001")
	panelGUID  = domain.MustParseGUID("00000000000000000000000000000002")
	sceneGUID  = domain.MustParseGUID("00000000000000000000000000000004")
	customGUID = domain.MustParseGUID("000000000000000000000000000000cc")
)

func buildContext(t *testing.T, callbacks *domain.Callbacks) *buildctx.Context {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, domain.ManifestFileName)
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0o600))

	catalog, err := assetdb.NewLoader(fs.NewHasher(fs.NewWalker())).Load(path)
	require.NoError(t, err)

	content, err := domain.NewBundleBuildContent([]domain.BundleBuild{
		{Name: "ui", Members: []domain.BundleMember{{GUID: atlasGUID}, {GUID: panelGUID}}},
		{Name: "generated", Members: []domain.BundleMember{{GUID: customGUID}}},
		{Name: "levels", Members: []domain.BundleMember{{GUID: sceneGUID}}},
	}, []domain.GUID{customGUID}, catalog)
	require.NoError(t, err)

	params := &domain.BuildParameters{Target: "standalone", SpritePacking: true}
	bc, err := buildctx.New(params, content, callbacks)
	require.NoError(t, err)
	require.NoError(t, bc.Set(domain.TagAssetStore, catalog))
	require.NoError(t, bc.Set(domain.TagAssetDatabase, catalog))
	return bc
}

func supplyCustom(_ *domain.BuildParameters, deps *domain.DependencyData) domain.ReturnCode {
	deps.AssetInfo[customGUID] = domain.AssetLoadInfo{
		Asset:           customGUID,
		IncludedObjects: []domain.ObjectID{{GUID: customGUID, LocalID: 1}},
	}
	return domain.Success
}

func archive(name string) string {
	id := packing.HashedIdentifiers{}.GenerateInternalFileName(name)
	return fmt.Sprintf("archive:/%s/%s", id, id)
}

func TestDefaultPipeline(t *testing.T) {
	var packed *domain.WritePlan
	bc := buildContext(t, &domain.Callbacks{
		PostDependency: supplyCustom,
		PostPacking: func(_ *domain.BuildParameters, _ *domain.DependencyData, plan *domain.WritePlan) domain.ReturnCode {
			packed = plan
			return domain.Success
		},
	})

	p, err := scheduler.DefaultPipeline()
	require.NoError(t, err)

	s := scheduler.NewScheduler()
	code, err := s.Run(context.Background(), p, bc)
	require.NoError(t, err)
	require.Equal(t, domain.Success, code)

	deps, err := buildctx.Get[*domain.DependencyData](bc, domain.TagDependencyData)
	require.NoError(t, err)
	assert.Equal(t, domain.GlobalUsage(5), deps.GlobalUsage)
	assert.Equal(t, domain.GlobalUsage(5), deps.AssetUsage[panelGUID].Global)

	sprites, ok := buildctx.TryGet[*domain.BuildSpriteData](bc, domain.TagSpriteData)
	require.True(t, ok)
	assert.Contains(t, sprites.ImporterData, atlasGUID)

	plan, err := buildctx.Get[*domain.WritePlan](bc, domain.TagBundleWriteData)
	require.NoError(t, err)
	assert.Same(t, plan, packed)

	assert.Equal(t, "ui", plan.FileToBundle[archive("ui")])
	assert.Equal(t, "generated", plan.FileToBundle[archive("generated")])
	assert.Equal(t, []string{archive("ui")}, plan.AssetToFiles[panelGUID])

	sceneFiles := plan.AssetToFiles[sceneGUID]
	require.Len(t, sceneFiles, 2)
	assert.Equal(t, archive("ui"), sceneFiles[1])

	assert.Equal(t, scheduler.StatusCompleted, s.Status(scheduler.StageStripSprites))
	assert.Equal(t, scheduler.StatusCompleted, s.Status(scheduler.StagePostPacking))
}

func TestDefaultPipeline_MissingCustomData(t *testing.T) {
	bc := buildContext(t, &domain.Callbacks{})

	p, err := scheduler.DefaultPipeline()
	require.NoError(t, err)

	code, err := scheduler.NewScheduler().Run(context.Background(), p, bc)
	assert.Equal(t, domain.Error, code)
	require.ErrorContains(t, err, domain.ErrMissingDependencyData.Error())
}

func TestDefaultPipeline_CallbackError(t *testing.T) {
	bc := buildContext(t, &domain.Callbacks{
		PostDependency: func(*domain.BuildParameters, *domain.DependencyData) domain.ReturnCode {
			return domain.Error
		},
	})

	p, err := scheduler.DefaultPipeline()
	require.NoError(t, err)

	s := scheduler.NewScheduler()
	code, err := s.Run(context.Background(), p, bc)
	assert.Equal(t, domain.Error, code)
	require.ErrorContains(t, err, domain.ErrCallbackFailed.Error())
	assert.Equal(t, scheduler.StatusPending, s.Status(scheduler.StageBundlePacking))
	assert.False(t, bc.Contains(domain.TagWriteData))
}

func TestDefaultPipeline_MissingInputs(t *testing.T) {
	bc, err := buildctx.New(&domain.BuildParameters{})
	require.NoError(t, err)

	p, err := scheduler.DefaultPipeline()
	require.NoError(t, err)

	code, err := scheduler.NewScheduler().Run(context.Background(), p, bc)
	assert.Equal(t, domain.Error, code)
	require.ErrorContains(t, err, domain.ErrContextMissing.Error())
}
