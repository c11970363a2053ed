package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crate/internal/adapters/assetdb"
	"go.trai.ch/crate/internal/adapters/cas"
	"go.trai.ch/crate/internal/adapters/config"
	"go.trai.ch/crate/internal/adapters/fs"
	"go.trai.ch/crate/internal/adapters/logger"
	"go.trai.ch/crate/internal/adapters/telemetry"
	"go.trai.ch/crate/internal/app"
	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports/mocks"
	"go.trai.ch/crate/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
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

const crateConfig = `
version: "1"
target: standalone
bundles:
  - name: ui
    assets: ["Assets/UI/*"]
    addresses:
      Assets/UI/panel.mat: panel
  - name: generated
    custom:
      - guid: 000000000000000000000000000000cc
        address: gen/table
        included: ["000000000000000000000000000000cc:1"]
        referenced: ["00000000000000000000000000000002:2100000"]
  - name: levels
    assets: ["Assets/Scenes/*.unity"]
`

var (
	atlasGUID  = domain.MustParseGUID("00000000000000000000000000000001")
	panelGUID  = domain.MustParseGUID("00000000000000000000000000000002")
	sceneGUID  = domain.MustParseGUID("00000000000000000000000000000004")
	customGUID = domain.MustParseGUID("000000000000000000000000000000cc")
)

func writeProject(t *testing.T, crate string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.CrateFileName), []byte(crate), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ManifestFileName), []byte(manifest), 0o600))
	return dir
}

func newApp() *app.App {
	log := logger.New()
	log.SetOutput(io.Discard)
	hasher := fs.NewHasher(fs.NewWalker())
	return app.New(
		config.NewLoader(log),
		assetdb.NewLoader(hasher),
		fs.NewResolver(),
		cas.NewFactory(),
		hasher,
		log,
		logger.NewBuildLogger(log),
		telemetry.NewNoOpTelemetry(),
		scheduler.NewScheduler(),
	)
}

func TestApp_Build_AppliesLogLevel(t *testing.T) {
	dir := writeProject(t, crateConfig+"logLevel: warn\n")

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().SetLevel(domain.LogLevelWarn)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	quiet := logger.New()
	quiet.SetOutput(io.Discard)
	hasher := fs.NewHasher(fs.NewWalker())
	a := app.New(
		config.NewLoader(quiet),
		assetdb.NewLoader(hasher),
		fs.NewResolver(),
		cas.NewFactory(),
		hasher,
		log,
		logger.NewBuildLogger(quiet),
		telemetry.NewNoOpTelemetry(),
		scheduler.NewScheduler(),
	)

	_, err := a.Build(context.Background(), app.BuildOptions{ConfigPath: dir})
	require.NoError(t, err)
}

func TestApp_Build(t *testing.T) {
	dir := writeProject(t, crateConfig)

	plan, err := newApp().Build(context.Background(), app.BuildOptions{ConfigPath: dir})
	require.NoError(t, err)
	require.NotNil(t, plan)

	for _, g := range []domain.GUID{atlasGUID, panelGUID, sceneGUID, customGUID} {
		assert.Contains(t, plan.AssetToFiles, g)
	}
	uiFile, ok := plan.PrimaryFile(panelGUID)
	require.True(t, ok)
	assert.Equal(t, "ui", plan.FileToBundle[uiFile])

	customFiles := plan.AssetToFiles[customGUID]
	require.NotEmpty(t, customFiles)
	assert.Equal(t, "generated", plan.FileToBundle[customFiles[0]])
	assert.Contains(t, customFiles, uiFile)

	data, err := os.ReadFile(filepath.Join(dir, domain.DefaultOutputDir, domain.WritePlanFileName))
	require.NoError(t, err)
	var written domain.WritePlan
	require.NoError(t, json.Unmarshal(data, &written))
	assert.Equal(t, plan.FileToBundle, written.FileToBundle)

	_, err = os.Stat(filepath.Join(dir, domain.DefaultCachePath()))
	require.NoError(t, err)
}

func TestApp_Build_WarmCacheMatchesColdBuild(t *testing.T) {
	dir := writeProject(t, crateConfig)
	a := newApp()

	cold, err := a.Build(context.Background(), app.BuildOptions{ConfigPath: dir})
	require.NoError(t, err)

	warm, err := a.Build(context.Background(), app.BuildOptions{ConfigPath: dir})
	require.NoError(t, err)

	assert.Equal(t, cold.AssetToFiles, warm.AssetToFiles)
	assert.Equal(t, cold.FileToBundle, warm.FileToBundle)
}

func TestApp_Build_NoCache(t *testing.T) {
	dir := writeProject(t, crateConfig)

	_, err := newApp().Build(context.Background(), app.BuildOptions{ConfigPath: dir, NoCache: true, NonRecursive: true})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, domain.DefaultCachePath()))
	assert.True(t, os.IsNotExist(err))
}

func TestApp_Build_Errors(t *testing.T) {
	tests := []struct {
		name    string
		crate   string
		wantErr error
	}{
		{
			name: "pattern without match",
			crate: `
bundles:
  - name: ui
    assets: ["Assets/Missing/*"]
`,
			wantErr: domain.ErrPatternNoMatch,
		},
		{
			name: "mixed bundle",
			crate: `
bundles:
  - name: everything
    assets: ["Assets/**"]
`,
			wantErr: domain.ErrMixedBundle,
		},
		{
			name: "asset in two bundles",
			crate: `
bundles:
  - name: ui
    assets: ["Assets/UI/panel.mat", "Assets/UI/panel.mat"]
  - name: again
    assets: ["Assets/UI/panel.mat"]
`,
			wantErr: domain.ErrAssetInMultipleBundles,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeProject(t, tt.crate)
			_, err := newApp().Build(context.Background(), app.BuildOptions{ConfigPath: dir})
			require.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

func TestApp_Build_MissingConfig(t *testing.T) {
	_, err := newApp().Build(context.Background(), app.BuildOptions{ConfigPath: filepath.Join(t.TempDir(), "nope")})
	require.ErrorContains(t, err, domain.ErrConfigNotFound.Error())
}

func TestApp_Build_Canceled(t *testing.T) {
	dir := writeProject(t, crateConfig)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newApp().Build(ctx, app.BuildOptions{ConfigPath: dir})
	require.ErrorIs(t, err, domain.ErrBuildCanceled)

	_, statErr := os.Stat(filepath.Join(dir, domain.DefaultOutputDir, domain.WritePlanFileName))
	assert.True(t, os.IsNotExist(statErr))
}

func TestApp_Build_LoaderFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(".").Return(nil, errors.New("disk on fire"))

	a := app.New(loader, nil, nil, nil, nil, nil, nil, nil, scheduler.NewScheduler())
	_, err := a.Build(context.Background(), app.BuildOptions{})
	require.ErrorContains(t, err, "failed to load configuration")
	require.ErrorContains(t, err, "disk on fire")
}

func TestApp_Clean(t *testing.T) {
	dir := writeProject(t, crateConfig)
	a := newApp()

	_, err := a.Build(context.Background(), app.BuildOptions{ConfigPath: dir})
	require.NoError(t, err)

	require.NoError(t, a.Clean(context.Background(), dir))
	_, err = os.Stat(filepath.Join(dir, domain.DefaultCachePath()))
	assert.True(t, os.IsNotExist(err))
}

func TestApp_Clean_UnknownCompression(t *testing.T) {
	dir := writeProject(t, `
cache:
  compression: brotli
bundles:
  - name: ui
    assets: ["Assets/UI/*"]
`)
	err := newApp().Clean(context.Background(), dir)
	require.ErrorContains(t, err, domain.ErrUnknownCompression.Error())
}
