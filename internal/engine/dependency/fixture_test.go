package dependency_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/crate/internal/adapters/assetdb"
	"go.trai.ch/crate/internal/adapters/cas"
	"go.trai.ch/crate/internal/adapters/fs"
	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
	"go.trai.ch/crate/internal/core/ports/mocks"
	"go.trai.ch/crate/internal/engine/buildcache"
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
    representations: [2800000, 21300000]
  - guid: 00000000000000000000000000000002
    path: Assets/UI/panel.mat
    objects:
      - id: 2100000
        types: [Material]
        references:
          - "Assets/UI/atlas.png:21300000"
          - "library/unity default resources:10"
  - guid: 00000000000000000000000000000003
    path: Assets/UI/hud.prefab
    objects:
      - id: 100100000
        types: [GameObject, Transform]
        references: ["00000000000000000000000000000002:2100000"]
  - guid: 00000000000000000000000000000004
    path: Assets/Scenes/level.unity
    kind: scene
    globalUsage: 5
    dependencies: [Assets/UI/hud.prefab]
    objects:
      - id: 1
        types: [GameObject, Light]
        references: ["Assets/UI/hud.prefab:100100000"]
files:
  - path: library/unity default resources
    objects:
      - id: 10
        types: [Shader]
`

var (
	atlasGUID  = domain.MustParseGUID("00000000000000000000000000000001")
	panelGUID  = domain.MustParseGUID("00000000000000000000000000000002")
	prefabGUID = domain.MustParseGUID("00000000000000000000000000000003")
	sceneGUID  = domain.MustParseGUID("00000000000000000000000000000004")

	texture = domain.ObjectID{GUID: atlasGUID, LocalID: 2800000}
	sprite  = domain.ObjectID{GUID: atlasGUID, LocalID: 21300000}
	panel   = domain.ObjectID{GUID: panelGUID, LocalID: 2100000}
	hud     = domain.ObjectID{GUID: prefabGUID, LocalID: 100100000}
	shader  = domain.ObjectID{
		FilePath: domain.NewInternedString(domain.DefaultResourcesPath),
		LocalID:  10,
		FileType: domain.FileTypeBuiltin,
	}

	allAssets = []domain.GUID{atlasGUID, panelGUID, prefabGUID}
)

func loadCatalog(t *testing.T) (string, ports.AssetCatalog) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, domain.ManifestFileName)
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0o600))

	catalog, err := assetdb.NewLoader(fs.NewHasher(fs.NewWalker())).Load(path)
	require.NoError(t, err)
	return dir, catalog
}

func newBuildCache(t *testing.T, dir string, catalog ports.AssetCatalog, log *mocks.MockLogger) *buildcache.Cache {
	t.Helper()
	store := cas.NewStore(filepath.Join(dir, domain.DefaultCachePath()), cas.CompressionZstd)
	return buildcache.NewCache(store, catalog, fs.NewHasher(fs.NewWalker()), log, dir, nil)
}

func touch(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}
