package ports

import "go.trai.ch/crate/internal/core/domain"

// AssetStore answers object level dependency queries about assets and scenes.
//
//go:generate mockgen -source=asset_store.go -destination=mocks/mock_asset_store.go -package=mocks
type AssetStore interface {
	// IncludedObjects returns the objects an asset contributes to a build.
	IncludedObjects(asset domain.GUID, settings domain.ContentSettings) ([]domain.ObjectID, error)

	// ReferencedObjects returns the objects referenced by objs. In recursive mode
	// the result is the transitive closure; otherwise only direct valid references.
	ReferencedObjects(
		objs []domain.ObjectID, settings domain.ContentSettings, mode domain.DependencyMode,
	) ([]domain.ObjectID, error)

	// Representations returns the visible representations of an asset, primary first.
	Representations(asset domain.GUID, settings domain.ContentSettings) ([]domain.ObjectID, error)

	// UsageTags computes usage metadata for the objects of an asset.
	UsageTags(
		all, included []domain.ObjectID, global domain.GlobalUsage, cache *domain.UsageCache,
	) (domain.UsageTagSet, error)

	// SceneDependencies computes the dependency graph of the scene at path.
	SceneDependencies(
		path string, settings domain.ContentSettings, cache *domain.UsageCache, mode domain.DependencyMode,
	) (domain.SceneDependencyInfo, domain.UsageTagSet, error)

	// ObjectTypes returns the sorted type names of an object.
	ObjectTypes(obj domain.ObjectID) []string
}

// AssetDatabase answers identity, path and content hash questions.
type AssetDatabase interface {
	domain.AssetClassifier

	// AssetHash returns the current content digest of an asset and its import settings.
	AssetHash(guid domain.GUID) (domain.Hash128, error)

	// FileDependencies returns the files the asset at path depends on directly.
	FileDependencies(path string) []string

	// IsSpriteImport reports whether the asset is imported as a sprite.
	IsSpriteImport(guid domain.GUID) bool

	// Paths returns every known asset path in sorted order.
	Paths() []string

	// GUIDForPath resolves an asset path.
	GUIDForPath(path string) (domain.GUID, bool)
}

// AssetCatalog is an asset source that serves both roles.
type AssetCatalog interface {
	AssetStore
	AssetDatabase
}

// CatalogLoader opens an asset catalog from a manifest file.
type CatalogLoader interface {
	Load(path string) (AssetCatalog, error)
}
