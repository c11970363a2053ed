package domain

// ContextTag names a capability an object can be registered under in a
// build context.
type ContextTag string

const (
	TagBuildParameters    ContextTag = "build_parameters"
	TagBuildContent       ContextTag = "build_content"
	TagBundleContent      ContextTag = "bundle_content"
	TagDependencyData     ContextTag = "dependency_data"
	TagWriteData          ContextTag = "write_data"
	TagBundleWriteData    ContextTag = "bundle_write_data"
	TagSpriteData         ContextTag = "sprite_data"
	TagExtendedAssetData  ContextTag = "extended_asset_data"
	TagDependencyCallback ContextTag = "dependency_callback"
	TagPackingCallback    ContextTag = "packing_callback"
	TagBuildCache         ContextTag = "build_cache"
	TagBuildLogger        ContextTag = "build_logger"
	TagProgressTracker    ContextTag = "progress_tracker"
	TagIdentifiers        ContextTag = "deterministic_identifiers"
	TagAssetStore         ContextTag = "asset_store"
	TagAssetDatabase      ContextTag = "asset_database"
	TagCustomAssets       ContextTag = "custom_assets"
)

// ContextObject is implemented by values that declare the tags they serve.
type ContextObject interface {
	ContextTags() []ContextTag
}

// ContextTags implements ContextObject.
func (*BuildParameters) ContextTags() []ContextTag {
	return []ContextTag{TagBuildParameters}
}

// ContextTags implements ContextObject.
func (*BundleBuildContent) ContextTags() []ContextTag {
	return []ContextTag{TagBuildContent, TagBundleContent, TagCustomAssets}
}

// ContextTags implements ContextObject.
func (*DependencyData) ContextTags() []ContextTag {
	return []ContextTag{TagDependencyData}
}

// ContextTags implements ContextObject.
func (*WritePlan) ContextTags() []ContextTag {
	return []ContextTag{TagWriteData, TagBundleWriteData}
}

// ContextTags implements ContextObject.
func (*BuildSpriteData) ContextTags() []ContextTag {
	return []ContextTag{TagSpriteData}
}

// ContextTags implements ContextObject.
func (*BuildExtendedAssetData) ContextTags() []ContextTag {
	return []ContextTag{TagExtendedAssetData}
}

// ContextTags implements ContextObject.
func (*Callbacks) ContextTags() []ContextTag {
	return []ContextTag{TagDependencyCallback, TagPackingCallback}
}

// Callbacks are user hooks run after dependency calculation and after packing.
// A nil hook counts as Success.
type Callbacks struct {
	PostDependency func(params *BuildParameters, deps *DependencyData) ReturnCode
	PostPacking    func(params *BuildParameters, deps *DependencyData, plan *WritePlan) ReturnCode
}

// DependencyHook is the capability behind TagDependencyCallback.
type DependencyHook interface {
	RunPostDependency(params *BuildParameters, deps *DependencyData) ReturnCode
}

// PackingHook is the capability behind TagPackingCallback.
type PackingHook interface {
	RunPostPacking(params *BuildParameters, deps *DependencyData, plan *WritePlan) ReturnCode
}

// RunPostDependency implements DependencyHook.
func (c *Callbacks) RunPostDependency(params *BuildParameters, deps *DependencyData) ReturnCode {
	if c.PostDependency == nil {
		return Success
	}
	return c.PostDependency(params, deps)
}

// RunPostPacking implements PackingHook.
func (c *Callbacks) RunPostPacking(params *BuildParameters, deps *DependencyData, plan *WritePlan) ReturnCode {
	if c.PostPacking == nil {
		return Success
	}
	return c.PostPacking(params, deps, plan)
}
