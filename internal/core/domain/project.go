package domain

// CacheSettings configures the cached record store.
type CacheSettings struct {
	Enabled     bool
	Path        string
	Compression string
}

// CustomAsset is generated content whose dependency graph is declared
// directly instead of being computed from the asset store.
type CustomAsset struct {
	GUID       GUID
	Address    string
	Included   []ObjectID
	Referenced []ObjectID
}

// LoadInfo returns the dependency graph declared for the custom asset.
func (c CustomAsset) LoadInfo() AssetLoadInfo {
	return AssetLoadInfo{
		Asset:             c.GUID,
		Address:           c.Address,
		IncludedObjects:   c.Included,
		ReferencedObjects: c.Referenced,
	}
}

// BundleSpec is a bundle definition before its patterns are expanded.
type BundleSpec struct {
	Name      string
	Patterns  []string
	Addresses map[string]string
	Custom    []CustomAsset
}

// Project is a loaded crate.yaml.
type Project struct {
	Root       string
	Manifest   string
	Cache      CacheSettings
	Parameters BuildParameters
	Bundles    []BundleSpec
	LogLevel   LogLevel
}

// CustomAssets returns the custom assets of every bundle in declaration order.
func (p *Project) CustomAssets() []CustomAsset {
	var out []CustomAsset
	for _, b := range p.Bundles {
		out = append(out, b.Custom...)
	}
	return out
}
