package config

// Cratefile represents the structure of the crate.yaml configuration file.
type Cratefile struct {
	Version      string            `yaml:"version"`
	Target       string            `yaml:"target"`
	Manifest     string            `yaml:"manifest"`
	Output       string            `yaml:"output"`
	LogLevel     string            `yaml:"logLevel"`
	Cache        CacheDTO          `yaml:"cache"`
	Dependencies DependenciesDTO   `yaml:"dependencies"`
	Sprites      SpritesDTO        `yaml:"sprites"`
	SubAssets    SubAssetsDTO      `yaml:"subAssets"`
	ScriptTypes  map[string]string `yaml:"scriptTypes"`
	Bundles      []BundleDTO       `yaml:"bundles"`
}

// CacheDTO configures the cached record store.
type CacheDTO struct {
	Enabled     *bool  `yaml:"enabled"`
	Path        string `yaml:"path"`
	Compression string `yaml:"compression"`
}

// DependenciesDTO selects the dependency traversal mode.
type DependenciesDTO struct {
	Mode string `yaml:"mode"`
}

// SpritesDTO configures sprite atlas handling.
type SpritesDTO struct {
	Packing *bool `yaml:"packing"`
}

// SubAssetsDTO configures visible sub-asset representations.
type SubAssetsDTO struct {
	DisableRepresentations bool `yaml:"disableRepresentations"`
}

// BundleDTO represents a bundle definition in the configuration.
type BundleDTO struct {
	Name      string            `yaml:"name"`
	Assets    []string          `yaml:"assets"`
	Addresses map[string]string `yaml:"addresses"`
	Custom    []CustomAssetDTO  `yaml:"custom"`
}

// CustomAssetDTO declares generated content with an explicit object graph.
type CustomAssetDTO struct {
	GUID       string   `yaml:"guid"`
	Address    string   `yaml:"address"`
	Included   []string `yaml:"included"`
	Referenced []string `yaml:"referenced"`
}
