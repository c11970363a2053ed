package assetdb

// Manifest is the structure of an asset manifest file.
type Manifest struct {
	Version string     `yaml:"version"`
	Assets  []AssetDTO `yaml:"assets"`
	Files   []FileDTO  `yaml:"files"`
}

// AssetDTO is one asset or scene of the manifest.
type AssetDTO struct {
	GUID            string      `yaml:"guid"`
	Path            string      `yaml:"path"`
	Kind            string      `yaml:"kind"`
	Importer        string      `yaml:"importer"`
	Objects         []ObjectDTO `yaml:"objects"`
	Representations []int64     `yaml:"representations"`
	Dependencies    []string    `yaml:"dependencies"`
	GlobalUsage     uint64      `yaml:"globalUsage"`
}

// FileDTO is a GUID-less file such as the built-in resources.
type FileDTO struct {
	Path    string      `yaml:"path"`
	Objects []ObjectDTO `yaml:"objects"`
}

// ObjectDTO is one sub-object with its type names and outgoing references.
// References are written "<guid>:<localID>" or "<path>:<localID>".
type ObjectDTO struct {
	ID         int64    `yaml:"id"`
	Types      []string `yaml:"types"`
	References []string `yaml:"references"`
}

const (
	kindAsset = "asset"
	kindScene = "scene"

	importerSprite = "sprite"
)
