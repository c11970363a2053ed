package domain

import "fmt"

// EntryKind classifies what a CacheEntry identifies.
type EntryKind uint8

const (
	// EntryAsset identifies an asset by GUID.
	EntryAsset EntryKind = iota
	// EntryFile identifies a loose file by path.
	EntryFile
	// EntryData identifies an opaque piece of data.
	EntryData
	// EntryScriptType identifies a script type by name.
	EntryScriptType
)

// String returns the string representation of the EntryKind.
func (k EntryKind) String() string {
	switch k {
	case EntryAsset:
		return "asset"
	case EntryFile:
		return "file"
	case EntryData:
		return "data"
	case EntryScriptType:
		return "script_type"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// CacheEntry is a content-addressed key for a cached record.
// Two entries are equal only when all fields are equal, so the == operator
// is the cache hit test.
type CacheEntry struct {
	Hash       Hash128   `cbor:"1,keyasint"`
	GUID       GUID      `cbor:"2,keyasint"`
	Version    int       `cbor:"3,keyasint"`
	Kind       EntryKind `cbor:"4,keyasint"`
	File       string    `cbor:"5,keyasint,omitempty"`
	ScriptType string    `cbor:"6,keyasint,omitempty"`
}

// IsValid reports whether the entry has a digest and, for assets, an identity.
func (e CacheEntry) IsValid() bool {
	if !e.Hash.IsValid() {
		return false
	}
	if e.Kind == EntryAsset && e.GUID.IsEmpty() {
		return false
	}
	return true
}

// String returns a human readable form used in logs and store keys.
func (e CacheEntry) String() string {
	switch e.Kind {
	case EntryFile:
		return fmt.Sprintf("(%s|%s|%d|%s)", e.Kind, e.File, e.Version, e.Hash)
	case EntryScriptType:
		return fmt.Sprintf("(%s|%s|%d|%s)", e.Kind, e.ScriptType, e.Version, e.Hash)
	default:
		return fmt.Sprintf("(%s|%s|%d|%s)", e.Kind, e.GUID, e.Version, e.Hash)
	}
}

// CachedInfo is a persisted record keyed by a CacheEntry.
// Dependencies lists every entry whose change must invalidate the record.
type CachedInfo struct {
	Asset        CacheEntry   `cbor:"1,keyasint"`
	Dependencies []CacheEntry `cbor:"2,keyasint,omitempty"`
	Data         CachedData   `cbor:"3,keyasint"`
}

// CachedData is the tagged payload of a CachedInfo. Each field is one tag;
// unset tags are omitted from the encoded record.
type CachedData struct {
	AssetInfo        *AssetLoadInfo       `cbor:"1,keyasint,omitempty"`
	SceneInfo        *SceneDependencyInfo `cbor:"2,keyasint,omitempty"`
	UsageTags        *UsageTagSet         `cbor:"3,keyasint,omitempty"`
	SpriteData       *SpriteImporterData  `cbor:"4,keyasint,omitempty"`
	ExtendedData     *ExtendedAssetData   `cbor:"5,keyasint,omitempty"`
	PrefabDependency Hash128              `cbor:"6,keyasint,omitempty"`
	ObjectTypes      []ObjectTypes        `cbor:"7,keyasint,omitempty"`
}
