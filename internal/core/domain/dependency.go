package domain

import "sync"

// GlobalUsage is a set of engine-wide feature flags (lighting modes, fog
// modes and similar) that scenes enable. Flags are merged with a bitwise OR.
type GlobalUsage uint64

// Merge returns the union of both flag sets.
func (g GlobalUsage) Merge(other GlobalUsage) GlobalUsage {
	return g | other
}

// UsageFlags describes how a single object is used by the build.
type UsageFlags uint32

const (
	// UsageIncluded marks an object explicitly included by its asset.
	UsageIncluded UsageFlags = 1 << iota
	// UsageReferenced marks an object pulled in through a reference.
	UsageReferenced
)

// ObjectUsage pairs an object with its usage flags.
type ObjectUsage struct {
	Object ObjectID   `cbor:"1,keyasint"`
	Flags  UsageFlags `cbor:"2,keyasint"`
}

// UsageTagSet is the usage metadata computed for an asset or scene.
type UsageTagSet struct {
	Global GlobalUsage   `cbor:"1,keyasint"`
	Tags   []ObjectUsage `cbor:"2,keyasint,omitempty"`
}

// UsageCache memoizes per-object usage flags across assets of one build.
type UsageCache struct {
	mu    sync.Mutex
	flags map[ObjectID]UsageFlags
}

// NewUsageCache creates an empty UsageCache.
func NewUsageCache() *UsageCache {
	return &UsageCache{flags: make(map[ObjectID]UsageFlags)}
}

// Lookup returns the memoized flags for an object.
func (c *UsageCache) Lookup(o ObjectID) (UsageFlags, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	f, ok := c.flags[o]
	return f, ok
}

// Store memoizes the flags for an object, merging with any earlier value.
func (c *UsageCache) Store(o ObjectID, f UsageFlags) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.flags[o] |= f
}

// AssetLoadInfo is the dependency graph of one asset.
type AssetLoadInfo struct {
	Asset             GUID       `cbor:"1,keyasint"`
	Address           string     `cbor:"2,keyasint,omitempty"`
	IncludedObjects   []ObjectID `cbor:"3,keyasint,omitempty"`
	ReferencedObjects []ObjectID `cbor:"4,keyasint,omitempty"`
}

// SceneDependencyInfo is the dependency graph of one scene.
type SceneDependencyInfo struct {
	Scene             GUID        `cbor:"1,keyasint"`
	Path              string      `cbor:"2,keyasint"`
	ReferencedObjects []ObjectID  `cbor:"3,keyasint,omitempty"`
	IncludedTypes     []string    `cbor:"4,keyasint,omitempty"`
	GlobalUsage       GlobalUsage `cbor:"5,keyasint"`
}

// SpriteImporterData records how a sprite-imported asset is packed.
type SpriteImporterData struct {
	PackedSprite  bool     `cbor:"1,keyasint"`
	SourceTexture ObjectID `cbor:"2,keyasint"`
}

// ExtendedAssetData lists the visible sub-asset representations of an asset.
type ExtendedAssetData struct {
	Representations []ObjectID `cbor:"1,keyasint"`
}

// DependencyData accumulates the dependency graphs of every asset and scene
// of a build.
type DependencyData struct {
	AssetInfo      map[GUID]AssetLoadInfo
	AssetUsage     map[GUID]UsageTagSet
	SceneInfo      map[GUID]SceneDependencyInfo
	SceneUsage     map[GUID]UsageTagSet
	DependencyHash map[GUID]Hash128
	GlobalUsage    GlobalUsage
	UsageCache     *UsageCache
	ObjectTypes    map[ObjectID][]string
}

// NewDependencyData creates an empty accumulator.
func NewDependencyData() *DependencyData {
	return &DependencyData{
		AssetInfo:      make(map[GUID]AssetLoadInfo),
		AssetUsage:     make(map[GUID]UsageTagSet),
		SceneInfo:      make(map[GUID]SceneDependencyInfo),
		SceneUsage:     make(map[GUID]UsageTagSet),
		DependencyHash: make(map[GUID]Hash128),
		UsageCache:     NewUsageCache(),
		ObjectTypes:    make(map[ObjectID][]string),
	}
}

// RecordTypes stores type observations, keeping the first seen list per object.
func (d *DependencyData) RecordTypes(types []ObjectTypes) {
	for _, t := range types {
		if _, ok := d.ObjectTypes[t.Object]; ok {
			continue
		}
		d.ObjectTypes[t.Object] = t.Types
	}
}

// BuildSpriteData holds sprite importer data per asset.
type BuildSpriteData struct {
	ImporterData map[GUID]SpriteImporterData
}

// NewBuildSpriteData creates an empty BuildSpriteData.
func NewBuildSpriteData() *BuildSpriteData {
	return &BuildSpriteData{ImporterData: make(map[GUID]SpriteImporterData)}
}

// BuildExtendedAssetData holds extended representation data per asset.
type BuildExtendedAssetData struct {
	ExtendedData map[GUID]ExtendedAssetData
}

// NewBuildExtendedAssetData creates an empty BuildExtendedAssetData.
func NewBuildExtendedAssetData() *BuildExtendedAssetData {
	return &BuildExtendedAssetData{ExtendedData: make(map[GUID]ExtendedAssetData)}
}
