// Package buildcache derives cache entries for assets, files and script types
// and serves cached records whose recorded dependencies are still current.
package buildcache

import (
	"os"
	"path/filepath"

	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
	"go.trai.ch/zerr"
)

// ObjectEntryVersion is the version of entries derived for referenced objects.
const ObjectEntryVersion = 1

var _ ports.BuildCache = (*Cache)(nil)

// Cache implements ports.BuildCache on top of a record store.
// A nil store disables persistence: every lookup misses and saves are dropped.
type Cache struct {
	store  ports.RecordStore
	db     ports.AssetDatabase
	hasher ports.Hasher
	log    ports.Logger
	root   string
	types  domain.TypeDB
}

// NewCache creates a Cache. Relative file entries resolve against root.
func NewCache(
	store ports.RecordStore,
	db ports.AssetDatabase,
	hasher ports.Hasher,
	log ports.Logger,
	root string,
	types domain.TypeDB,
) *Cache {
	return &Cache{
		store:  store,
		db:     db,
		hasher: hasher,
		log:    log,
		root:   root,
		types:  types,
	}
}

// GetCacheEntry returns the asset entry for guid at the given signed version.
func (c *Cache) GetCacheEntry(guid domain.GUID, version int) (domain.CacheEntry, error) {
	content, err := c.db.AssetHash(guid)
	if err != nil {
		return domain.CacheEntry{}, err
	}
	return domain.CacheEntry{
		Hash:    digest(assetDomainKey, content[:], guid[:], int64Bytes(int64(version))),
		GUID:    guid,
		Version: version,
		Kind:    domain.EntryAsset,
	}, nil
}

// GetFileEntry returns the entry for a loose file. A file that does not exist
// on disk, such as the built-in resources, hashes by its path alone.
func (c *Cache) GetFileEntry(path string) (domain.CacheEntry, error) {
	full := path
	if !filepath.IsAbs(full) {
		full = filepath.Join(c.root, filepath.FromSlash(path))
	}

	var content uint64
	if _, err := os.Stat(full); err == nil {
		sum, err := c.hasher.ComputeFileHash(full)
		if err != nil {
			return domain.CacheEntry{}, zerr.With(zerr.Wrap(err, "failed to hash file entry"), "path", path)
		}
		content = sum
	}

	return domain.CacheEntry{
		Hash: digest(fileDomainKey, []byte(path), uint64Bytes(content)),
		Kind: domain.EntryFile,
		File: path,
	}, nil
}

// GetScriptTypeEntry returns the entry for a script type and its current version.
func (c *Cache) GetScriptTypeEntry(name string) domain.CacheEntry {
	return domain.CacheEntry{
		Hash:       digest(scriptDomainKey, []byte(name), []byte(c.types[name])),
		Kind:       domain.EntryScriptType,
		ScriptType: name,
	}
}

// GetObjectEntry returns the asset entry owning obj, or a file entry for
// GUID-less objects.
func (c *Cache) GetObjectEntry(obj domain.ObjectID) (domain.CacheEntry, error) {
	if obj.GUID.IsEmpty() {
		return c.GetFileEntry(obj.FilePath.String())
	}
	return c.GetCacheEntry(obj.GUID, ObjectEntryVersion)
}

// ComposeEntry returns base with its digest folded together with deps.
func (c *Cache) ComposeEntry(base domain.CacheEntry, deps []domain.CacheEntry) domain.CacheEntry {
	if len(deps) == 0 {
		return base
	}
	base.Hash = composeDigest(base.Hash, deps)
	return base
}

// LoadCached returns one slot per entry, nil for a miss. A record misses when
// its stored key differs from the entry or when any recorded dependency no
// longer derives to the recorded entry. Storage failures degrade to misses.
func (c *Cache) LoadCached(entries []domain.CacheEntry) []*domain.CachedInfo {
	out := make([]*domain.CachedInfo, len(entries))
	if c.store == nil || len(entries) == 0 {
		return out
	}

	records, err := c.store.GetMany(entries)
	if err != nil && records == nil {
		c.log.Warn("cached records unavailable, running uncached: " + err.Error())
		return out
	}
	if err != nil {
		c.log.Warn("skipping unreadable cached records: " + err.Error())
	}

	current := make(map[domain.CacheEntry]bool)
	for i, record := range records {
		if record == nil || record.Asset != entries[i] {
			continue
		}
		if c.dependenciesCurrent(record.Dependencies, current) {
			out[i] = record
		}
	}
	return out
}

func (c *Cache) dependenciesCurrent(deps []domain.CacheEntry, memo map[domain.CacheEntry]bool) bool {
	for _, dep := range deps {
		ok, seen := memo[dep]
		if !seen {
			refreshed, err := c.refresh(dep)
			ok = err == nil && refreshed == dep
			memo[dep] = ok
		}
		if !ok {
			return false
		}
	}
	return true
}

func (c *Cache) refresh(dep domain.CacheEntry) (domain.CacheEntry, error) {
	switch dep.Kind {
	case domain.EntryAsset:
		return c.GetCacheEntry(dep.GUID, dep.Version)
	case domain.EntryFile:
		return c.GetFileEntry(dep.File)
	case domain.EntryScriptType:
		return c.GetScriptTypeEntry(dep.ScriptType), nil
	default:
		return dep, nil
	}
}

// SaveCached persists records. Failures are logged and never fail a build.
func (c *Cache) SaveCached(records []*domain.CachedInfo) {
	if c.store == nil {
		return
	}

	valid := make([]*domain.CachedInfo, 0, len(records))
	for _, r := range records {
		if r != nil && r.Asset.IsValid() {
			valid = append(valid, r)
		}
	}
	if len(valid) == 0 {
		return
	}

	if err := c.store.PutMany(valid); err != nil {
		c.log.Warn("failed to save cached records: " + err.Error())
	}
}
