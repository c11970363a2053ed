package ports

import "go.trai.ch/crate/internal/core/domain"

// BuildCache derives cache entries and persists cached records.
//
//go:generate mockgen -source=build_cache.go -destination=mocks/mock_build_cache.go -package=mocks
type BuildCache interface {
	// GetCacheEntry returns the asset entry for guid at the given signed version.
	GetCacheEntry(guid domain.GUID, version int) (domain.CacheEntry, error)

	// GetFileEntry returns the entry for a loose file.
	GetFileEntry(path string) (domain.CacheEntry, error)

	// GetScriptTypeEntry returns the entry for a script type.
	GetScriptTypeEntry(name string) domain.CacheEntry

	// GetObjectEntry returns the entry owning obj.
	GetObjectEntry(obj domain.ObjectID) (domain.CacheEntry, error)

	// ComposeEntry folds the digests of deps into base.
	ComposeEntry(base domain.CacheEntry, deps []domain.CacheEntry) domain.CacheEntry

	// LoadCached returns one slot per entry, nil for a miss.
	LoadCached(entries []domain.CacheEntry) []*domain.CachedInfo

	// SaveCached persists records. Failures are logged, not returned.
	SaveCached(records []*domain.CachedInfo)
}

// RecordStore persists cached records keyed by their entry.
type RecordStore interface {
	// GetMany returns one slot per key, nil when the record is absent.
	// Corrupt records leave a nil slot and are reported in the error while
	// the result is still returned.
	GetMany(keys []domain.CacheEntry) ([]*domain.CachedInfo, error)

	// PutMany writes records, replacing existing ones.
	PutMany(records []*domain.CachedInfo) error

	// Purge removes every record.
	Purge() error
}

// RecordStoreFactory opens record stores.
type RecordStoreFactory interface {
	Open(dir string, compression string) (RecordStore, error)
}
