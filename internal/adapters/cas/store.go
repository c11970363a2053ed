// Package cas implements the content addressed store for cached records.
package cas

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.RecordStore = (*Store)(nil)

const recordExt = ".rec"

// Store implements ports.RecordStore using a file-per-record strategy.
// Files are sharded by the first two hex digits of the key digest.
type Store struct {
	dir         string
	compression CompressionTag
	parallelism int
}

// NewStore creates a Store rooted at dir.
func NewStore(dir string, compression CompressionTag) *Store {
	return &Store{
		dir:         filepath.Clean(dir),
		compression: compression,
		parallelism: runtime.NumCPU(),
	}
}

// Dir returns the root directory of the store.
func (s *Store) Dir() string {
	return s.dir
}

// GetMany reads the records for keys concurrently. The result has one slot
// per key in key order; absent records and records stored under a different
// key leave a nil slot. Corrupt records also leave a nil slot and are reported
// together in the returned error alongside the result. Any other read failure
// fails the batch.
func (s *Store) GetMany(keys []domain.CacheEntry) ([]*domain.CachedInfo, error) {
	out := make([]*domain.CachedInfo, len(keys))
	corrupt := make([]error, len(keys))

	var g errgroup.Group
	g.SetLimit(s.parallelism)
	for i, key := range keys {
		g.Go(func() error {
			record, err := s.get(key)
			if errors.Is(err, domain.ErrCorruptRecord) {
				corrupt[i] = err
				return nil
			}
			if err != nil {
				return err
			}
			out[i] = record
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, errors.Join(corrupt...)
}

func (s *Store) get(key domain.CacheEntry) (*domain.CachedInfo, error) {
	filename := s.filename(key)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	raw, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read cached record"), "path", filename)
	}

	data, err := unframe(raw)
	if err != nil {
		return nil, zerr.With(err, "path", filename)
	}
	record, err := decodeRecord(data)
	if err != nil {
		return nil, zerr.With(err, "path", filename)
	}
	if record.Asset != key {
		return nil, nil
	}
	return record, nil
}

// PutMany writes records concurrently. Each file is written to a temporary
// name and renamed, so readers never observe a partial record.
func (s *Store) PutMany(records []*domain.CachedInfo) error {
	var g errgroup.Group
	g.SetLimit(s.parallelism)
	for _, record := range records {
		if record == nil {
			continue
		}
		g.Go(func() error {
			return s.put(record)
		})
	}
	return g.Wait()
}

func (s *Store) put(record *domain.CachedInfo) error {
	data, err := encodeRecord(record)
	if err != nil {
		return err
	}
	framed, err := frame(data, s.compression)
	if err != nil {
		return err
	}

	filename := s.filename(record.Asset)
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create record directory"), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create temporary record"), "path", dir)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(framed); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, "failed to write cached record"), "path", tmpName)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, "failed to close cached record"), "path", tmpName)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, "failed to set record permissions"), "path", tmpName)
	}
	if err := os.Rename(tmpName, filename); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, "failed to publish cached record"), "path", filename)
	}
	return nil
}

// Purge removes every record of the store.
func (s *Store) Purge() error {
	if err := os.RemoveAll(s.dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to purge record store"), "path", s.dir)
	}
	return nil
}

func (s *Store) filename(key domain.CacheEntry) string {
	name := fmt.Sprintf("%016x", xxhash.Sum64String(key.String()))
	return filepath.Join(s.dir, name[:2], name+recordExt)
}

// Factory opens stores for a configured directory and compression.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Open implements ports.RecordStoreFactory.
func (f *Factory) Open(dir, compression string) (ports.RecordStore, error) {
	tag, err := ParseCompressionTag(compression)
	if err != nil {
		return nil, err
	}
	return NewStore(dir, tag), nil
}
