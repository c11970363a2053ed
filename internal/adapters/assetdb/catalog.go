// Package assetdb serves asset dependency queries from a YAML asset manifest.
package assetdb

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.AssetCatalog = (*Catalog)(nil)

type asset struct {
	guid            domain.GUID
	path            string
	kind            domain.AssetKind
	importer        string
	objects         []domain.ObjectID
	representations []domain.ObjectID
	dependencies    []string
	globalUsage     domain.GlobalUsage
	metaHash        uint64
}

type object struct {
	types      []string
	references []domain.ObjectID
}

// Catalog is an in-memory asset store and asset database built from a manifest.
type Catalog struct {
	root   string
	hasher ports.Hasher

	assets  map[domain.GUID]*asset
	byPath  map[string]domain.GUID
	paths   []string
	objects map[domain.ObjectID]*object
}

// Kind implements domain.AssetClassifier.
func (c *Catalog) Kind(guid domain.GUID) domain.AssetKind {
	a, ok := c.assets[guid]
	if !ok {
		return domain.KindInvalid
	}
	return a.kind
}

// Path returns the asset path of guid, or "" when unknown.
func (c *Catalog) Path(guid domain.GUID) string {
	a, ok := c.assets[guid]
	if !ok {
		return ""
	}
	return a.path
}

// AssetHash packs the xxhash of the asset file and of its manifest entry.
// A missing file hashes to zero so generated assets stay cacheable.
func (c *Catalog) AssetHash(guid domain.GUID) (domain.Hash128, error) {
	a, ok := c.assets[guid]
	if !ok {
		return domain.Hash128{}, zerr.With(domain.ErrAssetNotFound, "guid", guid.String())
	}

	var content uint64
	full := filepath.Join(c.root, filepath.FromSlash(a.path))
	if _, err := os.Stat(full); err == nil {
		sum, err := c.hasher.ComputeFileHash(full)
		if err != nil {
			return domain.Hash128{}, zerr.With(zerr.Wrap(err, "failed to hash asset"), "path", a.path)
		}
		content = sum
	}

	var h domain.Hash128
	binary.LittleEndian.PutUint64(h[:8], content)
	binary.LittleEndian.PutUint64(h[8:], a.metaHash)
	return h, nil
}

// FileDependencies returns the files the asset at path depends on.
func (c *Catalog) FileDependencies(path string) []string {
	guid, ok := c.byPath[path]
	if !ok {
		return nil
	}
	return slices.Clone(c.assets[guid].dependencies)
}

// IsSpriteImport reports whether the asset uses the sprite importer.
func (c *Catalog) IsSpriteImport(guid domain.GUID) bool {
	a, ok := c.assets[guid]
	return ok && a.importer == importerSprite
}

// Paths returns every asset path in sorted order.
func (c *Catalog) Paths() []string {
	return slices.Clone(c.paths)
}

// GUIDForPath resolves an asset path.
func (c *Catalog) GUIDForPath(path string) (domain.GUID, bool) {
	guid, ok := c.byPath[path]
	return guid, ok
}

// metadataHash digests everything in the manifest entry that affects the build.
func metadataHash(dto *AssetDTO) uint64 {
	h := xxhash.New()
	write := func(parts ...string) {
		for _, p := range parts {
			_, _ = h.WriteString(p)
			_, _ = h.Write([]byte{0})
		}
	}

	write(dto.Kind, dto.Importer, strconv.FormatUint(dto.GlobalUsage, 10))
	for _, o := range dto.Objects {
		write(strconv.FormatInt(o.ID, 10), strings.Join(o.Types, ","), strings.Join(o.References, ","))
	}
	for _, r := range dto.Representations {
		write(strconv.FormatInt(r, 10))
	}
	write(dto.Dependencies...)
	return h.Sum64()
}

// sortedTypes keeps the main type first and sorts the remaining names.
func sortedTypes(types []string) []string {
	if len(types) == 0 {
		return nil
	}
	rest := slices.Clone(types[1:])
	slices.Sort(rest)
	rest = slices.Compact(rest)
	out := []string{types[0]}
	for _, t := range rest {
		if t != types[0] {
			out = append(out, t)
		}
	}
	return out
}
