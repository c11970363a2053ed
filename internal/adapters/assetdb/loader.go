package assetdb

import (
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.CatalogLoader = (*Loader)(nil)

// Loader opens catalogs from manifest files.
type Loader struct {
	hasher ports.Hasher
}

// NewLoader creates a Loader hashing asset files with hasher.
func NewLoader(hasher ports.Hasher) *Loader {
	return &Loader{hasher: hasher}
}

// Load reads the manifest at path. Asset paths are relative to its directory.
func (l *Loader) Load(path string) (ports.AssetCatalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read asset manifest"), "path", path)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse asset manifest"), "path", path)
	}

	return NewCatalog(filepath.Dir(path), &m, l.hasher)
}

// NewCatalog indexes a decoded manifest.
func NewCatalog(root string, m *Manifest, hasher ports.Hasher) (*Catalog, error) {
	c := &Catalog{
		root:    root,
		hasher:  hasher,
		assets:  make(map[domain.GUID]*asset, len(m.Assets)),
		byPath:  make(map[string]domain.GUID, len(m.Assets)),
		objects: make(map[domain.ObjectID]*object),
	}

	// 1. Register identities so path references can resolve.
	for i := range m.Assets {
		dto := &m.Assets[i]
		guid, err := domain.ParseGUID(dto.GUID)
		if err != nil {
			return nil, err
		}
		if _, dup := c.assets[guid]; dup {
			return nil, zerr.With(zerr.With(domain.ErrInvalidAsset, "reason", "duplicate guid"), "guid", dto.GUID)
		}
		if _, dup := c.byPath[dto.Path]; dup || dto.Path == "" {
			return nil, zerr.With(zerr.With(domain.ErrInvalidAsset, "reason", "duplicate or empty path"), "path", dto.Path)
		}

		kind, err := parseKind(dto.Kind)
		if err != nil {
			return nil, zerr.With(err, "path", dto.Path)
		}

		c.assets[guid] = &asset{
			guid:         guid,
			path:         dto.Path,
			kind:         kind,
			importer:     strings.ToLower(dto.Importer),
			dependencies: slices.Clone(dto.Dependencies),
			globalUsage:  domain.GlobalUsage(dto.GlobalUsage),
			metaHash:     metadataHash(dto),
		}
		c.byPath[dto.Path] = guid
		c.paths = append(c.paths, dto.Path)
	}
	slices.Sort(c.paths)

	// 2. Index objects and parse their references.
	for i := range m.Assets {
		dto := &m.Assets[i]
		a := c.assets[c.byPath[dto.Path]]
		for _, o := range dto.Objects {
			id := domain.ObjectID{GUID: a.guid, LocalID: o.ID, FileType: domain.FileTypeMeta}
			if err := c.addObject(id, o); err != nil {
				return nil, err
			}
			a.objects = append(a.objects, id)
		}
		for _, local := range dto.Representations {
			a.representations = append(a.representations,
				domain.ObjectID{GUID: a.guid, LocalID: local, FileType: domain.FileTypeMeta})
		}
	}
	for _, f := range m.Files {
		for _, o := range f.Objects {
			if err := c.addObject(c.fileObject(f.Path, o.ID), o); err != nil {
				return nil, err
			}
		}
	}

	return c, nil
}

func (c *Catalog) addObject(id domain.ObjectID, dto ObjectDTO) error {
	if _, dup := c.objects[id]; dup {
		return zerr.With(zerr.With(domain.ErrInvalidReference, "reason", "duplicate object"), "object", id.String())
	}
	obj := &object{types: sortedTypes(dto.Types)}
	for _, raw := range dto.References {
		ref, err := c.parseReference(raw)
		if err != nil {
			return err
		}
		obj.references = append(obj.references, ref)
	}
	c.objects[id] = obj
	return nil
}

// parseReference parses "<guid>:<localID>" or "<path>:<localID>".
// A path naming a manifest asset resolves to that asset's identity.
func (c *Catalog) parseReference(raw string) (domain.ObjectID, error) {
	sep := strings.LastIndexByte(raw, ':')
	if sep <= 0 || sep == len(raw)-1 {
		return domain.ObjectID{}, zerr.With(domain.ErrInvalidReference, "reference", raw)
	}
	owner, idText := raw[:sep], raw[sep+1:]

	local, err := strconv.ParseInt(idText, 10, 64)
	if err != nil {
		return domain.ObjectID{}, zerr.With(zerr.Wrap(err, domain.ErrInvalidReference.Error()), "reference", raw)
	}

	if guid, ok := c.byPath[owner]; ok {
		return domain.ObjectID{GUID: guid, LocalID: local, FileType: domain.FileTypeMeta}, nil
	}
	if guid, err := domain.ParseGUID(owner); err == nil {
		return domain.ObjectID{GUID: guid, LocalID: local, FileType: domain.FileTypeMeta}, nil
	}
	return c.fileObject(owner, local), nil
}

func (c *Catalog) fileObject(path string, local int64) domain.ObjectID {
	id := domain.ObjectID{
		FilePath: domain.NewInternedString(path),
		LocalID:  local,
		FileType: domain.FileTypeSerialized,
	}
	if id.IsDefaultResource() {
		id.FileType = domain.FileTypeBuiltin
	}
	return id
}

func parseKind(kind string) (domain.AssetKind, error) {
	switch strings.ToLower(kind) {
	case "", kindAsset:
		return domain.KindAsset, nil
	case kindScene:
		return domain.KindScene, nil
	default:
		return domain.KindInvalid, zerr.With(domain.ErrInvalidAsset, "kind", kind)
	}
}
