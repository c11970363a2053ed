package assetdb

import (
	"slices"

	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/zerr"
)

// IncludedObjects returns the objects declared by an asset, primary first.
func (c *Catalog) IncludedObjects(guid domain.GUID, _ domain.ContentSettings) ([]domain.ObjectID, error) {
	a, ok := c.assets[guid]
	if !ok {
		return nil, zerr.With(domain.ErrAssetNotFound, "guid", guid.String())
	}
	return slices.Clone(a.objects), nil
}

// ReferencedObjects returns the references of objs, excluding objs themselves.
// Recursive mode walks the manifest breadth first and keeps first-encounter
// order. Non-recursive mode returns only direct references to known objects.
func (c *Catalog) ReferencedObjects(
	objs []domain.ObjectID, _ domain.ContentSettings, mode domain.DependencyMode,
) ([]domain.ObjectID, error) {
	inputs := domain.NewObjectSet(objs...)
	out := domain.NewObjectSet()

	var queue []domain.ObjectID
	for _, o := range objs {
		if obj, ok := c.objects[o]; ok {
			queue = append(queue, obj.references...)
		}
	}

	if mode == domain.DependencyNonRecursive {
		for _, ref := range queue {
			if _, known := c.objects[ref]; known && !inputs.Contains(ref) {
				out.Add(ref)
			}
		}
		return out.Slice(), nil
	}

	for i := 0; i < len(queue); i++ {
		ref := queue[i]
		if inputs.Contains(ref) || out.Contains(ref) {
			continue
		}
		out.Add(ref)
		if obj, ok := c.objects[ref]; ok {
			queue = append(queue, obj.references...)
		}
	}
	return out.Slice(), nil
}

// Representations returns the visible representations of an asset, primary
// first. Without declared representations the primary object stands alone.
func (c *Catalog) Representations(guid domain.GUID, _ domain.ContentSettings) ([]domain.ObjectID, error) {
	a, ok := c.assets[guid]
	if !ok {
		return nil, zerr.With(domain.ErrAssetNotFound, "guid", guid.String())
	}
	if len(a.representations) > 0 {
		return slices.Clone(a.representations), nil
	}
	if len(a.objects) > 0 {
		return []domain.ObjectID{a.objects[0]}, nil
	}
	return nil, nil
}

// UsageTags flags every object of all as included or referenced and memoizes
// the flags in cache when one is given.
func (c *Catalog) UsageTags(
	all, included []domain.ObjectID, global domain.GlobalUsage, cache *domain.UsageCache,
) (domain.UsageTagSet, error) {
	inc := domain.NewObjectSet(included...)
	objs := domain.NewObjectSet(all...)

	set := domain.UsageTagSet{Global: global}
	for _, o := range objs.Slice() {
		flags := domain.UsageReferenced
		if inc.Contains(o) {
			flags = domain.UsageIncluded
		}
		if cache != nil {
			cache.Store(o, flags)
		}
		set.Tags = append(set.Tags, domain.ObjectUsage{Object: o, Flags: flags})
	}
	return set, nil
}

// SceneDependencies resolves the scene at path against the manifest.
func (c *Catalog) SceneDependencies(
	path string, settings domain.ContentSettings, cache *domain.UsageCache, mode domain.DependencyMode,
) (domain.SceneDependencyInfo, domain.UsageTagSet, error) {
	guid, ok := c.byPath[path]
	if !ok {
		return domain.SceneDependencyInfo{}, domain.UsageTagSet{}, zerr.With(domain.ErrAssetNotFound, "path", path)
	}
	scene := c.assets[guid]
	if scene.kind != domain.KindScene {
		return domain.SceneDependencyInfo{}, domain.UsageTagSet{}, zerr.With(domain.ErrInvalidAsset, "path", path)
	}

	refs, err := c.ReferencedObjects(scene.objects, settings, mode)
	if err != nil {
		return domain.SceneDependencyInfo{}, domain.UsageTagSet{}, err
	}

	var types []string
	for _, o := range scene.objects {
		types = append(types, c.objects[o].types...)
	}
	slices.Sort(types)

	all := append(slices.Clone(scene.objects), refs...)
	usage, err := c.UsageTags(all, scene.objects, scene.globalUsage, cache)
	if err != nil {
		return domain.SceneDependencyInfo{}, domain.UsageTagSet{}, err
	}

	info := domain.SceneDependencyInfo{
		Scene:             guid,
		Path:              path,
		ReferencedObjects: refs,
		IncludedTypes:     slices.Compact(types),
		GlobalUsage:       scene.globalUsage,
	}
	return info, usage, nil
}

// ObjectTypes returns the type names of obj, main type first.
func (c *Catalog) ObjectTypes(obj domain.ObjectID) []string {
	o, ok := c.objects[obj]
	if !ok {
		return nil
	}
	return slices.Clone(o.types)
}
