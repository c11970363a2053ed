// Package packing assigns the objects of a build to bundle files and derives
// the file load order of every asset and scene.
package packing

import (
	"fmt"
	"slices"

	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	assetFileFormat = "archive:/%s/%s"
	sceneFileFormat = "archive:/%s/%s.sharedAssets"
)

// Packer computes the write plan of a bundle layout.
type Packer struct {
	ids ports.Identifiers
}

// NewPacker creates a Packer. A nil ids uses HashedIdentifiers.
func NewPacker(ids ports.Identifiers) *Packer {
	if ids == nil {
		ids = HashedIdentifiers{}
	}
	return &Packer{ids: ids}
}

// packState holds the per run memo of referenced-object lookups.
type packState struct {
	deps    *domain.DependencyData
	lookups map[domain.GUID]*domain.ObjectSet
	edges   map[domain.GUID][]domain.GUID
	plan    *domain.WritePlan
	packed  []domain.GUID
}

// Run packs every bundle of the layout. Bundles whose members are all
// assets or custom assets become one file. Bundles of scenes become one file
// per scene. Bundles that are neither are skipped.
func (p *Packer) Run(
	content domain.BundleContent,
	deps *domain.DependencyData,
	custom []domain.GUID,
) (*domain.WritePlan, error) {
	st := &packState{
		deps:    deps,
		lookups: make(map[domain.GUID]*domain.ObjectSet),
		edges:   make(map[domain.GUID][]domain.GUID),
		plan:    domain.NewWritePlan(),
	}
	customSet := make(map[domain.GUID]struct{}, len(custom))
	for _, g := range custom {
		customSet[g] = struct{}{}
	}

	for _, bundle := range content.BundleLayout() {
		var err error
		switch {
		case allAssets(bundle.Members, content, customSet):
			err = p.packAssets(st, bundle)
		case allScenes(bundle.Members, content):
			err = p.packScenes(st, bundle)
		default:
			continue
		}
		if err != nil {
			return nil, zerr.With(err, "bundle", bundle.Name)
		}
	}

	if err := st.loadOrder(); err != nil {
		return nil, err
	}
	return st.plan, nil
}

func allAssets(members []domain.GUID, content domain.BundleContent, custom map[domain.GUID]struct{}) bool {
	for _, m := range members {
		if _, ok := custom[m]; ok {
			continue
		}
		if content.KindOf(m) != domain.KindAsset {
			return false
		}
	}
	return true
}

func allScenes(members []domain.GUID, content domain.BundleContent) bool {
	for _, m := range members {
		if content.KindOf(m) != domain.KindScene {
			return false
		}
	}
	return true
}

func (p *Packer) packAssets(st *packState, bundle domain.Bundle) error {
	id := p.ids.GenerateInternalFileName(bundle.Name)
	file := fmt.Sprintf(assetFileFormat, id, id)

	objects := domain.NewObjectSet()
	for _, asset := range bundle.Members {
		info, ok := st.deps.AssetInfo[asset]
		if !ok {
			return zerr.With(domain.ErrMissingDependencyData, "asset", asset.String())
		}
		objects.Add(info.IncludedObjects...)

		refs, edges := st.filter(asset, info.ReferencedObjects, nil, nil)
		st.edges[asset] = edges
		objects.Add(refs...)

		st.plan.AssetToFiles[asset] = []string{file}
		st.packed = append(st.packed, asset)
	}

	st.plan.FileToBundle[file] = bundle.Name
	st.plan.FileToObjects[file] = objects.Slice()
	return nil
}

func (p *Packer) packScenes(st *packState, bundle domain.Bundle) error {
	var first string
	var earlier []string
	previousObjects := domain.NewObjectSet()
	var previousAssets []domain.GUID
	seenAssets := make(map[domain.GUID]struct{})

	for _, scene := range bundle.Members {
		info, ok := st.deps.SceneInfo[scene]
		if !ok {
			return zerr.With(domain.ErrMissingDependencyData, "scene", scene.String())
		}

		name := p.ids.GenerateInternalFileName(info.Path)
		if first == "" {
			first = name
		}
		file := fmt.Sprintf(sceneFileFormat, first, name)

		refs, edges := st.filter(scene, info.ReferencedObjects, previousObjects, previousAssets)
		st.edges[scene] = edges
		previousObjects.Add(refs...)
		for _, e := range edges {
			if _, ok := seenAssets[e]; !ok {
				seenAssets[e] = struct{}{}
				previousAssets = append(previousAssets, e)
			}
		}

		st.plan.FileToObjects[file] = refs
		st.plan.FileToBundle[file] = bundle.Name
		st.plan.AssetToFiles[scene] = append([]string{file}, earlier...)
		st.packed = append(st.packed, scene)

		earlier = append(earlier, file)
	}
	return nil
}

// lookup returns the referenced objects of a dependency as a set, memoized
// for the run.
func (st *packState) lookup(info domain.AssetLoadInfo) *domain.ObjectSet {
	if set, ok := st.lookups[info.Asset]; ok {
		return set
	}
	set := domain.NewObjectSet(info.ReferencedObjects...)
	st.lookups[info.Asset] = set
	return set
}

// filter prunes the references owner must carry in its own file and returns
// the assets owner loads before itself. References into other build assets
// become edges. References those assets already carry are dropped. When two
// assets reference each other only the one with the greater identity drops
// the shared references.
func (st *packState) filter(
	owner domain.GUID,
	refs []domain.ObjectID,
	previousObjects *domain.ObjectSet,
	previousAssets []domain.GUID,
) ([]domain.ObjectID, []domain.GUID) {
	var edges []domain.GUID
	var referenced []domain.AssetLoadInfo
	seen := make(map[domain.GUID]struct{})

	pruned := make([]domain.ObjectID, 0, len(refs))
	for _, ref := range refs {
		if ref.IsDefaultResource() {
			continue
		}
		if info, ok := st.deps.AssetInfo[ref.GUID]; ok && !ref.GUID.IsEmpty() {
			if _, dup := seen[info.Asset]; !dup {
				seen[info.Asset] = struct{}{}
				referenced = append(referenced, info)
				edges = append(edges, info.Asset)
			}
			continue
		}
		pruned = append(pruned, ref)
	}

	for _, dep := range referenced {
		if owner.Compare(dep.Asset) >= 0 || !pointsBack(dep, owner) {
			pruned = removeAll(pruned, st.lookup(dep))
		}
	}

	for _, prev := range previousAssets {
		info, ok := st.deps.AssetInfo[prev]
		if !ok {
			continue
		}
		before := len(pruned)
		pruned = removeAll(pruned, st.lookup(info))
		if len(pruned) < before {
			edges = append(edges, info.Asset)
		}
	}

	if previousObjects != nil && previousObjects.Len() > 0 {
		pruned = removeAll(pruned, previousObjects)
	}
	return pruned, edges
}

func pointsBack(dep domain.AssetLoadInfo, owner domain.GUID) bool {
	return slices.ContainsFunc(dep.ReferencedObjects, func(o domain.ObjectID) bool {
		return o.GUID == owner
	})
}

func removeAll(objs []domain.ObjectID, set *domain.ObjectSet) []domain.ObjectID {
	return slices.DeleteFunc(objs, set.Contains)
}

// loadOrder appends the primary file of every edge target to the file list
// of each packed member.
func (st *packState) loadOrder() error {
	for _, member := range st.packed {
		files := st.plan.AssetToFiles[member]
		for _, dep := range st.edges[member] {
			primary, ok := st.plan.PrimaryFile(dep)
			if !ok {
				return zerr.With(zerr.With(domain.ErrMissingBundleFile, "asset", member.String()),
					"reference", dep.String())
			}
			if !slices.Contains(files, primary) {
				files = append(files, primary)
			}
		}
		st.plan.AssetToFiles[member] = files
	}
	return nil
}
