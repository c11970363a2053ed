// Package dependency computes the object level dependency graphs of the
// assets and scenes of a build, reusing cached graphs whose inputs are unchanged.
package dependency

import (
	"slices"

	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
)

const (
	// AssetVersion is the processing version of asset dependency records.
	AssetVersion = 5
	// SceneVersion is the processing version of scene dependency records.
	SceneVersion = 5

	prefabExtension = ".prefab"
)

// filterReferences reduces the direct valid references of owner to what its
// own file must carry in non-recursive mode. References into other assets of
// the build are not followed; each such dependency contributes the primary
// representation of its asset and itself. Everything else is followed
// through its own direct references until nothing new turns up.
func filterReferences(
	store ports.AssetStore,
	owner domain.GUID,
	direct []domain.ObjectID,
	buildSet map[domain.GUID]struct{},
	settings domain.ContentSettings,
) ([]domain.ObjectID, error) {
	collected := domain.NewObjectSet()
	encountered := domain.NewObjectSet()

	refs := direct
	for len(refs) > 0 {
		var next []domain.ObjectID
		for _, ref := range refs {
			if _, inBuild := buildSet[ref.GUID]; inBuild && !ref.GUID.IsEmpty() {
				if ref.GUID != owner {
					encountered.Add(ref)
				}
				continue
			}
			if collected.Contains(ref) {
				continue
			}
			collected.Add(ref)
			next = append(next, ref)
		}
		if len(next) == 0 {
			break
		}

		var err error
		refs, err = store.ReferencedObjects(next, settings, domain.DependencyNonRecursive)
		if err != nil {
			return nil, err
		}
	}

	deps := encountered.Slice()
	for _, dep := range deps {
		// Custom assets have no representations in the store.
		reps, err := store.Representations(dep.GUID, settings)
		if err == nil && len(reps) > 0 {
			collected.Add(reps[0])
		}
	}
	collected.Add(deps...)
	return collected.Slice(), nil
}

// observeTypes records the type names of every included and referenced object.
func observeTypes(store ports.AssetStore, included, referenced []domain.ObjectID) []domain.ObjectTypes {
	out := make([]domain.ObjectTypes, 0, len(included)+len(referenced))
	for _, group := range [][]domain.ObjectID{included, referenced} {
		for _, obj := range group {
			out = append(out, domain.ObjectTypes{Object: obj, Types: store.ObjectTypes(obj)})
		}
	}
	return out
}

// entrySet is an insertion ordered set of cache entries.
type entrySet struct {
	order []domain.CacheEntry
	seen  map[domain.CacheEntry]struct{}
}

func newEntrySet(entries ...domain.CacheEntry) *entrySet {
	s := &entrySet{seen: make(map[domain.CacheEntry]struct{})}
	for _, e := range entries {
		s.add(e)
	}
	return s
}

func (s *entrySet) add(e domain.CacheEntry) {
	if _, ok := s.seen[e]; ok {
		return
	}
	s.seen[e] = struct{}{}
	s.order = append(s.order, e)
}

// recordDependencies returns the entries a record's validity depends on:
// one entry per referenced object followed by one per unique type name.
func recordDependencies(
	cache ports.BuildCache,
	seed []domain.CacheEntry,
	seedTypes []string,
	referenced []domain.ObjectID,
	types []domain.ObjectTypes,
) ([]domain.CacheEntry, error) {
	deps := newEntrySet(seed...)
	for _, obj := range referenced {
		entry, err := cache.GetObjectEntry(obj)
		if err != nil {
			return nil, err
		}
		deps.add(entry)
	}

	unique := slices.Clone(seedTypes)
	for _, t := range types {
		unique = append(unique, t.Types...)
	}
	seen := make(map[string]struct{}, len(unique))
	for _, name := range unique {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		deps.add(cache.GetScriptTypeEntry(name))
	}
	return deps.order, nil
}

func hasSprite(types []domain.ObjectTypes) bool {
	for _, t := range types {
		if t.IsSprite() {
			return true
		}
	}
	return false
}

func toSet(guids []domain.GUID) map[domain.GUID]struct{} {
	set := make(map[domain.GUID]struct{}, len(guids))
	for _, g := range guids {
		set[g] = struct{}{}
	}
	return set
}

type discardStep struct{}

func (discardStep) End() {}

// reporter adapts optional progress and log sinks.
type reporter struct {
	tracker ports.ProgressTracker
	log     ports.BuildLogger
}

func (r reporter) update(label string) bool {
	if r.tracker == nil {
		return true
	}
	return r.tracker.UpdateInfo(label)
}

func (r reporter) step(label string) ports.Step {
	if r.log == nil {
		return discardStep{}
	}
	return r.log.ScopedStep(domain.LogLevelInfo, label)
}

func (r reporter) entry(level domain.LogLevel, msg string) {
	if r.log != nil {
		r.log.AddEntry(level, msg)
	}
}
