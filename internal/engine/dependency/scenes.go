package dependency

import (
	"context"
	"slices"
	"strings"

	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
	"go.trai.ch/zerr"
)

// SceneInput describes one scene dependency pass.
type SceneInput struct {
	Scenes     []domain.GUID
	BuildSet   []domain.GUID
	Settings   domain.ContentSettings
	Mode       domain.DependencyMode
	UsageCache *domain.UsageCache

	Cache   ports.BuildCache
	Tracker ports.ProgressTracker
	Logger  ports.BuildLogger
}

// SceneResult is the dependency graph of one scene.
type SceneResult struct {
	Scene            domain.GUID
	Info             domain.SceneDependencyInfo
	Usage            domain.UsageTagSet
	PrefabDependency domain.Hash128
	ObjectTypes      []domain.ObjectTypes
	Cached           bool
}

// SceneOutput holds the results of a pass in input order.
type SceneOutput struct {
	Results     []SceneResult
	CachedCount int
}

// Commit publishes the results into deps and merges the global usage of
// every scene into the build wide flags.
func (o SceneOutput) Commit(deps *domain.DependencyData) {
	for _, res := range o.Results {
		deps.SceneInfo[res.Scene] = res.Info
		deps.SceneUsage[res.Scene] = res.Usage
		deps.DependencyHash[res.Scene] = res.PrefabDependency
		deps.RecordTypes(res.ObjectTypes)
	}
	deps.GlobalUsage = deps.GlobalUsage.Merge(o.GlobalUsage())
}

// GlobalUsage returns the union of the global usage of every result.
func (o SceneOutput) GlobalUsage() domain.GlobalUsage {
	var g domain.GlobalUsage
	for _, res := range o.Results {
		g = g.Merge(res.Info.GlobalUsage)
	}
	return g
}

// SceneResolver computes scene dependency graphs.
type SceneResolver struct {
	store ports.AssetStore
	db    ports.AssetDatabase
}

// NewSceneResolver creates a SceneResolver.
func NewSceneResolver(store ports.AssetStore, db ports.AssetDatabase) *SceneResolver {
	return &SceneResolver{store: store, db: db}
}

type sceneKey struct {
	entry   domain.CacheEntry
	prefabs []domain.CacheEntry
}

// Run resolves every scene of the input in order. An empty input is not run.
func (r *SceneResolver) Run(ctx context.Context, in SceneInput) (SceneOutput, domain.ReturnCode, error) {
	if len(in.Scenes) == 0 {
		return SceneOutput{}, domain.SuccessNotRun, nil
	}

	rep := reporter{tracker: in.Tracker, log: in.Logger}
	buildSet := toSet(in.BuildSet)

	var keys []sceneKey
	var cached []*domain.CachedInfo
	if in.Cache != nil {
		step := rep.step("gathering cache entries to load")
		keys = make([]sceneKey, len(in.Scenes))
		entries := make([]domain.CacheEntry, len(in.Scenes))
		for i, scene := range in.Scenes {
			key, err := r.key(scene, in)
			if err != nil {
				rep.entry(domain.LogLevelWarn, zerr.With(zerr.Wrap(err, "no cache entry"), "scene", scene).Error())
				continue
			}
			keys[i] = key
			entries[i] = key.entry
		}
		cached = in.Cache.LoadCached(entries)
		step.End()
	}

	out := SceneOutput{Results: make([]SceneResult, 0, len(in.Scenes))}
	for i, scene := range in.Scenes {
		if ctx.Err() != nil {
			return out, domain.Canceled, nil
		}

		var hit *domain.CachedInfo
		var key sceneKey
		if cached != nil {
			hit = cached[i]
			key = keys[i]
		}
		res, code, err := r.resolve(scene, hit, key, in, buildSet, rep)
		if code != domain.Success {
			return out, code, err
		}
		if res.Cached {
			out.CachedCount++
		}
		out.Results = append(out.Results, res)
	}

	if in.Cache != nil {
		r.save(in, keys, out.Results, rep)
	}
	return out, domain.Success, nil
}

// key derives the scene record key. The asset entry is composed with one
// file entry per prefab the scene depends on.
func (r *SceneResolver) key(scene domain.GUID, in SceneInput) (sceneKey, error) {
	base, err := in.Cache.GetCacheEntry(scene, in.Mode.SignedVersion(SceneVersion))
	if err != nil {
		return sceneKey{}, err
	}

	var prefabs []domain.CacheEntry
	for _, dep := range r.db.FileDependencies(r.db.Path(scene)) {
		if !strings.HasSuffix(dep, prefabExtension) {
			continue
		}
		entry, err := in.Cache.GetFileEntry(dep)
		if err != nil {
			return sceneKey{}, err
		}
		prefabs = append(prefabs, entry)
	}
	return sceneKey{entry: in.Cache.ComposeEntry(base, prefabs), prefabs: prefabs}, nil
}

func (r *SceneResolver) resolve(
	scene domain.GUID,
	hit *domain.CachedInfo,
	key sceneKey,
	in SceneInput,
	buildSet map[domain.GUID]struct{},
	rep reporter,
) (SceneResult, domain.ReturnCode, error) {
	step := rep.step("calculate scene dependencies")
	defer step.End()

	path := r.db.Path(scene)

	if hit != nil {
		res, fresh, err := r.fromRecord(scene, path, hit, in, buildSet)
		if err != nil {
			return SceneResult{}, domain.Error, err
		}
		if fresh {
			if !rep.update(path + " (cached)") {
				return SceneResult{}, domain.Canceled, nil
			}
			rep.entry(domain.LogLevelInfo, scene.String()+" (cached)")
			return res, domain.Success, nil
		}
	}

	if !rep.update(path) {
		return SceneResult{}, domain.Canceled, nil
	}
	rep.entry(domain.LogLevelInfo, scene.String())

	info, usage, err := r.graph(scene, path, in, buildSet, in.UsageCache)
	if err != nil {
		return SceneResult{}, domain.Error, zerr.With(err, "path", path)
	}

	res := SceneResult{
		Scene:       scene,
		Info:        info,
		Usage:       usage,
		ObjectTypes: observeTypes(r.store, nil, info.ReferencedObjects),
	}
	if in.Cache != nil {
		res.PrefabDependency = in.Cache.ComposeEntry(domain.CacheEntry{Kind: domain.EntryData}, key.prefabs).Hash
	}
	return res, domain.Success, nil
}

// graph computes the scene graph. Non-recursive mode filters the references
// and recomputes usage over the filtered set.
func (r *SceneResolver) graph(
	scene domain.GUID,
	path string,
	in SceneInput,
	buildSet map[domain.GUID]struct{},
	usageCache *domain.UsageCache,
) (domain.SceneDependencyInfo, domain.UsageTagSet, error) {
	info, usage, err := r.store.SceneDependencies(path, in.Settings, usageCache, in.Mode)
	if err != nil {
		return domain.SceneDependencyInfo{}, domain.UsageTagSet{}, err
	}
	if in.Mode != domain.DependencyNonRecursive {
		return info, usage, nil
	}

	filtered, err := filterReferences(r.store, scene, info.ReferencedObjects, buildSet, in.Settings)
	if err != nil {
		return domain.SceneDependencyInfo{}, domain.UsageTagSet{}, err
	}
	usage, err = r.store.UsageTags(filtered, filtered, info.GlobalUsage, nil)
	if err != nil {
		return domain.SceneDependencyInfo{}, domain.UsageTagSet{}, err
	}
	info.ReferencedObjects = filtered
	return info, usage, nil
}

// fromRecord rebuilds a result from a cached record. The path is refreshed
// since a scene may move without changing its content.
func (r *SceneResolver) fromRecord(
	scene domain.GUID,
	path string,
	hit *domain.CachedInfo,
	in SceneInput,
	buildSet map[domain.GUID]struct{},
) (SceneResult, bool, error) {
	data := hit.Data
	if data.SceneInfo == nil {
		return SceneResult{}, false, nil
	}

	if hasSprite(data.ObjectTypes) {
		fresh, _, err := r.graph(scene, path, in, buildSet, nil)
		if err != nil {
			return SceneResult{}, false, err
		}
		if !slices.Equal(fresh.ReferencedObjects, data.SceneInfo.ReferencedObjects) {
			return SceneResult{}, false, nil
		}
	}

	res := SceneResult{
		Scene:            scene,
		Info:             *data.SceneInfo,
		PrefabDependency: data.PrefabDependency,
		ObjectTypes:      data.ObjectTypes,
		Cached:           true,
	}
	res.Info.Path = path
	if data.UsageTags != nil {
		res.Usage = *data.UsageTags
	}
	return res, true, nil
}

func (r *SceneResolver) save(in SceneInput, keys []sceneKey, results []SceneResult, rep reporter) {
	step := rep.step("saving to cache")
	defer step.End()

	records := make([]*domain.CachedInfo, 0, len(results))
	for i, res := range results {
		key := keys[i]
		if res.Cached || !key.entry.IsValid() {
			continue
		}
		deps, err := recordDependencies(
			in.Cache, key.prefabs, res.Info.IncludedTypes, res.Info.ReferencedObjects, res.ObjectTypes,
		)
		if err != nil {
			rep.entry(domain.LogLevelWarn, zerr.With(zerr.Wrap(err, "record not cached"), "scene", res.Scene).Error())
			continue
		}

		info := res.Info
		usage := res.Usage
		records = append(records, &domain.CachedInfo{
			Asset:        key.entry,
			Dependencies: deps,
			Data: domain.CachedData{
				SceneInfo:        &info,
				UsageTags:        &usage,
				PrefabDependency: res.PrefabDependency,
				ObjectTypes:      res.ObjectTypes,
			},
		})
	}
	in.Cache.SaveCached(records)
}
