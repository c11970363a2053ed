package dependency

import (
	"context"
	"slices"

	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
	"go.trai.ch/zerr"
)

// AssetInput describes one asset dependency pass.
type AssetInput struct {
	Assets        []domain.GUID
	BuildSet      []domain.GUID
	Addresses     map[domain.GUID]string
	Settings      domain.ContentSettings
	Mode          domain.DependencyMode
	SpritePacking bool
	GlobalUsage   domain.GlobalUsage
	UsageCache    *domain.UsageCache

	// Cache is optional. Without it every asset is computed.
	Cache   ports.BuildCache
	Tracker ports.ProgressTracker
	Logger  ports.BuildLogger
}

// AssetResult is the dependency graph of one asset.
type AssetResult struct {
	Asset        domain.GUID
	Info         domain.AssetLoadInfo
	Usage        domain.UsageTagSet
	SpriteData   *domain.SpriteImporterData
	ExtendedData *domain.ExtendedAssetData
	ObjectTypes  []domain.ObjectTypes
	Cached       bool
}

// AssetOutput holds the results of a pass in input order. A canceled pass
// holds the results of the assets finished before the cancellation.
type AssetOutput struct {
	Results     []AssetResult
	CachedCount int
}

// Commit publishes the results into the build accumulators. Sprite and
// extended data holders are created on first use and returned.
func (o AssetOutput) Commit(
	deps *domain.DependencyData,
	sprites *domain.BuildSpriteData,
	extended *domain.BuildExtendedAssetData,
	disableRepresentations bool,
) (*domain.BuildSpriteData, *domain.BuildExtendedAssetData) {
	for _, res := range o.Results {
		deps.AssetInfo[res.Asset] = res.Info
		deps.AssetUsage[res.Asset] = res.Usage
		deps.RecordTypes(res.ObjectTypes)

		if res.SpriteData != nil {
			if sprites == nil {
				sprites = domain.NewBuildSpriteData()
			}
			sprites.ImporterData[res.Asset] = *res.SpriteData
		}
		if res.ExtendedData != nil && !disableRepresentations {
			if extended == nil {
				extended = domain.NewBuildExtendedAssetData()
			}
			extended.ExtendedData[res.Asset] = *res.ExtendedData
		}
	}
	return sprites, extended
}

// AssetResolver computes asset dependency graphs.
type AssetResolver struct {
	store ports.AssetStore
	db    ports.AssetDatabase
}

// NewAssetResolver creates an AssetResolver.
func NewAssetResolver(store ports.AssetStore, db ports.AssetDatabase) *AssetResolver {
	return &AssetResolver{store: store, db: db}
}

// Run resolves every asset of the input in order.
func (r *AssetResolver) Run(ctx context.Context, in AssetInput) (AssetOutput, domain.ReturnCode, error) {
	rep := reporter{tracker: in.Tracker, log: in.Logger}
	buildSet := toSet(in.BuildSet)
	version := in.Mode.SignedVersion(AssetVersion)

	var entries []domain.CacheEntry
	var cached []*domain.CachedInfo
	if in.Cache != nil {
		step := rep.step("gathering cache entries to load")
		entries = make([]domain.CacheEntry, len(in.Assets))
		for i, asset := range in.Assets {
			entry, err := in.Cache.GetCacheEntry(asset, version)
			if err != nil {
				rep.entry(domain.LogLevelWarn, zerr.With(zerr.Wrap(err, "no cache entry"), "asset", asset).Error())
				continue
			}
			entries[i] = entry
		}
		cached = in.Cache.LoadCached(entries)
		step.End()
	}

	out := AssetOutput{Results: make([]AssetResult, 0, len(in.Assets))}
	for i, asset := range in.Assets {
		if ctx.Err() != nil {
			return out, domain.Canceled, nil
		}

		var hit *domain.CachedInfo
		if cached != nil {
			hit = cached[i]
		}
		res, code, err := r.resolve(asset, hit, in, buildSet, rep)
		if code != domain.Success {
			return out, code, err
		}
		if res.Cached {
			out.CachedCount++
		}
		out.Results = append(out.Results, res)
	}

	if in.Cache != nil {
		r.save(in, entries, out.Results, rep)
	}
	return out, domain.Success, nil
}

func (r *AssetResolver) resolve(
	asset domain.GUID,
	hit *domain.CachedInfo,
	in AssetInput,
	buildSet map[domain.GUID]struct{},
	rep reporter,
) (AssetResult, domain.ReturnCode, error) {
	step := rep.step("calculate asset dependencies")
	defer step.End()

	path := r.db.Path(asset)

	if hit != nil {
		res, fresh, err := r.fromRecord(asset, hit, in, buildSet)
		if err != nil {
			return AssetResult{}, domain.Error, err
		}
		if fresh {
			if !rep.update(path + " (cached)") {
				return AssetResult{}, domain.Canceled, nil
			}
			rep.entry(domain.LogLevelInfo, asset.String()+" (cached)")
			return res, domain.Success, nil
		}
	}

	if !rep.update(path) {
		return AssetResult{}, domain.Canceled, nil
	}
	rep.entry(domain.LogLevelInfo, asset.String())

	res, err := r.compute(asset, in, buildSet)
	if err != nil {
		return AssetResult{}, domain.Error, zerr.With(err, "path", path)
	}
	return res, domain.Success, nil
}

// fromRecord rebuilds a result from a cached record. Records of assets with
// image regions are only fresh if their references are still the same.
func (r *AssetResolver) fromRecord(
	asset domain.GUID,
	hit *domain.CachedInfo,
	in AssetInput,
	buildSet map[domain.GUID]struct{},
) (AssetResult, bool, error) {
	data := hit.Data
	if data.AssetInfo == nil {
		return AssetResult{}, false, nil
	}

	for _, t := range data.ObjectTypes {
		if !t.IsSprite() {
			continue
		}
		refs, err := r.references(asset, data.AssetInfo.IncludedObjects, in, buildSet)
		if err != nil {
			return AssetResult{}, false, err
		}
		if !slices.Equal(refs, data.AssetInfo.ReferencedObjects) {
			return AssetResult{}, false, nil
		}
		break
	}

	res := AssetResult{
		Asset:        asset,
		Info:         *data.AssetInfo,
		SpriteData:   data.SpriteData,
		ExtendedData: data.ExtendedData,
		ObjectTypes:  data.ObjectTypes,
		Cached:       true,
	}
	res.Info.Address = in.Addresses[asset]
	if data.UsageTags != nil {
		res.Usage = *data.UsageTags
	}
	return res, true, nil
}

func (r *AssetResolver) references(
	asset domain.GUID,
	included []domain.ObjectID,
	in AssetInput,
	buildSet map[domain.GUID]struct{},
) ([]domain.ObjectID, error) {
	if in.Mode != domain.DependencyNonRecursive {
		return r.store.ReferencedObjects(included, in.Settings, domain.DependencyRecursive)
	}
	direct, err := r.store.ReferencedObjects(included, in.Settings, domain.DependencyNonRecursive)
	if err != nil {
		return nil, err
	}
	return filterReferences(r.store, asset, direct, buildSet, in.Settings)
}

func (r *AssetResolver) compute(
	asset domain.GUID,
	in AssetInput,
	buildSet map[domain.GUID]struct{},
) (AssetResult, error) {
	included, err := r.store.IncludedObjects(asset, in.Settings)
	if err != nil {
		return AssetResult{}, err
	}
	refs, err := r.references(asset, included, in, buildSet)
	if err != nil {
		return AssetResult{}, err
	}

	all := append(slices.Clone(included), refs...)
	usage, err := r.store.UsageTags(all, included, in.GlobalUsage, in.UsageCache)
	if err != nil {
		return AssetResult{}, err
	}

	res := AssetResult{
		Asset: asset,
		Info: domain.AssetLoadInfo{
			Asset:             asset,
			Address:           in.Addresses[asset],
			IncludedObjects:   included,
			ReferencedObjects: refs,
		},
		Usage:       usage,
		ObjectTypes: observeTypes(r.store, included, refs),
	}

	if r.db.IsSpriteImport(asset) {
		sprite := domain.SpriteImporterData{}
		if len(included) > 0 {
			sprite.SourceTexture = included[0]
		}
		if in.SpritePacking {
			sprite.PackedSprite = len(refs) > 0
		}
		res.SpriteData = &sprite
	}

	res.ExtendedData, err = r.representations(asset, included, in.Settings)
	if err != nil {
		return AssetResult{}, err
	}
	return res, nil
}

// representations keeps the included secondary representations of an asset.
func (r *AssetResolver) representations(
	asset domain.GUID,
	included []domain.ObjectID,
	settings domain.ContentSettings,
) (*domain.ExtendedAssetData, error) {
	reps, err := r.store.Representations(asset, settings)
	if err != nil {
		return nil, err
	}
	own := domain.NewObjectSet(included...)
	filtered := make([]domain.ObjectID, 0, len(reps))
	for _, rep := range reps {
		if own.Contains(rep) {
			filtered = append(filtered, rep)
		}
	}
	if len(filtered) < 2 {
		return nil, nil
	}
	return &domain.ExtendedAssetData{Representations: filtered[1:]}, nil
}

func (r *AssetResolver) save(in AssetInput, entries []domain.CacheEntry, results []AssetResult, rep reporter) {
	step := rep.step("saving to cache")
	defer step.End()

	records := make([]*domain.CachedInfo, 0, len(results))
	for i, res := range results {
		if res.Cached || !entries[i].IsValid() {
			continue
		}
		deps, err := recordDependencies(in.Cache, nil, nil, res.Info.ReferencedObjects, res.ObjectTypes)
		if err != nil {
			rep.entry(domain.LogLevelWarn, zerr.With(zerr.Wrap(err, "record not cached"), "asset", res.Asset).Error())
			continue
		}

		info := res.Info
		usage := res.Usage
		records = append(records, &domain.CachedInfo{
			Asset:        entries[i],
			Dependencies: deps,
			Data: domain.CachedData{
				AssetInfo:    &info,
				UsageTags:    &usage,
				SpriteData:   res.SpriteData,
				ExtendedData: res.ExtendedData,
				ObjectTypes:  res.ObjectTypes,
			},
		})
	}
	in.Cache.SaveCached(records)
}
