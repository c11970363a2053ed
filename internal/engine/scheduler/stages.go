package scheduler

import (
	"context"

	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
	"go.trai.ch/crate/internal/engine/buildctx"
	"go.trai.ch/crate/internal/engine/dependency"
	"go.trai.ch/crate/internal/engine/packing"
	"go.trai.ch/zerr"
)

// Stage names of the default pipeline.
const (
	StageSceneDependencies = "calculate_scene_dependencies"
	StageAssetDependencies = "calculate_asset_dependencies"
	StageStripSprites      = "strip_unused_sprite_sources"
	StagePostDependency    = "post_dependency_callback"
	StageBundlePacking     = "generate_bundle_packing"
	StagePostPacking       = "post_packing_callback"
)

const (
	stripSpritesVersion = 2
	callbackVersion     = 1
	packingVersion      = 1
)

// DefaultPipeline returns the bundle build pipeline.
func DefaultPipeline() (*Pipeline, error) {
	p := NewPipeline()
	stages := []struct {
		task  *domain.Task
		stage Stage
	}{
		{domain.NewTask(StageSceneDependencies, dependency.SceneVersion), StageFunc(sceneDependencies)},
		{
			domain.NewTask(StageAssetDependencies, dependency.AssetVersion, StageSceneDependencies),
			StageFunc(assetDependencies),
		},
		{domain.NewTask(StageStripSprites, stripSpritesVersion, StageAssetDependencies), StageFunc(stripSprites)},
		{domain.NewTask(StagePostDependency, callbackVersion, StageStripSprites), StageFunc(postDependency)},
		{domain.NewTask(StageBundlePacking, packingVersion, StagePostDependency), StageFunc(bundlePacking)},
		{domain.NewTask(StagePostPacking, callbackVersion, StageBundlePacking), StageFunc(postPacking)},
	}
	for _, s := range stages {
		if err := p.Add(s.task, s.stage); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// inputs are the context objects the dependency stages read.
type inputs struct {
	params  *domain.BuildParameters
	content domain.BundleContent
	store   ports.AssetStore
	db      ports.AssetDatabase
	deps    *domain.DependencyData
	cache   ports.BuildCache
	tracker ports.ProgressTracker
	log     ports.BuildLogger
}

func loadInputs(bc *buildctx.Context) (inputs, error) {
	var in inputs
	var err error
	if in.params, err = buildctx.Get[*domain.BuildParameters](bc, domain.TagBuildParameters); err != nil {
		return in, err
	}
	if in.content, err = buildctx.Get[domain.BundleContent](bc, domain.TagBundleContent); err != nil {
		return in, err
	}
	if in.store, err = buildctx.Get[ports.AssetStore](bc, domain.TagAssetStore); err != nil {
		return in, err
	}
	if in.db, err = buildctx.Get[ports.AssetDatabase](bc, domain.TagAssetDatabase); err != nil {
		return in, err
	}

	deps, ok := buildctx.TryGet[*domain.DependencyData](bc, domain.TagDependencyData)
	if !ok {
		deps = domain.NewDependencyData()
		if err := bc.Register(deps); err != nil {
			return in, err
		}
	}
	in.deps = deps

	if in.params.UseCache {
		in.cache, _ = buildctx.TryGet[ports.BuildCache](bc, domain.TagBuildCache)
	}
	in.tracker, _ = buildctx.TryGet[ports.ProgressTracker](bc, domain.TagProgressTracker)
	in.log, _ = buildctx.TryGet[ports.BuildLogger](bc, domain.TagBuildLogger)
	return in, nil
}

func sceneDependencies(ctx context.Context, bc *buildctx.Context) (domain.ReturnCode, error) {
	in, err := loadInputs(bc)
	if err != nil {
		return domain.Error, err
	}

	out, code, err := dependency.NewSceneResolver(in.store, in.db).Run(ctx, dependency.SceneInput{
		Scenes:     in.content.SceneList(),
		BuildSet:   in.content.AssetList(),
		Settings:   in.params.ContentSettings(),
		Mode:       in.params.DependencyMode,
		UsageCache: in.deps.UsageCache,
		Cache:      in.cache,
		Tracker:    in.tracker,
		Logger:     in.log,
	})
	out.Commit(in.deps)
	return code, err
}

func assetDependencies(ctx context.Context, bc *buildctx.Context) (domain.ReturnCode, error) {
	in, err := loadInputs(bc)
	if err != nil {
		return domain.Error, err
	}

	custom, _ := buildctx.TryGet[domain.CustomAssets](bc, domain.TagCustomAssets)
	all := in.content.AssetList()
	assets := domain.ResolvableAssets(all, custom)
	addresses := make(map[domain.GUID]string, len(all))
	for _, g := range all {
		addresses[g] = in.content.AddressOf(g)
	}
	if len(assets) == 0 {
		return domain.SuccessNotRun, nil
	}

	out, code, err := dependency.NewAssetResolver(in.store, in.db).Run(ctx, dependency.AssetInput{
		Assets:        assets,
		BuildSet:      all,
		Addresses:     addresses,
		Settings:      in.params.ContentSettings(),
		Mode:          in.params.DependencyMode,
		SpritePacking: in.params.SpritePacking,
		GlobalUsage:   in.deps.GlobalUsage,
		UsageCache:    in.deps.UsageCache,
		Cache:         in.cache,
		Tracker:       in.tracker,
		Logger:        in.log,
	})

	sprites, _ := buildctx.TryGet[*domain.BuildSpriteData](bc, domain.TagSpriteData)
	extended, _ := buildctx.TryGet[*domain.BuildExtendedAssetData](bc, domain.TagExtendedAssetData)
	sprites, extended = out.Commit(in.deps, sprites, extended, in.params.DisableSubAssetRepresentations)
	if sprites != nil {
		if regErr := bc.Register(sprites); regErr != nil {
			return domain.Error, regErr
		}
	}
	if extended != nil {
		if regErr := bc.Register(extended); regErr != nil {
			return domain.Error, regErr
		}
	}
	return code, err
}

func stripSprites(_ context.Context, bc *buildctx.Context) (domain.ReturnCode, error) {
	params, err := buildctx.Get[*domain.BuildParameters](bc, domain.TagBuildParameters)
	if err != nil {
		return domain.Error, err
	}
	deps, err := buildctx.Get[*domain.DependencyData](bc, domain.TagDependencyData)
	if err != nil {
		return domain.Error, err
	}
	sprites, _ := buildctx.TryGet[*domain.BuildSpriteData](bc, domain.TagSpriteData)
	extended, _ := buildctx.TryGet[*domain.BuildExtendedAssetData](bc, domain.TagExtendedAssetData)

	return packing.StripUnusedSpriteSources(deps, sprites, extended, params.SpritePacking), nil
}

func postDependency(_ context.Context, bc *buildctx.Context) (domain.ReturnCode, error) {
	hook, ok := buildctx.TryGet[domain.DependencyHook](bc, domain.TagDependencyCallback)
	if !ok {
		return domain.SuccessNotRun, nil
	}
	params, err := buildctx.Get[*domain.BuildParameters](bc, domain.TagBuildParameters)
	if err != nil {
		return domain.Error, err
	}
	deps, err := buildctx.Get[*domain.DependencyData](bc, domain.TagDependencyData)
	if err != nil {
		return domain.Error, err
	}
	return callbackResult(hook.RunPostDependency(params, deps), StagePostDependency)
}

func bundlePacking(_ context.Context, bc *buildctx.Context) (domain.ReturnCode, error) {
	content, err := buildctx.Get[domain.BundleContent](bc, domain.TagBundleContent)
	if err != nil {
		return domain.Error, err
	}
	deps, err := buildctx.Get[*domain.DependencyData](bc, domain.TagDependencyData)
	if err != nil {
		return domain.Error, err
	}
	ids, _ := buildctx.TryGet[ports.Identifiers](bc, domain.TagIdentifiers)

	var custom []domain.GUID
	if c, ok := buildctx.TryGet[domain.CustomAssets](bc, domain.TagCustomAssets); ok {
		custom = c.CustomAssetList()
	}

	plan, err := packing.NewPacker(ids).Run(content, deps, custom)
	if err != nil {
		return domain.Error, err
	}
	if err := bc.Register(plan); err != nil {
		return domain.Error, err
	}
	return domain.Success, nil
}

func postPacking(_ context.Context, bc *buildctx.Context) (domain.ReturnCode, error) {
	hook, ok := buildctx.TryGet[domain.PackingHook](bc, domain.TagPackingCallback)
	if !ok {
		return domain.SuccessNotRun, nil
	}
	params, err := buildctx.Get[*domain.BuildParameters](bc, domain.TagBuildParameters)
	if err != nil {
		return domain.Error, err
	}
	deps, err := buildctx.Get[*domain.DependencyData](bc, domain.TagDependencyData)
	if err != nil {
		return domain.Error, err
	}
	plan, err := buildctx.Get[*domain.WritePlan](bc, domain.TagBundleWriteData)
	if err != nil {
		return domain.Error, err
	}
	return callbackResult(hook.RunPostPacking(params, deps, plan), StagePostPacking)
}

func callbackResult(code domain.ReturnCode, stage string) (domain.ReturnCode, error) {
	if code == domain.Error {
		return code, zerr.With(domain.ErrCallbackFailed, "stage", stage)
	}
	return code, nil
}
