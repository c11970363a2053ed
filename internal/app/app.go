// Package app implements the application layer for crate.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/crate/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
	"go.trai.ch/crate/internal/engine/buildcache"
	"go.trai.ch/crate/internal/engine/buildctx"
	"go.trai.ch/crate/internal/engine/packing"
	"go.trai.ch/crate/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader  ports.ConfigLoader
	catalogLoader ports.CatalogLoader
	resolver      ports.InputResolver
	stores        ports.RecordStoreFactory
	hasher        ports.Hasher
	logger        ports.Logger
	buildLogger   ports.BuildLogger
	telemetry     ports.Telemetry
	scheduler     *scheduler.Scheduler
}

// New creates a new App instance.
func New(
	configLoader ports.ConfigLoader,
	catalogLoader ports.CatalogLoader,
	resolver ports.InputResolver,
	stores ports.RecordStoreFactory,
	hasher ports.Hasher,
	logger ports.Logger,
	buildLogger ports.BuildLogger,
	telemetry ports.Telemetry,
	sched *scheduler.Scheduler,
) *App {
	return &App{
		configLoader:  configLoader,
		catalogLoader: catalogLoader,
		resolver:      resolver,
		stores:        stores,
		hasher:        hasher,
		logger:        logger,
		buildLogger:   buildLogger,
		telemetry:     telemetry,
		scheduler:     sched,
	}
}

// BuildOptions control a single build invocation.
type BuildOptions struct {
	// ConfigPath is a crate.yaml file or a directory searched upwards. Empty means ".".
	ConfigPath string
	// NoCache bypasses cached records for this build.
	NoCache bool
	// NonRecursive forces the non-recursive dependency mode.
	NonRecursive bool
}

// Build runs the bundle pipeline for the project and writes the write plan
// into the output directory.
func (a *App) Build(ctx context.Context, opts BuildOptions) (*domain.WritePlan, error) {
	// 1. Load the project
	project, err := a.configLoader.Load(configPath(opts.ConfigPath))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	a.logger.SetLevel(project.LogLevel)
	params := project.Parameters
	if opts.NoCache {
		params.UseCache = false
	}
	if opts.NonRecursive {
		params.DependencyMode = domain.DependencyNonRecursive
	}

	// 2. Load the asset catalog
	catalog, err := a.catalogLoader.Load(project.Manifest)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load asset manifest")
	}

	// 3. Expand the bundle layout
	content, err := a.layout(project, catalog)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve bundle layout")
	}

	// 4. Assemble the build context
	bc, err := a.buildContext(ctx, project, &params, content, catalog)
	if err != nil {
		return nil, err
	}

	// 5. Run the pipeline
	pipeline, err := scheduler.DefaultPipeline()
	if err != nil {
		return nil, err
	}
	code, err := a.scheduler.Run(ctx, pipeline, bc)
	switch code {
	case domain.Canceled:
		return nil, domain.ErrBuildCanceled
	case domain.Error:
		if err == nil {
			return nil, domain.ErrBuildFailed
		}
		return nil, errors.Join(domain.ErrBuildFailed, err)
	}

	// 6. Write the plan
	plan, err := buildctx.Get[*domain.WritePlan](bc, domain.TagBundleWriteData)
	if err != nil {
		return nil, errors.Join(domain.ErrBuildFailed, err)
	}
	if err := writePlan(params.OutputDir, plan); err != nil {
		return nil, err
	}
	a.logger.Info(fmt.Sprintf("wrote %d bundle files to %s",
		len(plan.FileToBundle), filepath.Join(params.OutputDir, domain.WritePlanFileName)))
	return plan, nil
}

// Clean removes every cached record of the project.
func (a *App) Clean(_ context.Context, path string) error {
	project, err := a.configLoader.Load(configPath(path))
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	store, err := a.stores.Open(project.Cache.Path, project.Cache.Compression)
	if err != nil {
		return zerr.Wrap(err, "failed to open cache")
	}
	if err := store.Purge(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to purge cache"), "path", project.Cache.Path)
	}
	a.logger.Info("cache cleaned: " + project.Cache.Path)
	return nil
}

// layout expands member patterns into bundle definitions. Custom assets are
// appended to their bundle after the resolved members.
func (a *App) layout(project *domain.Project, catalog ports.AssetCatalog) (*domain.BundleBuildContent, error) {
	paths := catalog.Paths()
	builds := make([]domain.BundleBuild, 0, len(project.Bundles))
	var custom []domain.GUID

	for _, bundle := range project.Bundles {
		def := domain.BundleBuild{Name: bundle.Name}
		if len(bundle.Patterns) > 0 {
			matches, err := a.resolver.ResolveInputs(bundle.Patterns, paths)
			if err != nil {
				return nil, zerr.With(err, "bundle", bundle.Name)
			}
			for _, path := range matches {
				guid, ok := catalog.GUIDForPath(path)
				if !ok {
					return nil, zerr.With(zerr.With(domain.ErrInvalidAsset, "path", path), "bundle", bundle.Name)
				}
				def.Members = append(def.Members, domain.BundleMember{GUID: guid, Address: bundle.Addresses[path]})
			}
		}
		for _, c := range bundle.Custom {
			def.Members = append(def.Members, domain.BundleMember{GUID: c.GUID, Address: c.Address})
			custom = append(custom, c.GUID)
		}
		builds = append(builds, def)
	}

	return domain.NewBundleBuildContent(builds, custom, catalog)
}

func (a *App) buildContext(
	ctx context.Context,
	project *domain.Project,
	params *domain.BuildParameters,
	content *domain.BundleBuildContent,
	catalog ports.AssetCatalog,
) (*buildctx.Context, error) {
	callbacks := &domain.Callbacks{PostDependency: supplyCustomAssets(project.CustomAssets())}
	bc, err := buildctx.New(params, content, callbacks)
	if err != nil {
		return nil, err
	}

	values := map[domain.ContextTag]any{
		domain.TagAssetStore:      catalog,
		domain.TagAssetDatabase:   catalog,
		domain.TagBuildLogger:     a.buildLogger,
		domain.TagProgressTracker: progrock.NewTracker(ctx, a.telemetry),
		domain.TagIdentifiers:     packing.HashedIdentifiers{},
	}
	if params.UseCache {
		store, err := a.stores.Open(project.Cache.Path, project.Cache.Compression)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to open cache")
		}
		values[domain.TagBuildCache] = buildcache.NewCache(
			store, catalog, a.hasher, a.logger, project.Root, params.ScriptTypes,
		)
	}
	for tag, v := range values {
		if err := bc.Set(tag, v); err != nil {
			return nil, zerr.With(err, "tag", string(tag))
		}
	}
	return bc, nil
}

// supplyCustomAssets installs the declared dependency graphs of custom assets.
func supplyCustomAssets(custom []domain.CustomAsset) func(*domain.BuildParameters, *domain.DependencyData) domain.ReturnCode {
	if len(custom) == 0 {
		return nil
	}
	return func(_ *domain.BuildParameters, deps *domain.DependencyData) domain.ReturnCode {
		for _, c := range custom {
			deps.AssetInfo[c.GUID] = c.LoadInfo()
		}
		return domain.Success
	}
}

func writePlan(dir string, plan *domain.WritePlan) error {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create output directory"), "path", dir)
	}
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to encode write plan")
	}
	path := filepath.Join(dir, domain.WritePlanFileName)
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write write plan"), "path", path)
	}
	return nil
}

func configPath(path string) string {
	if path == "" {
		return "."
	}
	return path
}
