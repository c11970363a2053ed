// Package config provides the configuration loader for crate.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const supportedVersion = "1"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration. A directory is searched upwards for crate.yaml;
// a file path is read directly.
func (l *Loader) Load(path string) (*domain.Project, error) {
	configPath, err := findConfiguration(path)
	if err != nil {
		return nil, err
	}

	var file Cratefile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, err
	}

	if file.Version != "" && file.Version != supportedVersion {
		l.Logger.Warn(fmt.Sprintf("%s declares version %q, reading it as version %s",
			domain.CrateFileName, file.Version, supportedVersion))
	}
	if len(file.Bundles) == 0 {
		l.Logger.Warn(fmt.Sprintf("%s declares no bundles", domain.CrateFileName))
	}

	return toProject(filepath.Dir(configPath), &file)
}

func findConfiguration(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", zerr.With(domain.ErrConfigNotFound, "path", path)
	}
	if !info.IsDir() {
		return path, nil
	}

	currentDir := path
	for {
		candidate := filepath.Join(currentDir, domain.CrateFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", path)
}

func readAndUnmarshalYAML(path string, out any) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}
	return nil
}

func toProject(root string, file *Cratefile) (*domain.Project, error) {
	mode, err := domain.ParseDependencyMode(file.Dependencies.Mode)
	if err != nil {
		return nil, zerr.With(err, "mode", file.Dependencies.Mode)
	}

	cache := domain.CacheSettings{
		Enabled:     boolOr(file.Cache.Enabled, true),
		Path:        resolvePath(root, file.Cache.Path, domain.DefaultCachePath()),
		Compression: file.Cache.Compression,
	}

	project := &domain.Project{
		Root:     root,
		Manifest: resolvePath(root, file.Manifest, domain.ManifestFileName),
		Cache:    cache,
		LogLevel: domain.ParseLogLevel(file.LogLevel),
		Parameters: domain.BuildParameters{
			Target:                         file.Target,
			UseCache:                       cache.Enabled,
			DependencyMode:                 mode,
			SpritePacking:                  boolOr(file.Sprites.Packing, true),
			DisableSubAssetRepresentations: file.SubAssets.DisableRepresentations,
			ScriptTypes:                    domain.TypeDB(file.ScriptTypes),
			OutputDir:                      resolvePath(root, file.Output, domain.DefaultOutputDir),
		},
	}

	for _, dto := range file.Bundles {
		if dto.Name == "" {
			return nil, zerr.With(domain.ErrInvalidAsset, "reason", "bundle without name")
		}
		spec := domain.BundleSpec{
			Name:      dto.Name,
			Patterns:  dto.Assets,
			Addresses: dto.Addresses,
		}
		for _, c := range dto.Custom {
			custom, err := toCustomAsset(c)
			if err != nil {
				return nil, zerr.With(err, "bundle", dto.Name)
			}
			spec.Custom = append(spec.Custom, custom)
		}
		project.Bundles = append(project.Bundles, spec)
	}

	return project, nil
}

func toCustomAsset(dto CustomAssetDTO) (domain.CustomAsset, error) {
	guid, err := domain.ParseGUID(dto.GUID)
	if err != nil {
		return domain.CustomAsset{}, err
	}
	included, err := parseObjects(dto.Included)
	if err != nil {
		return domain.CustomAsset{}, err
	}
	referenced, err := parseObjects(dto.Referenced)
	if err != nil {
		return domain.CustomAsset{}, err
	}
	return domain.CustomAsset{
		GUID:       guid,
		Address:    dto.Address,
		Included:   included,
		Referenced: referenced,
	}, nil
}

// parseObjects parses "<guid>:<localID>" and "<path>:<localID>" references.
func parseObjects(refs []string) ([]domain.ObjectID, error) {
	if len(refs) == 0 {
		return nil, nil
	}
	out := make([]domain.ObjectID, 0, len(refs))
	for _, raw := range refs {
		sep := strings.LastIndexByte(raw, ':')
		if sep <= 0 {
			return nil, zerr.With(domain.ErrInvalidReference, "reference", raw)
		}
		local, err := strconv.ParseInt(raw[sep+1:], 10, 64)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidReference.Error()), "reference", raw)
		}

		owner := raw[:sep]
		if guid, err := domain.ParseGUID(owner); err == nil {
			out = append(out, domain.ObjectID{GUID: guid, LocalID: local, FileType: domain.FileTypeMeta})
			continue
		}
		id := domain.ObjectID{FilePath: domain.NewInternedString(owner), LocalID: local, FileType: domain.FileTypeSerialized}
		if id.IsDefaultResource() {
			id.FileType = domain.FileTypeBuiltin
		}
		out = append(out, id)
	}
	return out, nil
}

func resolvePath(root, value, fallback string) string {
	if value == "" {
		value = fallback
	}
	if filepath.IsAbs(value) {
		return filepath.Clean(value)
	}
	return filepath.Join(root, value)
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
