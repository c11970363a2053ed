package domain

import "path/filepath"

const (
	// CrateDirName is the name of the internal workspace directory.
	CrateDirName = ".crate"

	// CacheDirName is the name of the cached record directory.
	CacheDirName = "cache"

	// CrateFileName is the name of the project configuration file.
	CrateFileName = "crate.yaml"

	// ManifestFileName is the default name of the asset manifest.
	ManifestFileName = "assets.yaml"

	// DefaultOutputDir is the default directory for build reports.
	DefaultOutputDir = "build"

	// WritePlanFileName is the name of the write plan report.
	WritePlanFileName = "writeplan.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the default path of the cached record store.
// It joins .crate and cache.
func DefaultCachePath() string {
	return filepath.Join(CrateDirName, CacheDirName)
}
