package domain

import "go.trai.ch/zerr"

var (
	// ErrTaskAlreadyExists is returned when attempting to add a stage with a name that already exists.
	ErrTaskAlreadyExists = zerr.New("stage already exists")

	// ErrMissingDependency is returned when a stage references a dependency that doesn't exist in the graph.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when a cycle is detected in the stage graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrTaskNotFound is returned when a stage has no registered runner.
	ErrTaskNotFound = zerr.New("stage not found")

	// ErrInvalidGUID is returned when an identity string is not 32 hex characters.
	ErrInvalidGUID = zerr.New("invalid guid")

	// ErrInvalidAsset is returned when a bundle member is neither an asset nor a scene.
	ErrInvalidAsset = zerr.New("invalid asset")

	// ErrMixedBundle is returned when a bundle contains both assets and scenes.
	ErrMixedBundle = zerr.New("bundle mixes assets and scenes")

	// ErrDuplicateBundle is returned when two bundles share a name.
	ErrDuplicateBundle = zerr.New("duplicate bundle name")

	// ErrAssetInMultipleBundles is returned when an identity is listed in two bundles.
	ErrAssetInMultipleBundles = zerr.New("asset listed in multiple bundles")

	// ErrUnknownDependencyMode is returned for an unsupported dependency mode.
	ErrUnknownDependencyMode = zerr.New("unknown dependency mode")

	// ErrMissingDependencyData is returned when packing finds no dependency graph for a member.
	ErrMissingDependencyData = zerr.New("missing dependency data")

	// ErrMissingBundleFile is returned when a referenced asset has no file assigned.
	ErrMissingBundleFile = zerr.New("referenced asset has no bundle file")

	// ErrContextMissing is returned when a build context has nothing stored under a tag.
	ErrContextMissing = zerr.New("build context has no object for tag")

	// ErrCapabilityMismatch is returned when an object does not provide a tag's capability.
	ErrCapabilityMismatch = zerr.New("object does not implement capability")

	// ErrUnknownTag is returned for a tag with no declared capability.
	ErrUnknownTag = zerr.New("unknown context tag")

	// ErrAssetNotFound is returned by the asset store for an unknown identity.
	ErrAssetNotFound = zerr.New("asset not found")

	// ErrInvalidReference is returned when a manifest reference cannot be parsed.
	ErrInvalidReference = zerr.New("invalid object reference")

	// ErrConfigNotFound is returned when no configuration file exists.
	ErrConfigNotFound = zerr.New("configuration file not found")

	// ErrPatternNoMatch is returned when a bundle member pattern matches no asset.
	ErrPatternNoMatch = zerr.New("pattern matched no asset")

	// ErrInvalidPattern is returned for a malformed glob pattern.
	ErrInvalidPattern = zerr.New("invalid pattern")

	// ErrUnknownCompression is returned for an unsupported compression name or tag.
	ErrUnknownCompression = zerr.New("unknown compression")

	// ErrCorruptRecord is returned when a stored record cannot be decoded.
	ErrCorruptRecord = zerr.New("corrupt cached record")

	// ErrBuildFailed is joined with pipeline failures so callers can match them.
	ErrBuildFailed = zerr.New("build failed")

	// ErrCallbackFailed is returned when a user callback reports an error.
	ErrCallbackFailed = zerr.New("callback failed")

	// ErrBuildCanceled is returned when the pipeline stopped on request.
	ErrBuildCanceled = zerr.New("build canceled")
)
