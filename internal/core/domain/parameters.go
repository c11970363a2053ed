package domain

import "fmt"

// DependencyMode selects how references are collected.
type DependencyMode uint8

const (
	// DependencyRecursive collects the full transitive closure of references.
	DependencyRecursive DependencyMode = iota
	// DependencyNonRecursive stops at references owned by other assets in the build.
	DependencyNonRecursive
)

// String returns the configuration spelling of the mode.
func (m DependencyMode) String() string {
	switch m {
	case DependencyRecursive:
		return "recursive"
	case DependencyNonRecursive:
		return "non-recursive"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(m))
	}
}

// ParseDependencyMode parses "recursive" or "non-recursive". Empty means recursive.
func ParseDependencyMode(s string) (DependencyMode, error) {
	switch s {
	case "", "recursive":
		return DependencyRecursive, nil
	case "non-recursive":
		return DependencyNonRecursive, nil
	default:
		return 0, ErrUnknownDependencyMode
	}
}

// SignedVersion returns version, negated in non-recursive mode so records of
// both modes never share a key.
func (m DependencyMode) SignedVersion(version int) int {
	if m == DependencyNonRecursive {
		return -version
	}
	return version
}

// TypeDB maps script type names to their current version.
type TypeDB map[string]string

// BuildParameters holds the settings of one build.
type BuildParameters struct {
	Target                         string
	UseCache                       bool
	DependencyMode                 DependencyMode
	SpritePacking                  bool
	DisableSubAssetRepresentations bool
	ScriptTypes                    TypeDB
	OutputDir                      string
}

// ContentSettings returns the settings handed to the asset store.
func (p *BuildParameters) ContentSettings() ContentSettings {
	return ContentSettings{Target: p.Target, ScriptTypes: p.ScriptTypes}
}

// ContentSettings is the subset of parameters that affects dependency queries.
type ContentSettings struct {
	Target      string
	ScriptTypes TypeDB
}
