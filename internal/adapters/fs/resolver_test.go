package fs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crate/internal/adapters/fs"
	"go.trai.ch/crate/internal/core/domain"
)

var candidates = []string{
	"Assets/UI/icons/close.png",
	"Assets/UI/atlas.png",
	"Assets/UI/icons/open.png",
	"Assets/Levels/intro.unity",
	"Assets/Levels/outro.unity",
	"Assets/Prefabs/door.prefab",
}

func TestResolver_ResolveInputs_Success(t *testing.T) {
	resolver := fs.NewResolver()

	resolved, err := resolver.ResolveInputs([]string{"Assets/UI/**/*.png"}, candidates)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Assets/UI/atlas.png",
		"Assets/UI/icons/close.png",
		"Assets/UI/icons/open.png",
	}, resolved)
}

func TestResolver_ResolveInputs_PatternOrder(t *testing.T) {
	resolver := fs.NewResolver()

	resolved, err := resolver.ResolveInputs([]string{"Assets/Levels/outro.unity", "Assets/Levels/*.unity"}, candidates)
	require.NoError(t, err)

	assert.Equal(t, []string{"Assets/Levels/outro.unity", "Assets/Levels/intro.unity"}, resolved)
}

func TestResolver_ResolveInputs_Deduplication(t *testing.T) {
	resolver := fs.NewResolver()

	resolved, err := resolver.ResolveInputs(
		[]string{"Assets/Prefabs/door.prefab", "**/*.prefab", "Assets/Prefabs/door.prefab"}, candidates,
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"Assets/Prefabs/door.prefab"}, resolved)
}

func TestResolver_ResolveInputs_InvalidPattern(t *testing.T) {
	resolver := fs.NewResolver()

	_, err := resolver.ResolveInputs([]string{"Assets/["}, candidates)
	require.ErrorContains(t, err, domain.ErrInvalidPattern.Error())
}

func TestResolver_ResolveInputs_NoMatches(t *testing.T) {
	resolver := fs.NewResolver()

	_, err := resolver.ResolveInputs([]string{"**/*.anim"}, candidates)
	require.ErrorContains(t, err, domain.ErrPatternNoMatch.Error())
}
