package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crate/internal/core/domain"
)

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		setup        func(t *testing.T, dir string)
		args         []string
		expectedExit int
	}{
		{
			name: "build with valid config",
			setup: func(t *testing.T, dir string) {
				t.Helper()
				write(t, dir, domain.CrateFileName, "version: \"1\"\nbundles:\n  - name: ui\n    assets: [\"Assets/*.mat\"]\n")
				write(t, dir, domain.ManifestFileName, `
assets:
  - guid: 00000000000000000000000000000002
    path: Assets/panel.mat
    objects:
      - id: 2100000
        types: [Material]
`)
			},
			args:         []string{"crate", "build"},
			expectedExit: 0,
		},
		{
			name:         "build without config",
			setup:        func(*testing.T, string) {},
			args:         []string{"crate", "build"},
			expectedExit: 1,
		},
		{
			name:         "version",
			setup:        func(*testing.T, string) {},
			args:         []string{"crate", "version"},
			expectedExit: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tt.setup(t, dir)

			originalWd, _ := os.Getwd()
			require.NoError(t, os.Chdir(dir))
			defer func() {
				_ = os.Chdir(originalWd)
			}()

			os.Args = tt.args
			assert.Equal(t, tt.expectedExit, run())
		})
	}
}

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}
