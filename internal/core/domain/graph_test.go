package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/zerr"
)

func stageNames(g *domain.Graph) []string {
	var names []string
	for task := range g.Walk() {
		names = append(names, task.Name.String())
	}
	return names
}

func TestGraph_AddTask_Duplicate(t *testing.T) {
	g := domain.NewGraph()
	require.NoError(t, g.AddTask(domain.NewTask("packing", 1)))

	err := g.AddTask(domain.NewTask("packing", 2))
	require.ErrorContains(t, err, domain.ErrTaskAlreadyExists.Error())

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "packing", zErr.Metadata()["stage"])
}

func TestGraph_Validate_Cycle(t *testing.T) {
	g := domain.NewGraph()
	require.NoError(t, g.AddTask(domain.NewTask("scenes", 1, "packing")))
	require.NoError(t, g.AddTask(domain.NewTask("assets", 1, "scenes")))
	require.NoError(t, g.AddTask(domain.NewTask("packing", 1, "assets")))

	err := g.Validate()
	require.ErrorContains(t, err, domain.ErrCycleDetected.Error())

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "scenes -> packing -> assets -> scenes", zErr.Metadata()["cycle"])
}

func TestGraph_Validate_MissingDependency(t *testing.T) {
	g := domain.NewGraph()
	require.NoError(t, g.AddTask(domain.NewTask("packing", 1, "assets")))

	err := g.Validate()
	require.ErrorContains(t, err, domain.ErrMissingDependency.Error())
}

func TestGraph_Walk(t *testing.T) {
	tests := []struct {
		name   string
		stages []*domain.Task
		want   []string
	}{
		{
			name: "chain runs dependencies first",
			stages: []*domain.Task{
				domain.NewTask("post", 1, "packing"),
				domain.NewTask("packing", 1, "assets"),
				domain.NewTask("assets", 1),
			},
			want: []string{"assets", "packing", "post"},
		},
		{
			name: "independent stages keep insertion order",
			stages: []*domain.Task{
				domain.NewTask("scenes", 1),
				domain.NewTask("assets", 1),
				domain.NewTask("report", 1),
			},
			want: []string{"scenes", "assets", "report"},
		},
		{
			name: "shared dependency runs once",
			stages: []*domain.Task{
				domain.NewTask("packing", 1, "scenes", "assets"),
				domain.NewTask("assets", 1, "scenes"),
				domain.NewTask("scenes", 1),
			},
			want: []string{"scenes", "assets", "packing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := domain.NewGraph()
			for _, s := range tt.stages {
				require.NoError(t, g.AddTask(s))
			}
			require.NoError(t, g.Validate())

			assert.Equal(t, len(tt.stages), g.TaskCount())
			assert.Equal(t, tt.want, stageNames(g))
		})
	}
}
