// Package domain contains the core data model of the bundle build pipeline:
// identities, cache entries, dependency graphs, bundle layouts, write plans
// and the stage graph that orders the pipeline.
package domain

import (
	"iter"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Graph represents the dependency graph of pipeline stages.
type Graph struct {
	tasks          map[InternedString]Task
	order          []InternedString
	executionOrder []InternedString
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		tasks: make(map[InternedString]Task),
	}
}

// AddTask adds a stage to the graph.
// It returns an error if a stage with the same name already exists.
func (g *Graph) AddTask(t *Task) error {
	if _, exists := g.tasks[t.Name]; exists {
		return zerr.With(ErrTaskAlreadyExists, "stage", t.Name.String())
	}
	g.tasks[t.Name] = *t
	g.order = append(g.order, t.Name)
	return nil
}

type visitState uint8

const (
	unvisited visitState = iota
	onStack
	done
)

// Validate checks for cycles and missing stages with a depth-first
// topological sort and records the execution order. Stages without an
// ordering constraint run in insertion order.
func (g *Graph) Validate() error {
	order := make([]InternedString, 0, len(g.tasks))
	state := make(map[InternedString]visitState, len(g.tasks))
	var stack []InternedString

	var visit func(name InternedString) error
	visit = func(name InternedString) error {
		stage, ok := g.tasks[name]
		if !ok {
			return zerr.With(ErrMissingDependency, "dependency", name.String())
		}
		state[name] = onStack
		stack = append(stack, name)

		for _, dep := range stage.Dependencies {
			switch state[dep] {
			case onStack:
				return cycleError(stack, dep)
			case unvisited:
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		state[name] = done
		stack = stack[:len(stack)-1]
		order = append(order, name)
		return nil
	}

	for _, name := range g.order {
		if state[name] != unvisited {
			continue
		}
		if err := visit(name); err != nil {
			return err
		}
	}

	g.executionOrder = order
	return nil
}

// cycleError reports the stages from the first occurrence of dep on the
// stack back to dep.
func cycleError(stack []InternedString, dep InternedString) error {
	start := slices.Index(stack, dep)
	names := make([]string, 0, len(stack)-start+1)
	for _, n := range stack[start:] {
		names = append(names, n.String())
	}
	names = append(names, dep.String())
	return zerr.With(ErrCycleDetected, "cycle", strings.Join(names, " -> "))
}

// TaskCount returns the number of stages.
func (g *Graph) TaskCount() int {
	return len(g.tasks)
}

// Walk returns an iterator that yields stages in execution order.
// It assumes Validate() has been called and returned nil.
func (g *Graph) Walk() iter.Seq[Task] {
	return func(yield func(Task) bool) {
		for _, name := range g.executionOrder {
			if !yield(g.tasks[name]) {
				return
			}
		}
	}
}
