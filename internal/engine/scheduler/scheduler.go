// Package scheduler runs the stages of the bundle build pipeline in
// dependency order against a shared build context.
package scheduler

import (
	"context"
	"sync"

	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
	"go.trai.ch/crate/internal/engine/buildctx"
	"go.trai.ch/zerr"
)

// TaskStatus represents the status of a stage.
type TaskStatus string

const (
	// StatusPending indicates the stage is waiting to be executed.
	StatusPending TaskStatus = "Pending"
	// StatusRunning indicates the stage is currently executing.
	StatusRunning TaskStatus = "Running"
	// StatusCompleted indicates the stage has finished successfully.
	StatusCompleted TaskStatus = "Completed"
	// StatusFailed indicates the stage failed.
	StatusFailed TaskStatus = "Failed"
	// StatusCached indicates the stage had nothing to do.
	StatusCached TaskStatus = "Cached"
	// StatusCanceled indicates the build stopped before or during the stage.
	StatusCanceled TaskStatus = "Canceled"
)

// Stage is one step of the pipeline.
type Stage interface {
	Run(ctx context.Context, bc *buildctx.Context) (domain.ReturnCode, error)
}

// StageFunc adapts a function to Stage.
type StageFunc func(ctx context.Context, bc *buildctx.Context) (domain.ReturnCode, error)

// Run implements Stage.
func (f StageFunc) Run(ctx context.Context, bc *buildctx.Context) (domain.ReturnCode, error) {
	return f(ctx, bc)
}

// Pipeline pairs the stage graph with the stage implementations.
type Pipeline struct {
	Graph  *domain.Graph
	Stages map[domain.InternedString]Stage
}

// NewPipeline creates an empty Pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{
		Graph:  domain.NewGraph(),
		Stages: make(map[domain.InternedString]Stage),
	}
}

// Add registers a stage under the task's name.
func (p *Pipeline) Add(task *domain.Task, stage Stage) error {
	if err := p.Graph.AddTask(task); err != nil {
		return err
	}
	p.Stages[task.Name] = stage
	return nil
}

// Scheduler manages the execution of pipeline stages.
type Scheduler struct {
	mu         sync.RWMutex
	taskStatus map[domain.InternedString]TaskStatus
}

// NewScheduler creates a new Scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{taskStatus: make(map[domain.InternedString]TaskStatus)}
}

func (s *Scheduler) initTaskStatuses(g *domain.Graph) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.taskStatus = make(map[domain.InternedString]TaskStatus, g.TaskCount())
	for task := range g.Walk() {
		s.taskStatus[task.Name] = StatusPending
	}
}

func (s *Scheduler) updateStatus(name domain.InternedString, status TaskStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.taskStatus[name] = status
}

// Status returns the status of the named stage from the last run.
func (s *Scheduler) Status(name string) TaskStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.taskStatus[domain.NewInternedString(name)]
}

// Run executes the stages of p one after another in topological order.
// Canceled and Error stop the run. SuccessNotRun counts as success.
func (s *Scheduler) Run(ctx context.Context, p *Pipeline, bc *buildctx.Context) (domain.ReturnCode, error) {
	if err := p.Graph.Validate(); err != nil {
		return domain.Error, err
	}
	s.initTaskStatuses(p.Graph)

	tracker, _ := buildctx.TryGet[ports.ProgressTracker](bc, domain.TagProgressTracker)
	reporter, _ := tracker.(ports.StageReporter)
	log, _ := buildctx.TryGet[ports.BuildLogger](bc, domain.TagBuildLogger)

	for task := range p.Graph.Walk() {
		stage, ok := p.Stages[task.Name]
		if !ok {
			s.updateStatus(task.Name, StatusFailed)
			return domain.Error, zerr.With(domain.ErrTaskNotFound, "stage", task.Name.String())
		}

		if ctx.Err() != nil || (tracker != nil && !tracker.UpdateStage(task.Name.String())) {
			s.updateStatus(task.Name, StatusCanceled)
			return domain.Canceled, nil
		}

		s.updateStatus(task.Name, StatusRunning)
		code, err := s.runStage(ctx, task, stage, bc, log)
		if reporter != nil {
			reporter.FinishStage(code, err)
		}

		switch code {
		case domain.Success:
			s.updateStatus(task.Name, StatusCompleted)
		case domain.SuccessNotRun:
			s.updateStatus(task.Name, StatusCached)
		case domain.Canceled:
			s.updateStatus(task.Name, StatusCanceled)
			return domain.Canceled, nil
		default:
			s.updateStatus(task.Name, StatusFailed)
			if err == nil {
				err = domain.ErrBuildFailed
			}
			return domain.Error, zerr.With(zerr.Wrap(err, "stage failed"), "stage", task.Name.String())
		}
	}
	return domain.Success, nil
}

func (s *Scheduler) runStage(
	ctx context.Context,
	task domain.Task,
	stage Stage,
	bc *buildctx.Context,
	log ports.BuildLogger,
) (domain.ReturnCode, error) {
	if log != nil {
		step := log.ScopedStep(domain.LogLevelInfo, task.Name.String())
		defer step.End()
	}
	return stage.Run(ctx, bc)
}
