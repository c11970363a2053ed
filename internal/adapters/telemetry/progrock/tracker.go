package progrock

import (
	"context"
	"sync"

	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
)

var (
	_ ports.ProgressTracker = (*Tracker)(nil)
	_ ports.StageReporter   = (*Tracker)(nil)
)

// Tracker implements ports.ProgressTracker on a telemetry session.
// Every stage gets its own vertex; info labels are logged on the open one.
// Both updates report false once ctx is done.
type Tracker struct {
	ctx context.Context
	tel ports.Telemetry

	mu      sync.Mutex
	current ports.Vertex
}

// NewTracker creates a Tracker bound to ctx.
func NewTracker(ctx context.Context, tel ports.Telemetry) *Tracker {
	return &Tracker{ctx: ctx, tel: tel}
}

// UpdateStage closes the open stage vertex and opens one named name.
func (t *Tracker) UpdateStage(name string) bool {
	if t.ctx.Err() != nil {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current != nil {
		t.current.Complete(nil)
	}
	_, t.current = t.tel.Record(t.ctx, name)
	return true
}

// UpdateInfo logs label on the open stage vertex.
func (t *Tracker) UpdateInfo(label string) bool {
	if t.ctx.Err() != nil {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current != nil {
		t.current.Log(domain.LogLevelDebug, label)
	}
	return true
}

// FinishStage completes the open stage vertex. Stages that had nothing to
// do are marked cached.
func (t *Tracker) FinishStage(code domain.ReturnCode, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current == nil {
		return
	}
	switch code {
	case domain.SuccessNotRun:
		t.current.Cached()
		t.current.Complete(nil)
	case domain.Canceled:
		t.current.Complete(domain.ErrBuildCanceled)
	default:
		t.current.Complete(err)
	}
	t.current = nil
}
