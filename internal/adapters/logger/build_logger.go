package logger

import (
	"strings"
	"sync"
	"time"

	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
)

var _ ports.BuildLogger = (*BuildLogger)(nil)

// BuildLogger implements ports.BuildLogger on top of Logger.
// Steps nest; entries are attributed to the innermost open step.
type BuildLogger struct {
	log *Logger
	now func() time.Time

	mu    sync.Mutex
	steps []*step
}

// NewBuildLogger creates a BuildLogger writing through log.
func NewBuildLogger(log *Logger) *BuildLogger {
	return &BuildLogger{log: log, now: time.Now}
}

type step struct {
	owner *BuildLogger
	level domain.LogLevel
	label string
	start time.Time
	once  sync.Once
}

// ScopedStep opens a step and logs its start.
func (b *BuildLogger) ScopedStep(level domain.LogLevel, label string) ports.Step {
	s := &step{owner: b, level: level, label: label, start: b.now()}

	b.mu.Lock()
	b.steps = append(b.steps, s)
	path := b.pathLocked()
	b.mu.Unlock()

	b.log.Log(level, "step started", "step", path)
	return s
}

// AddEntry logs msg inside the innermost open step.
func (b *BuildLogger) AddEntry(level domain.LogLevel, msg string) {
	b.mu.Lock()
	path := b.pathLocked()
	b.mu.Unlock()

	if path == "" {
		b.log.Log(level, msg)
		return
	}
	b.log.Log(level, msg, "step", path)
}

// End closes the step and logs its duration. Closing twice is a no-op.
func (s *step) End() {
	s.once.Do(func() {
		b := s.owner
		b.mu.Lock()
		path := b.pathLocked()
		for i := len(b.steps) - 1; i >= 0; i-- {
			if b.steps[i] == s {
				b.steps = append(b.steps[:i], b.steps[i+1:]...)
				break
			}
		}
		b.mu.Unlock()

		b.log.Log(s.level, "step finished", "step", path, "duration", b.now().Sub(s.start))
	})
}

func (b *BuildLogger) pathLocked() string {
	labels := make([]string, len(b.steps))
	for i, s := range b.steps {
		labels[i] = s.label
	}
	return strings.Join(labels, " > ")
}
