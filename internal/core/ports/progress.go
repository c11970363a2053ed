package ports

import "go.trai.ch/crate/internal/core/domain"

// ProgressTracker reports progress and carries cooperative cancellation.
// Both methods return false once the build should stop.
//
//go:generate mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks
type ProgressTracker interface {
	UpdateStage(name string) bool
	UpdateInfo(label string) bool
}

// StageReporter is implemented by trackers that show how a stage ended.
type StageReporter interface {
	FinishStage(code domain.ReturnCode, err error)
}
