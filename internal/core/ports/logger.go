package ports

import "go.trai.ch/crate/internal/core/domain"

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)
	// SetLevel drops messages below level.
	SetLevel(level domain.LogLevel)
}

// Step is an open scoped log step. End closes it.
type Step interface {
	End()
}

// BuildLogger records the steps and entries of a build.
type BuildLogger interface {
	// ScopedStep opens a step. Callers close it with defer.
	ScopedStep(level domain.LogLevel, label string) Step
	// AddEntry records a message inside the current step.
	AddEntry(level domain.LogLevel, msg string)
}
