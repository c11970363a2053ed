package domain

// ReturnCode is the outcome of a pipeline stage.
type ReturnCode int

const (
	// Success means the stage ran and produced its outputs.
	Success ReturnCode = iota
	// SuccessNotRun means the stage had nothing to do.
	SuccessNotRun
	// Canceled means the progress tracker requested a stop.
	Canceled
	// Error means the stage failed.
	Error
)

// String returns the string representation of the ReturnCode.
func (c ReturnCode) String() string {
	switch c {
	case Success:
		return "success"
	case SuccessNotRun:
		return "success_not_run"
	case Canceled:
		return "canceled"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Succeeded reports whether the pipeline may continue.
func (c ReturnCode) Succeeded() bool {
	return c == Success || c == SuccessNotRun
}
