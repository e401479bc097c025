package domain

// RunStatus defines the current mode of the engine mechanics.
type RunStatus string

const (
	StatusNotStarted RunStatus = "not_started" // No run has been requested yet
	StatusRunning    RunStatus = "running"     // A run is in progress
	StatusCompleted  RunStatus = "completed"   // Every scenario produced its output
	StatusFailed     RunStatus = "failed"      // A scenario aborted the run
)

// Terminal reports whether the status is a sink state.
func (s RunStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}
