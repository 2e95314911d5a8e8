package model

// TaskStatus represents the status of a processing task
type TaskStatus string

const (
	// TaskStatusPending means the task is created but the worker has not picked it up
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusProcessing means the progress animation is running
	TaskStatusProcessing TaskStatus = "Processing"

	// TaskStatusCompleted means the task reached 100%
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusStopped means the task was interrupted by shutdown
	TaskStatusStopped TaskStatus = "Stopped"

	// TaskStatusError means the task failed with an error
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task still owns the worker
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusPending || ts == TaskStatusProcessing
}

// IsFinished returns true if the task is in a finished state (completed, stopped, or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusStopped || ts == TaskStatusError
}
