package process

import (
	"context"

	"github.com/ytget/asset-standardizer/internal/model"
)

// Processor defines the interface for the processing service.
type Processor interface {
	// Start launches a run for filePath. The returned channel receives one event
	// per step and a final event, and is closed when the run ends.
	Start(ctx context.Context, filePath string) (model.ProcessingTask, <-chan model.ProgressEvent, error)

	// GetTask returns a snapshot of the task with the given ID
	GetTask(id string) (model.ProcessingTask, bool)

	// ActiveTask returns a snapshot of the running task, if any
	ActiveTask() (model.ProcessingTask, bool)
}
