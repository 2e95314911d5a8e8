package process

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/asset-standardizer/internal/model"
)

// Driver timing
const (
	DefaultStepInterval = 30 * time.Millisecond
	TaskIDPrefix        = "process-"
)

var (
	// ErrNoFile is returned when Start is called without a file
	ErrNoFile = errors.New("no file selected")

	// ErrBusy is returned while another run is in progress
	ErrBusy = errors.New("processing already in progress")
)

// Service runs the progress animation for selected files
type Service struct {
	tasks      map[string]*model.ProcessingTask
	tasksMutex sync.RWMutex
	activeID   string
	interval   time.Duration
}

// NewService creates a new processing service. A non-positive interval selects
// DefaultStepInterval.
func NewService(interval time.Duration) *Service {
	if interval <= 0 {
		interval = DefaultStepInterval
	}
	return &Service{
		tasks:    make(map[string]*model.ProcessingTask),
		interval: interval,
	}
}

// StepInterval returns the pause before each step
func (s *Service) StepInterval() time.Duration {
	return s.interval
}

// Start launches a run for filePath
func (s *Service) Start(ctx context.Context, filePath string) (model.ProcessingTask, <-chan model.ProgressEvent, error) {
	if strings.TrimSpace(filePath) == "" {
		return model.ProcessingTask{}, nil, ErrNoFile
	}

	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	if s.activeID != "" {
		return model.ProcessingTask{}, nil, fmt.Errorf("%w: %s", ErrBusy, s.activeID)
	}

	task := &model.ProcessingTask{
		ID:        generateTaskID(),
		FilePath:  filePath,
		Status:    model.TaskStatusPending,
		StartedAt: time.Now(),
	}
	s.tasks[task.ID] = task
	s.activeID = task.ID

	// Room for every step plus the final event, so the worker never blocks
	events := make(chan model.ProgressEvent, model.MaxPercent+2)
	go s.run(ctx, task, events)

	return *task, events, nil
}

// GetTask returns a task snapshot by ID
func (s *Service) GetTask(id string) (model.ProcessingTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	task, exists := s.tasks[id]
	if !exists {
		return model.ProcessingTask{}, false
	}
	return *task, true
}

// ActiveTask returns the running task snapshot, if any
func (s *Service) ActiveTask() (model.ProcessingTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	if s.activeID == "" {
		return model.ProcessingTask{}, false
	}
	return *s.tasks[s.activeID], true
}

// run steps the task from 0 to 100, pausing before each step
func (s *Service) run(ctx context.Context, task *model.ProcessingTask, events chan<- model.ProgressEvent) {
	defer close(events)

	s.setStatus(task, model.TaskStatusProcessing)
	log.Printf("Processing started for %s (task %s)", task.FilePath, task.ID)

	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	for percent := 0; percent <= model.MaxPercent; percent++ {
		if percent > 0 {
			timer.Reset(s.interval)
		}

		select {
		case <-ctx.Done():
			events <- s.finish(task, model.TaskStatusStopped, ctx.Err())
			log.Printf("Processing stopped for task %s at %d%%", task.ID, percent)
			return
		case <-timer.C:
		}

		events <- s.step(task, percent)
	}

	events <- s.finish(task, model.TaskStatusCompleted, nil)
	log.Printf("Processing completed for task %s", task.ID)
}

func (s *Service) setStatus(task *model.ProcessingTask, status model.TaskStatus) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	task.Status = status
}

// step records percent and returns the matching event
func (s *Service) step(task *model.ProcessingTask, percent int) model.ProgressEvent {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	task.Percent = percent
	return model.ProgressEvent{TaskID: task.ID, Percent: percent, Status: task.Status}
}

// finish moves the task into a final state and releases the worker slot
func (s *Service) finish(task *model.ProcessingTask, status model.TaskStatus, err error) model.ProgressEvent {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	task.Status = status
	if err != nil {
		task.LastError = err.Error()
	}
	task.FinishedAt = time.Now()
	if s.activeID == task.ID {
		s.activeID = ""
	}

	return model.ProgressEvent{TaskID: task.ID, Percent: task.Percent, Status: status}
}

// generateTaskID generates a unique task ID
func generateTaskID() string {
	return TaskIDPrefix + uuid.New().String()
}
