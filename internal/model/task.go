package model

import (
	"path/filepath"
	"time"
)

// MaxPercent is the final progress value of every run
const MaxPercent = 100

// ProcessingTask represents a single run of the standardization step
type ProcessingTask struct {
	ID         string
	FilePath   string
	Status     TaskStatus
	Percent    int    // 0 to 100
	LastError  string // last error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}

// ProgressEvent is emitted by the worker for every step and once at the end
type ProgressEvent struct {
	TaskID  string
	Percent int
	Status  TaskStatus
}

// Done reports whether this is the last event of a run
func (e ProgressEvent) Done() bool {
	return e.Status.IsFinished()
}

// OutputDir returns the directory that contains the selected file
func (t *ProcessingTask) OutputDir() string {
	if t.FilePath == "" {
		return ""
	}
	return filepath.Dir(t.FilePath)
}

// Progress returns the percentage as a fraction from 0.0 to 1.0
func (t *ProcessingTask) Progress() float64 {
	switch {
	case t.Percent <= 0:
		return 0
	case t.Percent >= MaxPercent:
		return 1
	}
	return float64(t.Percent) / MaxPercent
}

// DisplayName returns the file name without its directory
func (t *ProcessingTask) DisplayName() string {
	if t.FilePath == "" {
		return ""
	}
	return filepath.Base(t.FilePath)
}

// Elapsed returns how long the task ran, or has been running so far
func (t *ProcessingTask) Elapsed() time.Duration {
	if t.StartedAt.IsZero() {
		return 0
	}
	if t.FinishedAt.IsZero() {
		return time.Since(t.StartedAt)
	}
	return t.FinishedAt.Sub(t.StartedAt)
}
