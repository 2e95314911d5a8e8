package process

// Package process implements the background progress driver behind the start
// button. A run steps a counter from 0 to 100 on its own goroutine and reports
// every step as a model.ProgressEvent on a channel consumed by the UI.
