package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires the language selector, file chooser, and start button to the settings
// and the processing service, and renders progress from the service's events.
// All UI strings are localized via Localization.
