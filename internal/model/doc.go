package model

// Package model defines domain data structures used across the app: interface
// languages, processing tasks, progress events, and status enums. Structures are
// plain values so they can be copied between the worker and the UI safely.
