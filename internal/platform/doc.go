package platform

// Package platform contains OS integration glue: revealing folders in the native
// file manager, filesystem helpers, and system locale detection.
