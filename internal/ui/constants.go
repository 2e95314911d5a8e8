package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Text fragments
const (
	ProgressLabelFormat = "%d%%"
	LabelSuffix         = ": "
	FileSelectedFormat  = "%s: %s"
)

// Window sizing
const (
	WindowWidth     float32 = 1160
	WindowHeight    float32 = 480
	WindowMinWidth  float32 = 760
	WindowMinHeight float32 = 480
)

// Layout sizing
const (
	ActionButtonWidth  float32 = 260
	ActionButtonHeight float32 = 48
	LanguageSelectMinW float32 = 140
	DialogMinWidth     float32 = 420
	FileDialogWidth    float32 = 800
	FileDialogHeight   float32 = 520
)

// Progress range
const (
	ProgressMin = 0
	ProgressMax = 100
)
