package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
)

// Layout sizing
const (
	// ListPaneOffset is the share of the split given to the recipe names
	ListPaneOffset = 0.35

	MessageDialogWidth  float32 = 360
	SettingsDialogWidth float32 = 460
	SettingsDialogH     float32 = 320
)
