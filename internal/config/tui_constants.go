package config

// Layout constants.
const (
	// ProgressWidth is the preferred width of the countdown bar.
	ProgressWidth = 40

	// CompactModeThreshold shrinks the bar below this terminal width.
	CompactModeThreshold = 60

	// MinProgressWidth is the narrowest bar we render.
	MinProgressWidth = 10

	// MaxPresetTitleWidth truncates preset titles in the list.
	MaxPresetTitleWidth = 24

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Input constraints.
const (
	// MaxPresetTitleLength caps titles typed into the save prompt.
	MaxPresetTitleLength = 40

	// MaxQuickSelect is the number of presets reachable by digit keys.
	MaxQuickSelect = 9
)
