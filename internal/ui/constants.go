package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconError    = "❌"
	IconClose    = "×"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Window sizing
const (
	WindowMinWidth  float32 = 900
	WindowMinHeight float32 = 600

	// ContentSplitOffset places the header panel / chart divider at 1:5
	ContentSplitOffset = 1.0 / 6.0
)

// Toolbar sizing
const (
	ToolbarProgressWidth float32 = 160
)

// Header panel sizing
const (
	HeaderPanelMinWidth float32 = 220
	SwatchSize          float32 = 12
)

// Chart sizing
const (
	ChartMinWidth  float32 = 480
	ChartMinHeight float32 = 320

	ChartMarginLeft   float32 = 56
	ChartMarginRight  float32 = 16
	ChartMarginTop    float32 = 12
	ChartMarginBottom float32 = 30
	ChartLegendHeight float32 = 22

	ChartTickTextSize   float32 = 10
	ChartLegendTextSize float32 = 11

	ChartStrokeWidth     float32 = 1.5
	ChartAxisStrokeWidth float32 = 1
)

// Chart tick counts (ticks, not intervals)
const (
	ChartYTicks = 5
	ChartXTicks = 5
)

// Debounce durations
const (
	UIUpdateDebounce = 100 * time.Millisecond
)
