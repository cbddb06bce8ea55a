package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the CSV load service and renders the header
// panel, the chart, and settings. All UI strings are localized via Localization.
