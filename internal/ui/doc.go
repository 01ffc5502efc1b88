// Package ui contains the Fyne-based desktop user interface for the recipe browser.
// It wires the search controls to the query service and renders the recipe list,
// the detail pane, notifications and settings. All UI strings are localized via
// Localization.
package ui
