package ui

// Package ui contains the Fyne-based desktop user interface for the converter.
// It wires the file and folder pickers, the convert button and the log pane to
// the conversion driver. All UI strings are localized via Localization.
