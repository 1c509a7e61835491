package platform

// Package platform contains OS integration and filesystem glue: WAV path
// filtering, folder scanning, and subprocess tweaks for external tools.
