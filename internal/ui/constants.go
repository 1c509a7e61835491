package ui

// UI-wide constants to avoid magic numbers scattered across the codebase.

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Layout sizing
const (
	FileListMinHeight float32 = 160
	LogMinHeight      float32 = 150
)

// File dialog filter
var (
	WAVDialogExtensions = []string{".wav", ".WAV"}
)

// Native dialog filter
const NativeWAVFilterLabel = "WAV audio"

var NativeWAVPatterns = []string{"*.wav", "*.WAV"}
