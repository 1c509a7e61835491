package config

import "fyne.io/fyne/v2/data/binding"

// Default values
const (
	DefaultEncoderCommand = "ffmpeg"
	DefaultQuality        = 2
	DefaultLanguage       = "system"
)

// LAME VBR quality bounds; 0 is best, 9 is smallest
const (
	MinQuality = 0
	MaxQuality = 9
)

// Settings holds the session configuration as data bindings. Nothing is
// written to disk: every run starts from the defaults. Setters notify the
// bound widgets and listeners through the running Fyne app.
type Settings struct {
	encoderCommand binding.String
	quality        binding.Int
	language       binding.String
}

// NewSettings creates a settings manager populated with defaults
func NewSettings() *Settings {
	command := DefaultEncoderCommand
	quality := DefaultQuality
	language := DefaultLanguage

	return &Settings{
		encoderCommand: binding.BindString(&command),
		quality:        binding.BindInt(&quality),
		language:       binding.BindString(&language),
	}
}

// EncoderCommandData returns the bindable encoder command
func (s *Settings) EncoderCommandData() binding.String {
	return s.encoderCommand
}

// QualityData returns the bindable VBR quality
func (s *Settings) QualityData() binding.Int {
	return s.quality
}

// LanguageData returns the bindable UI language
func (s *Settings) LanguageData() binding.String {
	return s.language
}

// GetEncoderCommand returns the encoder executable name resolved via PATH
func (s *Settings) GetEncoderCommand() string {
	command, err := s.encoderCommand.Get()
	if err != nil || command == "" {
		return DefaultEncoderCommand
	}
	return command
}

// SetEncoderCommand sets the encoder executable; empty restores the default
func (s *Settings) SetEncoderCommand(command string) {
	if command == "" {
		command = DefaultEncoderCommand
	}
	s.encoderCommand.Set(command)
}

// GetQuality returns the VBR quality passed to the encoder
func (s *Settings) GetQuality() int {
	quality, err := s.quality.Get()
	if err != nil {
		return DefaultQuality
	}
	return clampQuality(quality)
}

// SetQuality sets the VBR quality, clamped to [MinQuality, MaxQuality]
func (s *Settings) SetQuality(quality int) {
	s.quality.Set(clampQuality(quality))
}

func clampQuality(quality int) int {
	if quality < MinQuality {
		return MinQuality
	}
	if quality > MaxQuality {
		return MaxQuality
	}
	return quality
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang, err := s.language.Get()
	if err != nil || lang == "" {
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the UI language for this session
func (s *Settings) SetLanguage(lang string) {
	if lang == "" {
		lang = DefaultLanguage
	}
	s.language.Set(lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"es":     "Español",
	}
}
