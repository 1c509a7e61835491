package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/wav2mp3/internal/config"
)

// SettingsDialog edits the session settings: encoder executable, quality and language
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	encoderEntry   *widget.Entry
	qualitySelect  *widget.Select
	languageSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings have been updated.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.encoderEntry = widget.NewEntry()
	sd.encoderEntry.SetPlaceHolder(config.DefaultEncoderCommand)

	sd.qualitySelect = widget.NewSelect(qualityOptions(), nil)

	// Language codes in a stable order
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyEncoderCommand)+":"),
		sd.encoderEntry,

		widget.NewLabel(l.GetText(KeyQuality)+":"),
		sd.qualitySelect,

		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(420, 300))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.encoderEntry.SetText(sd.settings.GetEncoderCommand())
	sd.qualitySelect.SetSelectedIndex(sd.settings.GetQuality() - config.MinQuality)
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Empty restores the default encoder
	sd.settings.SetEncoderCommand(sd.encoderEntry.Text)

	if sd.qualitySelect.Selected != "" {
		if q, err := strconv.Atoi(sd.qualitySelect.Selected); err == nil {
			sd.settings.SetQuality(q)
		}
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
