package ui

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"strconv"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/wav2mp3/internal/audio"
	"github.com/ytget/wav2mp3/internal/config"
	"github.com/ytget/wav2mp3/internal/convert"
	"github.com/ytget/wav2mp3/internal/model"
	"github.com/ytget/wav2mp3/internal/platform"
)

// EncoderControl is implemented by encoders whose settings can change between batches
type EncoderControl interface {
	SetCommand(command string)
	SetQuality(quality int)
}

// RootUI represents the main window: pickers, convert button and log pane
type RootUI struct {
	ctx          context.Context
	window       fyne.Window
	state        *model.State
	converter    convert.Converter
	encoder      EncoderControl
	settings     *config.Settings
	localization *Localization
	picker       Picker
	version      string

	// Files section
	filesCard      *widget.Card
	selectBtn      *widget.Button
	addBtn         *widget.Button
	folderBtn      *widget.Button
	fileCountLabel *widget.Label
	fileList       *widget.List
	files          []fileEntry

	// Output section
	outputCard     *widget.Card
	outputBtn      *widget.Button
	clearOutputBtn *widget.Button
	outputLabel    *widget.Label

	// Action row
	qualityLabel  *widget.Label
	qualitySelect *widget.Select
	convertBtn    *widget.Button
	statusLabel   *widget.Label

	logCard *widget.Card
	logView *LogView

	// Batch worker
	workers sync.WaitGroup
}

// fileEntry is one row of the selected files list
type fileEntry struct {
	path string
	info string
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, state *model.State, converter convert.Converter, encoder EncoderControl) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		ctx:          context.Background(),
		window:       window,
		state:        state,
		converter:    converter,
		encoder:      encoder,
		settings:     settings,
		localization: localization,
		picker:       NewNativePicker(window),
		logView:      NewLogView(),
	}

	// Driver callbacks may arrive from the batch worker
	ui.converter.SetEventCallback(ui.onConverterEvent)
	ui.converter.SetBusyCallback(ui.onBusyChange)

	ui.setupUI()
	return ui
}

// SetPicker replaces the dialogs used to choose files and folders
func (ui *RootUI) SetPicker(picker Picker) {
	ui.picker = picker
}

// SetVersion appends the build version to the window title
func (ui *RootUI) SetVersion(version string) {
	ui.version = version
	ui.window.SetTitle(ui.windowTitle())
}

func (ui *RootUI) windowTitle() string {
	title := ui.localization.GetText(KeyAppTitle)
	if ui.version == "" {
		return title
	}
	return fmt.Sprintf("%s v%s", title, ui.version)
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Files section
	ui.selectBtn = widget.NewButtonWithIcon("", theme.FileIcon(), ui.onSelectFiles)
	ui.addBtn = widget.NewButtonWithIcon("", theme.ContentAddIcon(), ui.onAddFiles)
	ui.folderBtn = widget.NewButtonWithIcon("", theme.FolderOpenIcon(), ui.onSelectFolder)
	ui.fileCountLabel = widget.NewLabel("")

	ui.fileList = widget.NewList(
		func() int {
			return len(ui.files)
		},
		func() fyne.CanvasObject {
			name := widget.NewLabel("")
			name.Truncation = fyne.TextTruncateEllipsis
			detail := widget.NewLabel("")
			detail.TextStyle = fyne.TextStyle{Italic: true}
			detail.Truncation = fyne.TextTruncateEllipsis
			return container.NewVBox(name, detail)
		},
		ui.updateFileItem,
	)
	// Lists have no useful minimum height of their own
	listSizer := canvas.NewRectangle(color.Transparent)
	listSizer.SetMinSize(fyne.NewSize(0, FileListMinHeight))

	fileButtons := container.NewHBox(ui.selectBtn, ui.addBtn, ui.folderBtn, ui.fileCountLabel)
	ui.filesCard = widget.NewCard("", "", container.NewBorder(fileButtons, nil, nil, nil,
		container.NewStack(listSizer, ui.fileList)))

	// Output section
	ui.outputBtn = widget.NewButtonWithIcon("", theme.FolderIcon(), ui.onSelectOutput)
	ui.clearOutputBtn = widget.NewButtonWithIcon("", theme.ContentClearIcon(), ui.onClearOutput)
	ui.outputLabel = widget.NewLabel("")
	ui.outputLabel.Truncation = fyne.TextTruncateEllipsis
	ui.outputCard = widget.NewCard("", "", container.NewBorder(nil, nil,
		container.NewHBox(ui.outputBtn, ui.clearOutputBtn), nil, ui.outputLabel))

	// Action row
	ui.qualityLabel = widget.NewLabel("")
	ui.qualitySelect = widget.NewSelect(qualityOptions(), nil)
	ui.qualitySelect.Bind(binding.IntToString(ui.settings.QualityData()))
	ui.convertBtn = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), ui.onConvertClick)
	ui.convertBtn.Importance = widget.HighImportance
	ui.statusLabel = widget.NewLabel("")
	actionRow := container.NewBorder(nil, nil,
		container.NewHBox(ui.qualityLabel, ui.qualitySelect), ui.convertBtn, ui.statusLabel)

	// Log pane
	ui.logCard = widget.NewCard("", "", ui.logView.Container())

	top := container.NewVBox(ui.filesCard, ui.outputCard, actionRow)
	content := container.NewBorder(top, nil, nil, nil, ui.logCard)
	ui.window.SetContent(container.NewPadded(content))

	ui.refreshUITexts()
	ui.bindSettings()
	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	fileMenu := fyne.NewMenu(ui.localization.GetText(KeyFile),
		fyne.NewMenuItem(ui.localization.GetText(KeySelectFiles), ui.onSelectFiles),
		fyne.NewMenuItem(ui.localization.GetText(KeySelectFolder), ui.onSelectFolder),
		fyne.NewMenuItem(ui.localization.GetText(KeyChooseOutput), ui.onSelectOutput),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(ui.localization.GetText(KeySettings)+"...", ui.onShowSettings),
	)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, languageMenu))
}

// bindSettings keeps the encoder and the UI language in step with the settings
func (ui *RootUI) bindSettings() {
	if ui.encoder != nil {
		ui.settings.EncoderCommandData().AddListener(binding.NewDataListener(func() {
			ui.encoder.SetCommand(ui.settings.GetEncoderCommand())
		}))
		ui.settings.QualityData().AddListener(binding.NewDataListener(func() {
			ui.encoder.SetQuality(ui.settings.GetQuality())
		}))
	}
	ui.settings.LanguageData().AddListener(binding.NewDataListener(ui.onLanguageSettingChanged))
}

// onLanguageChange switches the UI language for this session
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.settings.SetLanguage(langCode)
}

// onLanguageSettingChanged retranslates the window after a language change
func (ui *RootUI) onLanguageSettingChanged() {
	lang := ui.settings.GetLanguage()
	ui.localization.SetLanguage(lang)
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// onShowSettings opens the settings dialog unless a batch is running
func (ui *RootUI) onShowSettings() {
	if ui.state.Busy() {
		ui.showNotice(model.NoticeBusy, nil)
		return
	}
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved logs the saved settings. The encoder and the widgets follow
// the settings bindings.
func (ui *RootUI) onSettingsSaved() {
	ui.logView.Append(fmt.Sprintf(ui.localization.GetText(KeyLogSettingsSaved),
		ui.settings.GetEncoderCommand(), ui.settings.GetQuality()))
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization
	ui.window.SetTitle(ui.windowTitle())

	ui.filesCard.SetTitle(l.GetText(KeyWAVFiles))
	ui.selectBtn.SetText(l.GetText(KeySelectFiles))
	ui.addBtn.SetText(l.GetText(KeyAddFile))
	ui.folderBtn.SetText(l.GetText(KeySelectFolder))

	ui.outputCard.SetTitle(l.GetText(KeyOutputFolder))
	ui.outputBtn.SetText(l.GetText(KeyChooseOutput))
	ui.clearOutputBtn.SetText(l.GetText(KeyClearOutput))

	ui.qualityLabel.SetText(l.GetText(KeyQuality))
	ui.convertBtn.SetText(l.GetText(KeyConvert))
	ui.logCard.SetTitle(l.GetText(KeyLog))

	if ui.state.Busy() {
		ui.statusLabel.SetText(l.GetText(KeyStatusConverting))
	} else {
		ui.statusLabel.SetText(l.GetText(KeyStatusReady))
	}

	ui.refreshSelection()
	ui.refreshOutput()
}

// onSelectFiles replaces the selection with the picked WAV files
func (ui *RootUI) onSelectFiles() {
	ui.picker.PickWAVs(ui.localization.GetText(KeySelectFiles), func(paths []string, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if len(paths) == 0 {
			return
		}
		ui.applySelection(paths, false)
	})
}

// onAddFiles appends the picked WAV files to the selection
func (ui *RootUI) onAddFiles() {
	ui.picker.PickWAVs(ui.localization.GetText(KeyAddFile), func(paths []string, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if len(paths) == 0 {
			return
		}
		ui.applySelection(paths, true)
	})
}

// onSelectFolder replaces the selection with every WAV file in a folder
func (ui *RootUI) onSelectFolder() {
	ui.picker.PickFolder(ui.localization.GetText(KeySelectFolder), func(dir string, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if dir == "" {
			return
		}

		paths, err := platform.ListWAVFiles(dir)
		if err != nil {
			log.Printf("Failed to list %s: %v", dir, err)
			dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorReadingFolder), err), ui.window)
			return
		}
		ui.applySelection(paths, false)
	})
}

// applySelection filters paths to WAV files and stores them. A selection with
// no WAV file leaves the current one untouched.
func (ui *RootUI) applySelection(paths []string, appendToCurrent bool) {
	wavs := platform.FilterWAV(paths)
	if len(wavs) == 0 {
		ui.showNotice(model.NoticeNoValidFiles, nil)
		return
	}

	if appendToCurrent {
		wavs = platform.FilterWAV(append(ui.state.Selection(), wavs...))
	}

	ui.state.SetSelection(wavs)
	ui.refreshSelection()
	ui.logView.Append(fmt.Sprintf(ui.localization.GetText(KeyLogFilesSelected), len(wavs)))
}

// refreshSelection rebuilds the file list from state
func (ui *RootUI) refreshSelection() {
	selection := ui.state.Selection()

	known := make(map[string]string, len(ui.files))
	for _, f := range ui.files {
		known[f.path] = f.info
	}

	ui.files = ui.files[:0]
	for _, path := range selection {
		info, ok := known[path]
		if !ok {
			info = describeSource(path)
		}
		ui.files = append(ui.files, fileEntry{path: path, info: info})
	}

	if len(selection) == 0 {
		ui.fileCountLabel.SetText(ui.localization.GetText(KeyNoFilesSelected))
	} else {
		ui.fileCountLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyFilesSelectedCount), len(selection)))
	}
	ui.fileList.Refresh()
}

// updateFileItem renders one selected file
func (ui *RootUI) updateFileItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id >= len(ui.files) {
		return
	}
	entry := ui.files[id]

	box, ok := item.(*fyne.Container)
	if !ok || len(box.Objects) < 2 {
		return
	}
	name := box.Objects[0].(*widget.Label)
	detail := box.Objects[1].(*widget.Label)

	name.SetText(entry.path)
	detail.SetText(entry.info)
}

// describeSource returns the WAV header summary, or "" if it cannot be read
func describeSource(path string) string {
	info, err := audio.DescribeWAV(path)
	if err != nil {
		log.Printf("No WAV description for %s: %v", path, err)
		return ""
	}
	return info.String()
}

// onSelectOutput sets the output directory
func (ui *RootUI) onSelectOutput() {
	ui.picker.PickFolder(ui.localization.GetText(KeyChooseOutput), func(dir string, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if dir == "" {
			return
		}
		if !platform.DirExists(dir) {
			dialog.ShowError(fmt.Errorf("%s: %s", ui.localization.GetText(KeyErrorOutputFolderMissing), dir), ui.window)
			return
		}

		ui.state.SetOutputDir(dir)
		ui.refreshOutput()
		ui.logView.Append(fmt.Sprintf(ui.localization.GetText(KeyLogOutputSet), dir))
	})
}

// onClearOutput unsets the output directory
func (ui *RootUI) onClearOutput() {
	if ui.state.OutputDir() == "" {
		return
	}
	ui.state.ClearOutputDir()
	ui.refreshOutput()
	ui.logView.Append(ui.localization.GetText(KeyLogOutputCleared))
}

// refreshOutput shows the output directory or the beside-source hint
func (ui *RootUI) refreshOutput() {
	dir := ui.state.OutputDir()
	if dir == "" {
		ui.outputLabel.SetText(ui.localization.GetText(KeyBesideSource))
		ui.clearOutputBtn.Disable()
		return
	}
	ui.outputLabel.SetText(dir)
	ui.clearOutputBtn.Enable()
}

// qualityOptions lists the VBR qualities, best first. The labels match the
// text form of the bound quality.
func qualityOptions() []string {
	options := make([]string, 0, config.MaxQuality-config.MinQuality+1)
	for q := config.MinQuality; q <= config.MaxQuality; q++ {
		options = append(options, strconv.Itoa(q))
	}
	return options
}

// onConvertClick starts a batch on a worker goroutine
func (ui *RootUI) onConvertClick() {
	batch, err := ui.converter.Begin(ui.ctx)
	if err != nil {
		// The driver already reported a notice
		log.Printf("Conversion not started: %v", err)
		return
	}

	ui.workers.Add(1)
	go func() {
		defer ui.workers.Done()
		ui.converter.Process(ui.ctx, batch)
	}()
}

// onConverterEvent renders a driver event on the UI thread
func (ui *RootUI) onConverterEvent(event model.Event) {
	fyne.Do(func() {
		ui.renderEvent(event)
	})
}

// renderEvent turns an event into a log line or a notice
func (ui *RootUI) renderEvent(event model.Event) {
	l := ui.localization
	switch event.Kind {
	case model.EventNotice:
		ui.showNotice(event.Notice, event.Err)
	case model.EventBatchStarted:
		ui.logView.Append(fmt.Sprintf(l.GetText(KeyLogStarted), len(event.Batch.Jobs)))
	case model.EventJobFinished:
		ui.logView.Append(ui.formatJobLine(event))
	case model.EventBatchFinished:
		s := event.Summary
		ui.logView.Append(fmt.Sprintf(l.GetText(KeyLogFinished), s.Succeeded, s.Failed, model.FormatDuration(s.Elapsed)))
		ui.statusLabel.SetText(l.GetText(KeyStatusFinished))
	}
}

// formatJobLine renders the outcome line of one job
func (ui *RootUI) formatJobLine(event model.Event) string {
	job := event.Job
	if event.Err != nil {
		return fmt.Sprintf(ui.localization.GetText(KeyLogJobError), job.SourceName(), event.Err.Error())
	}

	line := fmt.Sprintf(ui.localization.GetText(KeyLogJobOK), job.SourceName(), job.DestinationName())
	if job.OutputFormat != "" {
		line += MiddleDotSeparator + job.OutputFormat
	}
	return line
}

// showNotice shows a modal notice for conditions that stop an action
func (ui *RootUI) showNotice(kind model.NoticeKind, err error) {
	l := ui.localization
	switch kind {
	case model.NoticeNoFiles:
		dialog.ShowInformation(l.GetText(KeyNoticeNoFilesTitle), l.GetText(KeyNoticeNoFiles), ui.window)
	case model.NoticeBusy:
		dialog.ShowInformation(l.GetText(KeyNoticeBusyTitle), l.GetText(KeyNoticeBusy), ui.window)
	case model.NoticeNoValidFiles:
		dialog.ShowInformation(l.GetText(KeyNoticeNoValidFilesTitle), l.GetText(KeyNoticeNoValidFiles), ui.window)
	case model.NoticeEncoderMissing:
		msg := fmt.Sprintf(l.GetText(KeyNoticeEncoder), ui.settings.GetEncoderCommand())
		dialog.ShowInformation(l.GetText(KeyNoticeEncoderTitle), msg, ui.window)
		if err != nil {
			log.Printf("%s: %v", l.GetText(KeyNoticeEncoderTitle), err)
		}
	}
}

// onBusyChange enables or disables the convert trigger
func (ui *RootUI) onBusyChange(busy bool) {
	fyne.Do(func() {
		if busy {
			ui.convertBtn.Disable()
			ui.qualitySelect.Disable()
			ui.statusLabel.SetText(ui.localization.GetText(KeyStatusConverting))
			return
		}
		ui.convertBtn.Enable()
		ui.qualitySelect.Enable()
	})
}

// Wait blocks until the running batch, if any, has finished
func (ui *RootUI) Wait() {
	ui.workers.Wait()
}
