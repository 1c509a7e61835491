package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/wav2mp3/internal/config"
	"github.com/ytget/wav2mp3/internal/convert"
	"github.com/ytget/wav2mp3/internal/encoder"
	"github.com/ytget/wav2mp3/internal/model"
)

// stubPicker answers every dialog with fixed paths
type stubPicker struct {
	files  []string
	folder string
}

func (p *stubPicker) PickWAVs(title string, done func([]string, error)) { done(p.files, nil) }
func (p *stubPicker) PickFolder(title string, done func(string, error)) { done(p.folder, nil) }

// stubEncoder writes the destination, failing for sources listed in fail
type stubEncoder struct {
	missing bool
	fail    map[string]bool
	calls   int
	quality int
	command string
}

func (e *stubEncoder) Name() string { return "ffmpeg" }

func (e *stubEncoder) Available(ctx context.Context) error {
	if e.missing {
		return encoder.ErrNotFound
	}
	return nil
}

func (e *stubEncoder) Encode(ctx context.Context, src, dst string) error {
	e.calls++
	if e.fail[src] {
		return errors.New("Invalid data found when processing input")
	}
	return os.WriteFile(dst, []byte("mp3"), 0644)
}

func (e *stubEncoder) SetQuality(q int)         { e.quality = q }
func (e *stubEncoder) SetCommand(command string) { e.command = command }

type fixture struct {
	ui      *RootUI
	window  fyne.Window
	state   *model.State
	enc     *stubEncoder
	picker  *stubPicker
	tempDir string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	test.NewApp()

	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	state := model.NewState()
	enc := &stubEncoder{fail: map[string]bool{}}
	driver := convert.NewDriver(state, enc)
	picker := &stubPicker{}

	ui := NewRootUI(window, config.NewSettings(), state, driver, enc)
	ui.SetPicker(picker)

	return &fixture{ui: ui, window: window, state: state, enc: enc, picker: picker, tempDir: t.TempDir()}
}

func (f *fixture) createWAVs(t *testing.T, names ...string) []string {
	t.Helper()
	var paths []string
	for _, name := range names {
		p := filepath.Join(f.tempDir, name)
		if err := os.WriteFile(p, []byte("RIFF"), 0644); err != nil {
			t.Fatalf("Failed to create %s: %v", p, err)
		}
		paths = append(paths, p)
	}
	return paths
}

func (f *fixture) hasDialog() bool {
	return f.window.Canvas().Overlays().Top() != nil
}

func countPrefix(lines []string, prefix string) int {
	n := 0
	for _, line := range lines {
		if strings.HasPrefix(line, prefix) {
			n++
		}
	}
	return n
}

func TestRootUI_InitialState(t *testing.T) {
	f := newFixture(t)

	if f.ui.fileCountLabel.Text != "No files selected" {
		t.Errorf("Unexpected file count label %q", f.ui.fileCountLabel.Text)
	}
	if f.ui.outputLabel.Text != "MP3 files are saved next to the original" {
		t.Errorf("Unexpected output label %q", f.ui.outputLabel.Text)
	}
	if f.ui.convertBtn.Disabled() {
		t.Error("Convert button should start enabled")
	}
	if !f.ui.clearOutputBtn.Disabled() {
		t.Error("Clear button should be disabled with no output folder")
	}
	if f.ui.qualitySelect.Selected != "2" {
		t.Errorf("Expected default quality 2 selected, got %q", f.ui.qualitySelect.Selected)
	}
}

func TestRootUI_SelectAndAddFiles(t *testing.T) {
	f := newFixture(t)
	paths := f.createWAVs(t, "b.wav", "a.wav", "c.wav")

	// One dialog returns several files, in the order picked
	f.picker.files = paths[:2]
	test.Tap(f.ui.selectBtn)

	selection := f.state.Selection()
	if len(selection) != 2 || selection[0] != paths[0] || selection[1] != paths[1] {
		t.Errorf("Unexpected selection %v", selection)
	}
	if f.ui.fileCountLabel.Text != "2 file(s) selected" {
		t.Errorf("Unexpected file count label %q", f.ui.fileCountLabel.Text)
	}
	if len(f.ui.files) != 2 {
		t.Errorf("Expected 2 rows in the file list, got %d", len(f.ui.files))
	}

	// Adding appends and skips files already selected
	f.picker.files = []string{paths[2], paths[0]}
	test.Tap(f.ui.addBtn)
	if got := f.state.Selection(); len(got) != 3 || got[2] != paths[2] {
		t.Errorf("Expected c.wav appended once, got %v", got)
	}

	// Selecting again overwrites
	f.picker.files = paths[2:]
	test.Tap(f.ui.selectBtn)
	if got := f.state.Selection(); len(got) != 1 || got[0] != paths[2] {
		t.Errorf("Expected selection to be replaced, got %v", got)
	}
}

func TestRootUI_SelectMixedKeepsWAVs(t *testing.T) {
	f := newFixture(t)
	paths := f.createWAVs(t, "a.wav", "b.WAV")

	f.picker.files = []string{paths[0], filepath.Join(f.tempDir, "notes.txt"), paths[1]}
	test.Tap(f.ui.selectBtn)

	if got := f.state.Selection(); len(got) != 2 || got[0] != paths[0] || got[1] != paths[1] {
		t.Errorf("Expected only the WAV files in order, got %v", got)
	}
	if f.hasDialog() {
		t.Error("A selection with WAV files should not show a notice")
	}
}

func TestRootUI_SelectNonWAV(t *testing.T) {
	f := newFixture(t)
	paths := f.createWAVs(t, "a.wav")
	f.state.SetSelection(paths)

	f.picker.files = []string{filepath.Join(f.tempDir, "song.flac")}
	test.Tap(f.ui.selectBtn)

	if got := f.state.Selection(); len(got) != 1 || got[0] != paths[0] {
		t.Errorf("Selection should be unchanged, got %v", got)
	}
	if !f.hasDialog() {
		t.Error("Expected a no-valid-files notice")
	}
}

func TestRootUI_CancelledPickerKeepsState(t *testing.T) {
	f := newFixture(t)
	paths := f.createWAVs(t, "a.wav")
	f.state.SetSelection(paths)

	test.Tap(f.ui.selectBtn)
	test.Tap(f.ui.outputBtn)

	if len(f.state.Selection()) != 1 {
		t.Errorf("Cancel should not change the selection")
	}
	if f.state.OutputDir() != "" {
		t.Errorf("Cancel should not set an output folder")
	}
	if len(f.ui.logView.Lines()) != 0 {
		t.Errorf("Cancel should not log, got %v", f.ui.logView.Lines())
	}
}

func TestRootUI_SelectFolder(t *testing.T) {
	f := newFixture(t)
	f.createWAVs(t, "b.wav", "a.wav")
	if err := os.WriteFile(filepath.Join(f.tempDir, "cover.jpg"), nil, 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	f.picker.folder = f.tempDir
	test.Tap(f.ui.folderBtn)

	selection := f.state.Selection()
	if len(selection) != 2 {
		t.Fatalf("Expected 2 WAV files, got %v", selection)
	}
	if filepath.Base(selection[0]) != "a.wav" || filepath.Base(selection[1]) != "b.wav" {
		t.Errorf("Expected files sorted by name, got %v", selection)
	}
}

func TestRootUI_OutputFolder(t *testing.T) {
	f := newFixture(t)
	outDir := filepath.Join(f.tempDir, "out")
	if err := os.Mkdir(outDir, 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}

	f.picker.folder = outDir
	test.Tap(f.ui.outputBtn)

	if f.state.OutputDir() != outDir {
		t.Errorf("Expected output dir %s, got %s", outDir, f.state.OutputDir())
	}
	if f.ui.outputLabel.Text != outDir {
		t.Errorf("Expected output label %s, got %s", outDir, f.ui.outputLabel.Text)
	}

	test.Tap(f.ui.clearOutputBtn)
	if f.state.OutputDir() != "" {
		t.Errorf("Expected output dir cleared, got %s", f.state.OutputDir())
	}
	if len(f.ui.logView.Lines()) != 2 {
		t.Errorf("Expected set and clear log lines, got %v", f.ui.logView.Lines())
	}
}

func TestRootUI_OutputFolderMissing(t *testing.T) {
	f := newFixture(t)

	f.picker.folder = filepath.Join(f.tempDir, "missing")
	test.Tap(f.ui.outputBtn)

	if f.state.OutputDir() != "" {
		t.Errorf("A missing folder must not be used, got %s", f.state.OutputDir())
	}
	if !f.hasDialog() {
		t.Error("Expected an error dialog")
	}
}

func TestRootUI_ConvertEmptySelection(t *testing.T) {
	f := newFixture(t)

	test.Tap(f.ui.convertBtn)
	f.ui.Wait()

	if f.enc.calls != 0 {
		t.Errorf("Expected zero encoder invocations, got %d", f.enc.calls)
	}
	if !f.hasDialog() {
		t.Error("Expected a no-files notice")
	}
	if len(f.ui.logView.Lines()) != 0 {
		t.Errorf("Log should be unchanged, got %v", f.ui.logView.Lines())
	}
}

func TestRootUI_ConvertEncoderMissing(t *testing.T) {
	f := newFixture(t)
	f.state.SetSelection(f.createWAVs(t, "a.wav"))
	f.enc.missing = true

	test.Tap(f.ui.convertBtn)
	f.ui.Wait()

	if f.enc.calls != 0 {
		t.Errorf("Expected zero encoder invocations, got %d", f.enc.calls)
	}
	if !f.hasDialog() {
		t.Error("Expected an encoder-not-found notice")
	}
	if len(f.ui.logView.Lines()) != 0 {
		t.Errorf("Log should be unchanged, got %v", f.ui.logView.Lines())
	}
	if f.ui.convertBtn.Disabled() || f.state.Busy() {
		t.Error("Trigger should stay enabled and state idle")
	}
}

func TestRootUI_ConvertBatch(t *testing.T) {
	f := newFixture(t)
	paths := f.createWAVs(t, "a.wav", "b.wav", "c.wav")
	f.state.SetSelection(paths)
	f.enc.fail[paths[1]] = true

	test.Tap(f.ui.convertBtn)
	f.ui.Wait()

	lines := f.ui.logView.Lines()
	if countPrefix(lines, "Starting conversion") != 1 {
		t.Errorf("Expected one start line, got %v", lines)
	}
	if countPrefix(lines, "OK: ") != 2 || countPrefix(lines, "ERROR: ") != 1 {
		t.Errorf("Expected 2 OK and 1 ERROR lines, got %v", lines)
	}
	if countPrefix(lines, "Process completed") != 1 || lines[len(lines)-1] != "Process completed: 2 converted, 1 failed (00:00)." {
		t.Errorf("Expected the summary last, got %v", lines)
	}
	if lines[1] != "OK: a.wav → a.mp3" || !strings.HasPrefix(lines[2], "ERROR: b.wav") || lines[3] != "OK: c.wav → c.mp3" {
		t.Errorf("Outcome lines out of order: %v", lines)
	}

	for _, name := range []string{"a.mp3", "c.mp3"} {
		if _, err := os.Stat(filepath.Join(f.tempDir, name)); err != nil {
			t.Errorf("Expected %s beside its source: %v", name, err)
		}
	}

	if f.ui.convertBtn.Disabled() {
		t.Error("Convert button should be re-enabled after the batch")
	}
	if f.state.Busy() {
		t.Error("Busy flag should end false")
	}
	if f.ui.statusLabel.Text != "Conversion finished" {
		t.Errorf("Unexpected status %q", f.ui.statusLabel.Text)
	}
}

func TestRootUI_QualityChange(t *testing.T) {
	f := newFixture(t)

	f.ui.qualitySelect.SetSelected("0")
	if f.ui.settings.GetQuality() != 0 {
		t.Errorf("Expected settings quality 0, got %d", f.ui.settings.GetQuality())
	}
	if f.enc.quality != 0 {
		t.Errorf("Expected encoder quality 0, got %d", f.enc.quality)
	}

	f.ui.qualitySelect.SetSelected("7")
	if f.enc.quality != 7 {
		t.Errorf("Expected encoder quality 7, got %d", f.enc.quality)
	}
}

func TestRootUI_QualitySelectFollowsSettings(t *testing.T) {
	f := newFixture(t)

	f.ui.settings.SetQuality(8)
	if f.ui.qualitySelect.Selected != "8" {
		t.Errorf("Expected quality select 8, got %q", f.ui.qualitySelect.Selected)
	}
	if f.enc.quality != 8 {
		t.Errorf("Expected encoder quality 8, got %d", f.enc.quality)
	}
}

func TestRootUI_LanguageChange(t *testing.T) {
	f := newFixture(t)

	f.ui.onLanguageChange("es")

	if f.ui.convertBtn.Text != "Convertir a MP3" {
		t.Errorf("Expected Spanish convert label, got %q", f.ui.convertBtn.Text)
	}
	if f.ui.fileCountLabel.Text != "Ningún archivo seleccionado" {
		t.Errorf("Expected Spanish file count label, got %q", f.ui.fileCountLabel.Text)
	}
	if f.ui.settings.GetLanguage() != "es" {
		t.Errorf("Expected settings language 'es', got %s", f.ui.settings.GetLanguage())
	}
}

func TestQualityOptions(t *testing.T) {
	options := qualityOptions()
	if len(options) != 10 {
		t.Fatalf("Expected 10 options, got %d", len(options))
	}
	if options[0] != "0" || options[9] != "9" {
		t.Errorf("Unexpected options %v", options)
	}
}

func TestRootUI_WindowTitle(t *testing.T) {
	f := newFixture(t)

	if f.window.Title() != "2MP3 - WAV to MP3 converter" {
		t.Errorf("Unexpected title %q", f.window.Title())
	}

	f.ui.SetVersion("1.2.0")
	if f.window.Title() != "2MP3 - WAV to MP3 converter v1.2.0" {
		t.Errorf("Unexpected title %q", f.window.Title())
	}

	f.ui.onLanguageChange("es")
	if f.window.Title() != "2MP3 - Convertidor WAV a MP3 v1.2.0" {
		t.Errorf("Unexpected title %q", f.window.Title())
	}
}

func TestRootUI_SettingsFollowBindings(t *testing.T) {
	f := newFixture(t)

	f.ui.settings.SetEncoderCommand("/usr/local/bin/ffmpeg")
	f.ui.settings.SetQuality(5)
	f.ui.settings.SetLanguage("es")
	f.ui.onSettingsSaved()

	if f.enc.command != "/usr/local/bin/ffmpeg" {
		t.Errorf("Expected encoder command to be applied, got %q", f.enc.command)
	}
	if f.enc.quality != 5 {
		t.Errorf("Expected encoder quality 5, got %d", f.enc.quality)
	}
	if f.ui.qualitySelect.Selected != "5" {
		t.Errorf("Expected quality select 5, got %q", f.ui.qualitySelect.Selected)
	}
	if f.ui.convertBtn.Text != "Convertir a MP3" {
		t.Errorf("Expected Spanish labels, got %q", f.ui.convertBtn.Text)
	}

	lines := f.ui.logView.Lines()
	if len(lines) != 1 || !strings.Contains(lines[0], "/usr/local/bin/ffmpeg") {
		t.Errorf("Expected one settings log line, got %v", lines)
	}
}

func TestRootUI_SettingsBlockedWhileBusy(t *testing.T) {
	f := newFixture(t)
	if !f.state.TryAcquire() {
		t.Fatal("Expected to acquire the idle state")
	}
	defer f.state.Release()

	f.ui.onShowSettings()

	if !f.hasDialog() {
		t.Error("Expected a busy notice")
	}
}
