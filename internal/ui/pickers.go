package ui

import (
	"errors"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/ncruces/zenity"
	nativedialog "github.com/sqweek/dialog"
)

// Picker opens the file and folder choosers. Callbacks receive no paths
// (or "") when the user cancelled.
type Picker interface {
	PickWAVs(title string, done func(paths []string, err error))
	PickFolder(title string, done func(path string, err error))
}

// NativePicker uses the operating system dialogs and falls back to the Fyne
// dialogs when no native dialog can be shown.
type NativePicker struct {
	fallback Picker
}

// NewNativePicker creates a native picker with a Fyne fallback bound to window
func NewNativePicker(window fyne.Window) *NativePicker {
	return &NativePicker{fallback: NewFynePicker(window)}
}

// PickWAVs opens a native multi-select file dialog filtered to WAV
func (p *NativePicker) PickWAVs(title string, done func([]string, error)) {
	paths, err := zenity.SelectFileMultiple(
		zenity.Title(title),
		zenity.FileFilter{Name: NativeWAVFilterLabel, Patterns: NativeWAVPatterns},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		done(nil, nil)
		return
	}
	if err != nil {
		log.Printf("Native file dialog unavailable, using built-in dialog: %v", err)
		p.fallback.PickWAVs(title, done)
		return
	}
	done(paths, nil)
}

// PickFolder opens a native folder dialog
func (p *NativePicker) PickFolder(title string, done func(string, error)) {
	path, err := nativedialog.Directory().Title(title).Browse()
	if errors.Is(err, nativedialog.ErrCancelled) {
		done("", nil)
		return
	}
	if err != nil {
		log.Printf("Native folder dialog unavailable, using built-in dialog: %v", err)
		p.fallback.PickFolder(title, done)
		return
	}
	done(path, nil)
}

// FynePicker uses the dialogs drawn by Fyne inside the window. Fyne dialogs
// carry their own titles, so the title argument is unused. The Fyne file
// dialog picks one file at a time.
type FynePicker struct {
	window fyne.Window
}

// NewFynePicker creates a picker drawing its dialogs over window
func NewFynePicker(window fyne.Window) *FynePicker {
	return &FynePicker{window: window}
}

// PickWAVs shows the Fyne file dialog restricted to WAV files
func (p *FynePicker) PickWAVs(title string, done func([]string, error)) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			done(nil, err)
			return
		}
		if reader == nil {
			done(nil, nil)
			return
		}
		defer reader.Close()
		done([]string{reader.URI().Path()}, nil)
	}, p.window)
	fd.SetFilter(storage.NewExtensionFileFilter(WAVDialogExtensions))
	fd.Show()
}

// PickFolder shows the Fyne folder dialog
func (p *FynePicker) PickFolder(title string, done func(string, error)) {
	fd := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			done("", err)
			return
		}
		if uri == nil {
			done("", nil)
			return
		}
		done(uri.Path(), nil)
	}, p.window)
	fd.Show()
}
