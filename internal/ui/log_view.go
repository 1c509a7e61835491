package ui

import (
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// LogView is the append-only log pane. Every Append adds one line and scrolls
// to the newest entry. Call it on the UI thread.
type LogView struct {
	mu     sync.Mutex
	lines  []string
	label  *widget.Label
	scroll *container.Scroll
}

// NewLogView creates an empty log pane
func NewLogView() *LogView {
	lv := &LogView{label: widget.NewLabel("")}
	lv.label.Wrapping = fyne.TextWrapWord
	lv.label.TextStyle = fyne.TextStyle{Monospace: true}
	lv.scroll = container.NewVScroll(lv.label)
	lv.scroll.SetMinSize(fyne.NewSize(0, LogMinHeight))
	return lv
}

// Append adds line to the log and scrolls to it
func (lv *LogView) Append(line string) {
	lv.mu.Lock()
	lv.lines = append(lv.lines, line)
	text := strings.Join(lv.lines, "\n")
	lv.mu.Unlock()

	lv.label.SetText(text)
	// Lay the grown label out before measuring the bottom
	lv.scroll.Refresh()
	lv.scroll.ScrollToBottom()
}

// Lines returns a copy of the log lines, oldest first
func (lv *LogView) Lines() []string {
	lv.mu.Lock()
	defer lv.mu.Unlock()
	return append([]string(nil), lv.lines...)
}

// Container returns the scrollable widget to place in a layout
func (lv *LogView) Container() fyne.CanvasObject {
	return lv.scroll
}
