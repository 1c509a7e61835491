package model

import "sync"

// State is the in-memory application state behind the main window. Actions
// mutate it on the UI thread; the batch worker only reads the busy flag and
// releases it when the batch ends.
type State struct {
	mu        sync.RWMutex
	selection []string
	outputDir string
	busy      bool
}

// NewState creates an empty, idle state
func NewState() *State {
	return &State{}
}

// SetSelection overwrites the selected source paths
func (s *State) SetSelection(paths []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = append([]string(nil), paths...)
}

// Selection returns a copy of the selected source paths in selection order
func (s *State) Selection() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.selection...)
}

// SetOutputDir sets the output directory; an empty dir clears it
func (s *State) SetOutputDir(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outputDir = dir
}

// ClearOutputDir falls back to placing each destination beside its source
func (s *State) ClearOutputDir() {
	s.SetOutputDir("")
}

// OutputDir returns the output directory, or "" when unset
func (s *State) OutputDir() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.outputDir
}

// Busy reports whether a batch is in progress
func (s *State) Busy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.busy
}

// TryAcquire moves the state from idle to busy. It returns false if a batch
// is already in progress.
func (s *State) TryAcquire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return false
	}
	s.busy = true
	return true
}

// Release returns the state to idle
func (s *State) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
}
