package model

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDestinationPath(t *testing.T) {
	tests := []struct {
		source    string
		outputDir string
		expected  string
	}{
		{"/music/a.wav", "", "/music/a.mp3"},
		{"/music/b.WAV", "", "/music/b.mp3"},
		{"/music/live.set.wav", "", "/music/live.set.mp3"},
		{"/music/a.wav", "/out", "/out/a.mp3"},
		{"/elsewhere/deep/c.wav", "/out", "/out/c.mp3"},
		{"/music/noext", "", "/music/noext.mp3"},
	}

	for _, test := range tests {
		source := filepath.FromSlash(test.source)
		outputDir := filepath.FromSlash(test.outputDir)
		expected := filepath.FromSlash(test.expected)

		result := DestinationPath(source, outputDir)
		if result != expected {
			t.Errorf("DestinationPath(%s, %q) = %s, expected %s", source, outputDir, result, expected)
		}
	}
}

func TestNewBatch_PreservesOrder(t *testing.T) {
	sources := []string{
		filepath.FromSlash("/x/b.wav"),
		filepath.FromSlash("/y/a.wav"),
		filepath.FromSlash("/z/c.wav"),
	}
	batch := NewBatch(sources, "")

	if len(batch.Jobs) != len(sources) {
		t.Fatalf("Expected %d jobs, got %d", len(sources), len(batch.Jobs))
	}

	for i, job := range batch.Jobs {
		if job.SourcePath != sources[i] {
			t.Errorf("Job %d: expected source %s, got %s", i, sources[i], job.SourcePath)
		}
		if filepath.Dir(job.DestinationPath) != filepath.Dir(sources[i]) {
			t.Errorf("Job %d: expected destination beside source, got %s", i, job.DestinationPath)
		}
		if filepath.Ext(job.DestinationPath) != MP3Extension {
			t.Errorf("Job %d: expected .mp3 destination, got %s", i, job.DestinationPath)
		}
		if job.Status != JobStatusPending {
			t.Errorf("Job %d: expected Pending status, got %s", i, job.Status)
		}
	}

	if !strings.HasPrefix(batch.ID, BatchIDPrefix) {
		t.Errorf("Expected batch ID to start with %q, got %s", BatchIDPrefix, batch.ID)
	}
}

func TestNewJob_UniqueIDs(t *testing.T) {
	j1 := NewJob("a.wav", "")
	j2 := NewJob("a.wav", "")

	if j1.ID == j2.ID {
		t.Error("Expected different job IDs")
	}
	if !strings.HasPrefix(j1.ID, JobIDPrefix) {
		t.Errorf("Expected ID to start with %q, got: %s", JobIDPrefix, j1.ID)
	}
	// job- + 36 chars for UUID
	if len(j1.ID) != len(JobIDPrefix)+36 {
		t.Errorf("Expected ID length %d, got %d for ID: %s", len(JobIDPrefix)+36, len(j1.ID), j1.ID)
	}
}

func TestBatch_Summarize(t *testing.T) {
	batch := NewBatch([]string{"a.wav", "b.wav", "c.wav"}, "")
	batch.Jobs[0].Status = JobStatusCompleted
	batch.Jobs[1].Status = JobStatusError
	batch.Jobs[2].Status = JobStatusCompleted

	summary := batch.Summarize()
	if summary.Total != 3 || summary.Succeeded != 2 || summary.Failed != 1 {
		t.Errorf("Unexpected summary: %+v", summary)
	}
	if summary.BatchID != batch.ID {
		t.Errorf("Expected summary batch ID %s, got %s", batch.ID, summary.BatchID)
	}
}

func TestConversionJob_Names(t *testing.T) {
	job := NewJob(filepath.FromSlash("/music/track one.wav"), filepath.FromSlash("/out"))

	if job.SourceName() != "track one.wav" {
		t.Errorf("Expected source name 'track one.wav', got '%s'", job.SourceName())
	}
	if job.DestinationName() != "track one.mp3" {
		t.Errorf("Expected destination name 'track one.mp3', got '%s'", job.DestinationName())
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{-time.Second, "00:00"},
		{0, "00:00"},
		{300 * time.Millisecond, "00:00"},
		{700 * time.Millisecond, "00:01"},
		{30 * time.Second, "00:30"},
		{90 * time.Second, "01:30"},
		{3600 * time.Second, "01:00:00"},
		{3661 * time.Second, "01:01:01"},
		{7323 * time.Second, "02:02:03"},
	}

	for _, test := range tests {
		result := FormatDuration(test.d)
		if result != test.expected {
			t.Errorf("FormatDuration(%v) = %s, expected %s", test.d, result, test.expected)
		}
	}
}
