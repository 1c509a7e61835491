package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dhowden/tag"
)

func TestIdentifyOutput_ID3v2(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.mp3")

	// ID3v2.4 header followed by an empty tag body
	header := []byte{'I', 'D', '3', 4, 0, 0, 0, 0, 0, 0, 0, 0xFF, 0xFB, 0x90, 0x00}
	if err := os.WriteFile(path, header, 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	info, err := IdentifyOutput(path)
	if err != nil {
		t.Fatalf("IdentifyOutput failed: %v", err)
	}
	if !info.IsMP3() {
		t.Errorf("Expected MP3 file type, got %s", info.FileType)
	}
	if info.Format != tag.ID3v2_4 {
		t.Errorf("Expected format %s, got %s", tag.ID3v2_4, info.Format)
	}
	if info.String() != "MP3 (ID3v2.4)" {
		t.Errorf("Unexpected description %q", info.String())
	}

	desc, err := Inspector{}.Inspect(path)
	if err != nil || desc != info.String() {
		t.Errorf("Inspector returned %q, %v", desc, err)
	}
}

func TestIdentifyOutput_NoTags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.mp3")
	data := make([]byte, 256)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	_, err := IdentifyOutput(path)
	if !errors.Is(err, tag.ErrNoTagsFound) {
		t.Errorf("Expected tag.ErrNoTagsFound, got: %v", err)
	}
}

func TestIdentifyOutput_Missing(t *testing.T) {
	if _, err := IdentifyOutput(filepath.Join(t.TempDir(), "missing.mp3")); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}
