package encoder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/ytget/wav2mp3/internal/platform"
)

// FFmpeg constants for MP3 encoding
const (
	FFmpegCommand = "ffmpeg"
	AudioCodec    = "libmp3lame"
	VersionFlag   = "-version"
)

// FFmpeg runs ffmpeg as a subprocess
type FFmpeg struct {
	mu      sync.RWMutex
	command string
	quality atomic.Int32
}

// NewFFmpeg creates an encoder for the given executable and VBR quality.
// An empty command falls back to "ffmpeg" on PATH.
func NewFFmpeg(command string, quality int) *FFmpeg {
	f := &FFmpeg{}
	f.SetCommand(command)
	f.SetQuality(quality)
	return f
}

// SetCommand sets the executable used by later calls; empty restores "ffmpeg"
func (f *FFmpeg) SetCommand(command string) {
	if command == "" {
		command = FFmpegCommand
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.command = command
}

// SetQuality sets the LAME VBR quality used by later Encode calls
func (f *FFmpeg) SetQuality(quality int) {
	f.quality.Store(int32(quality))
}

// Quality returns the LAME VBR quality
func (f *FFmpeg) Quality() int {
	return int(f.quality.Load())
}

// Name returns the executable the encoder runs
func (f *FFmpeg) Name() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.command
}

// Available checks that the executable resolves on PATH and answers -version
func (f *FFmpeg) Available(ctx context.Context) error {
	command := f.Name()
	path, err := exec.LookPath(command)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrNotFound, command, err)
	}

	cmd := exec.CommandContext(ctx, path, VersionFlag)
	platform.HideWindow(cmd)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s -version failed: %w", ErrNotFound, command, err)
	}
	return nil
}

// Encode runs the encoder for one file and waits for it to finish
func (f *FFmpeg) Encode(ctx context.Context, src, dst string) error {
	cmd := exec.CommandContext(ctx, f.Name(), f.BuildArgs(src, dst)...)
	platform.HideWindow(cmd)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	encErr := &EncodeError{
		Source:   src,
		ExitCode: -1,
		Stderr:   lastLine(stderr.String()),
		Err:      err,
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		encErr.ExitCode = exitErr.ExitCode()
	}
	return encErr
}

// BuildArgs builds the ffmpeg command arguments
func (f *FFmpeg) BuildArgs(src, dst string) []string {
	return []string{
		"-hide_banner", // No build banner in stderr
		"-nostdin",     // Never wait on the terminal
		"-y",           // Overwrite output file
		"-i", src, // Input file
		"-codec:a", AudioCodec, // MP3 encoder
		"-q:a", strconv.Itoa(f.Quality()), // VBR quality
		dst, // Output file
	}
}

// lastLine returns the last non-empty line of s
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
