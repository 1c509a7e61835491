package audio

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-audio/wav"

	"github.com/ytget/wav2mp3/internal/model"
)

// ErrInvalidWAV is returned when the file does not carry a readable WAV header
var ErrInvalidWAV = errors.New("not a readable WAV file")

// WAVInfo summarises a WAV header for display next to the selected file
type WAVInfo struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Duration   time.Duration
}

// DescribeWAV reads the header of the WAV file at path. It never decodes samples.
func DescribeWAV(path string) (*WAVInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return nil, fmt.Errorf("%s: %w", path, ErrInvalidWAV)
	}

	info := &WAVInfo{
		SampleRate: int(d.SampleRate),
		Channels:   int(d.NumChans),
		BitDepth:   int(d.BitDepth),
	}

	// The duration comes from the size of the PCM chunk
	if err := d.FwdToPCM(); err == nil {
		bytesPerSecond := info.SampleRate * info.Channels * info.BitDepth / 8
		if bytesPerSecond > 0 {
			info.Duration = time.Duration(float64(d.PCMSize) / float64(bytesPerSecond) * float64(time.Second))
		}
	}

	return info, nil
}

// String renders the info as "44.1 kHz · stereo · 16-bit · 03:12"
func (w *WAVInfo) String() string {
	parts := []string{
		formatSampleRate(w.SampleRate),
		formatChannels(w.Channels),
		fmt.Sprintf("%d-bit", w.BitDepth),
	}
	if w.Duration > 0 {
		parts = append(parts, model.FormatDuration(w.Duration))
	}
	return strings.Join(parts, " · ")
}

func formatSampleRate(rate int) string {
	if rate%1000 == 0 {
		return fmt.Sprintf("%d kHz", rate/1000)
	}
	return fmt.Sprintf("%.1f kHz", float64(rate)/1000)
}

func formatChannels(n int) string {
	switch n {
	case 1:
		return "mono"
	case 2:
		return "stereo"
	default:
		return fmt.Sprintf("%d ch", n)
	}
}
