package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MP3Extension is the extension every destination path is forced to
const MP3Extension = ".mp3"

// ID prefixes
const (
	JobIDPrefix   = "job-"
	BatchIDPrefix = "batch-"
)

// ConversionJob represents the conversion of a single source file
type ConversionJob struct {
	ID              string
	SourcePath      string
	DestinationPath string
	Status          JobStatus
	LastError       string // last error message if any
	OutputFormat    string // format identified in the written file, if any
	StartedAt       time.Time
	FinishedAt      time.Time
}

// Batch is the ordered set of jobs created by one convert action
type Batch struct {
	ID        string
	Jobs      []*ConversionJob
	StartedAt time.Time
}

// Summary aggregates the outcome of a batch
type Summary struct {
	BatchID   string
	Total     int
	Succeeded int
	Failed    int
	Elapsed   time.Duration
}

// NewJob creates a pending job for sourcePath. When outputDir is empty the
// destination is placed beside the source.
func NewJob(sourcePath, outputDir string) *ConversionJob {
	return &ConversionJob{
		ID:              newID(JobIDPrefix),
		SourcePath:      sourcePath,
		DestinationPath: DestinationPath(sourcePath, outputDir),
		Status:          JobStatusPending,
	}
}

// NewBatch creates a batch with one pending job per source, in order
func NewBatch(sources []string, outputDir string) *Batch {
	b := &Batch{
		ID:        newID(BatchIDPrefix),
		Jobs:      make([]*ConversionJob, 0, len(sources)),
		StartedAt: time.Now(),
	}
	for _, src := range sources {
		b.Jobs = append(b.Jobs, NewJob(src, outputDir))
	}
	return b
}

// DestinationPath keeps the base name of sourcePath, forces the extension to
// .mp3 and places the file in outputDir, or beside the source if outputDir is empty.
func DestinationPath(sourcePath, outputDir string) string {
	base := filepath.Base(sourcePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	dir := outputDir
	if dir == "" {
		dir = filepath.Dir(sourcePath)
	}
	return filepath.Join(dir, stem+MP3Extension)
}

// SourceName returns the file name of the source without its directory
func (j *ConversionJob) SourceName() string {
	return filepath.Base(j.SourcePath)
}

// DestinationName returns the file name of the destination without its directory
func (j *ConversionJob) DestinationName() string {
	return filepath.Base(j.DestinationPath)
}

// Succeeded reports whether the job completed without error
func (j *ConversionJob) Succeeded() bool {
	return j.Status == JobStatusCompleted
}

// Summarize counts finished jobs of the batch
func (b *Batch) Summarize() Summary {
	s := Summary{BatchID: b.ID, Total: len(b.Jobs), Elapsed: time.Since(b.StartedAt)}
	for _, job := range b.Jobs {
		switch job.Status {
		case JobStatusCompleted:
			s.Succeeded++
		case JobStatusError:
			s.Failed++
		}
	}
	return s
}

// FormatDuration returns d formatted as hh:mm:ss or mm:ss. Negative durations read 00:00.
func FormatDuration(d time.Duration) string {
	secs := int(d.Round(time.Second).Seconds())
	if secs < 0 {
		secs = 0
	}

	hours := secs / 3600
	minutes := (secs % 3600) / 60
	seconds := secs % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// newID generates a unique ID using UUID v7, which is time ordered
func newID(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf("%s%d", prefix, time.Now().UnixNano())
	}
	return prefix + id.String()
}
