package convert

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ytget/wav2mp3/internal/encoder"
	"github.com/ytget/wav2mp3/internal/model"
)

// Errors returned by Begin. Each one is also reported as a single notice event.
var (
	ErrNoFiles            = errors.New("no files selected")
	ErrBusy               = errors.New("a conversion is already in progress")
	ErrEncoderUnavailable = errors.New("encoder unavailable")
)

// Driver converts the selected files of a model.State one at a time
type Driver struct {
	state     *model.State
	encoder   encoder.Encoder
	inspector Inspector
	onEvent   func(model.Event)
	onBusy    func(bool)
}

// NewDriver creates a conversion driver for state using enc
func NewDriver(state *model.State, enc encoder.Encoder) *Driver {
	return &Driver{
		state:   state,
		encoder: enc,
	}
}

// SetEventCallback sets the callback that receives every driver event
func (d *Driver) SetEventCallback(callback func(model.Event)) {
	d.onEvent = callback
}

// SetBusyCallback sets the callback invoked when the busy flag changes
func (d *Driver) SetBusyCallback(callback func(bool)) {
	d.onBusy = callback
}

// SetInspector sets the optional output inspector used after successful jobs
func (d *Driver) SetInspector(inspector Inspector) {
	d.inspector = inspector
}

// Begin checks that a batch can start and, if so, marks the state busy and
// returns the batch. On any error no encoder run has happened and the state
// is left idle.
func (d *Driver) Begin(ctx context.Context) (*model.Batch, error) {
	sources := d.state.Selection()
	if len(sources) == 0 {
		d.notice(model.NoticeNoFiles, ErrNoFiles)
		return nil, ErrNoFiles
	}

	if d.state.Busy() {
		d.notice(model.NoticeBusy, ErrBusy)
		return nil, ErrBusy
	}

	// Checked once per batch, not per file
	if err := d.encoder.Available(ctx); err != nil {
		wrapped := fmt.Errorf("%w: %w", ErrEncoderUnavailable, err)
		log.Printf("Encoder %s unavailable: %v", d.encoder.Name(), err)
		d.notice(model.NoticeEncoderMissing, wrapped)
		return nil, wrapped
	}

	if !d.state.TryAcquire() {
		d.notice(model.NoticeBusy, ErrBusy)
		return nil, ErrBusy
	}
	d.notifyBusy(true)

	batch := model.NewBatch(sources, d.state.OutputDir())
	log.Printf("Batch %s started with %d file(s)", batch.ID, len(batch.Jobs))
	d.emit(model.Event{Kind: model.EventBatchStarted, Batch: batch})

	return batch, nil
}

// Process runs every job of batch in order. A failed job never stops the
// batch. The busy flag is released when Process returns.
func (d *Driver) Process(ctx context.Context, batch *model.Batch) model.Summary {
	defer func() {
		d.state.Release()
		d.notifyBusy(false)
	}()

	for _, job := range batch.Jobs {
		err := d.runJob(ctx, job)
		d.emit(model.Event{Kind: model.EventJobFinished, Batch: batch, Job: job, Err: err})
	}

	summary := batch.Summarize()
	log.Printf("Batch %s finished: %d succeeded, %d failed", batch.ID, summary.Succeeded, summary.Failed)
	d.emit(model.Event{Kind: model.EventBatchFinished, Batch: batch, Summary: summary})

	return summary
}

// Convert runs a whole batch synchronously
func (d *Driver) Convert(ctx context.Context) (model.Summary, error) {
	batch, err := d.Begin(ctx)
	if err != nil {
		return model.Summary{}, err
	}
	return d.Process(ctx, batch), nil
}

// runJob converts one file and records the outcome on the job
func (d *Driver) runJob(ctx context.Context, job *model.ConversionJob) error {
	job.Status = model.JobStatusConverting
	job.StartedAt = time.Now()

	err := d.encode(ctx, job)

	job.FinishedAt = time.Now()
	if err != nil {
		job.Status = model.JobStatusError
		job.LastError = err.Error()
		log.Printf("Job %s failed for %s: %v", job.ID, job.SourcePath, err)
		return err
	}

	job.Status = model.JobStatusCompleted
	if d.inspector != nil {
		if desc, err := d.inspector.Inspect(job.DestinationPath); err == nil {
			job.OutputFormat = desc
		} else {
			log.Printf("Could not identify output %s: %v", job.DestinationPath, err)
		}
	}
	return nil
}

// encode invokes the encoder, turning a panic into an ordinary failure
func (d *Driver) encode(ctx context.Context, job *model.ConversionJob) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected error: %v", r)
		}
	}()
	return d.encoder.Encode(ctx, job.SourcePath, job.DestinationPath)
}

func (d *Driver) notice(kind model.NoticeKind, err error) {
	d.emit(model.Event{Kind: model.EventNotice, Notice: kind, Err: err})
}

// emit calls the event callback if set
func (d *Driver) emit(event model.Event) {
	if d.onEvent != nil {
		d.onEvent(event)
	}
}

// notifyBusy calls the busy callback if set
func (d *Driver) notifyBusy(busy bool) {
	if d.onBusy != nil {
		d.onBusy(busy)
	}
}
