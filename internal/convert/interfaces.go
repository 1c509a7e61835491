package convert

import (
	"context"

	"github.com/ytget/wav2mp3/internal/model"
)

// Converter defines the interface for the conversion driver.
type Converter interface {
	SetEventCallback(func(model.Event))
	SetBusyCallback(func(busy bool))

	// Begin validates state, checks the encoder and marks the state busy
	Begin(ctx context.Context) (*model.Batch, error)

	// Process runs a batch returned by Begin and releases the busy flag
	Process(ctx context.Context, batch *model.Batch) model.Summary

	// Convert runs Begin and Process synchronously
	Convert(ctx context.Context) (model.Summary, error)
}

// Inspector describes a written output file. It is optional.
type Inspector interface {
	Inspect(path string) (string, error)
}
