package encoder

import "context"

// Encoder defines the contract the conversion driver needs from an external tool.
type Encoder interface {
	// Name returns the executable name used in notices and logs
	Name() string

	// Available returns nil if the tool can be invoked
	Available(ctx context.Context) error

	// Encode converts src into dst synchronously
	Encode(ctx context.Context, src, dst string) error
}
