package domain

import (
	"context"
	"time"
)

// ObjectStore is the remote storage collaborator. Production uses Google
// Cloud Storage; tests substitute fakes.
type ObjectStore interface {
	// SignedURL exchanges an object reference for a time-limited fetchable URL
	SignedURL(ctx context.Context, bucket, object string, ttl time.Duration) (string, error)

	// Delete removes an object from the store
	Delete(ctx context.Context, bucket, object string) error
}

// Fetcher streams a remote URL to a local file
type Fetcher interface {
	Fetch(ctx context.Context, url, destPath string) error
}

// GenerationRequest describes one video generation call
type GenerationRequest struct {
	Prompt       string
	APIModelName string
	OutputURI    string
	Options      GenerationOptions
}

// Operation is the asynchronous handle returned by the generation service
type Operation struct {
	Name      string
	Done      bool
	MediaURIs []MediaReference
	Err       error
}

// VideoGenerator is the generation collaborator (poll-until-done semantics)
type VideoGenerator interface {
	// Generate submits a generation request and returns its operation handle
	Generate(ctx context.Context, req GenerationRequest) (*Operation, error)

	// Poll refreshes the operation's status
	Poll(ctx context.Context, op *Operation) (*Operation, error)
}

// RunRepository defines the interface for run history persistence
type RunRepository interface {
	Create(run *Run) error
	Update(run *Run) error
	FindByID(id string) (*Run, error)
	FindRecent(limit int) ([]*Run, error)
	Count() (int64, error)
	GetStats() (*RunStats, error)
}
