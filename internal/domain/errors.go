package domain

import "errors"

// Error kinds for the download pipeline. Wrapped with fmt.Errorf("%w: ...")
// and checked with errors.Is.
var (
	// ErrFilesystem marks directory or file creation failures. Fatal during
	// layout preparation, per-item otherwise.
	ErrFilesystem = errors.New("filesystem error")

	// ErrResolution marks a malformed or rejected storage-reference exchange
	ErrResolution = errors.New("resolution error")

	// ErrFetch marks a network or status failure during download
	ErrFetch = errors.New("fetch error")

	// ErrCleanup marks a remote delete failure. Logged, never propagated.
	ErrCleanup = errors.New("cleanup error")

	// ErrUnknownModel marks a model id missing from the registry
	ErrUnknownModel = errors.New("unknown model")
)
