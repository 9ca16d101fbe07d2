package infrastructure

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/yourusername/media-studio-go/internal/domain"
	"go.uber.org/zap"
)

// DefaultChunkSize is the buffer size used when streaming a response body
// to disk
const DefaultChunkSize = 8 * 1024

// HTTPFetcher implements domain.Fetcher by streaming HTTP responses to disk
// in fixed-size chunks instead of buffering whole payloads in memory.
type HTTPFetcher struct {
	client    *http.Client
	chunkSize int
	logger    *zap.Logger
}

// NewHTTPFetcher creates a new HTTP fetcher. A zero or negative chunkSize
// falls back to DefaultChunkSize.
func NewHTTPFetcher(client *http.Client, chunkSize int, logger *zap.Logger) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &HTTPFetcher{
		client:    client,
		chunkSize: chunkSize,
		logger:    logger,
	}
}

// Fetch downloads url into destPath. Non-2xx statuses, network errors and
// write errors all surface as errors wrapping domain.ErrFetch or
// domain.ErrFilesystem; a partially written file is removed.
func (f *HTTPFetcher) Fetch(ctx context.Context, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrFetch, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: unexpected status %s", domain.ErrFetch, resp.Status)
	}

	file, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrFilesystem, err)
	}

	buf := make([]byte, f.chunkSize)
	written, err := io.CopyBuffer(file, resp.Body, buf)
	if closeErr := file.Close(); err == nil && closeErr != nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(destPath)
		return fmt.Errorf("%w: %v", domain.ErrFetch, err)
	}

	if f.logger != nil {
		f.logger.Debug("Fetched file",
			zap.String("url", url),
			zap.String("path", destPath),
			zap.Int64("bytes", written))
	}

	return nil
}
