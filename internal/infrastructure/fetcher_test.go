package infrastructure

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/media-studio-go/internal/domain"
	"go.uber.org/zap"
)

func TestHTTPFetcher_StreamsBodyToFile(t *testing.T) {
	// Payload larger than the chunk size to exercise chunked copying
	payload := bytes.Repeat([]byte("abcdefgh"), 4096)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "clip.mp4")
	fetcher := NewHTTPFetcher(server.Client(), 8*1024, zap.NewNop())

	err := fetcher.Fetch(context.Background(), server.URL+"/clip.mp4", dest)
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestHTTPFetcher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "clip.mp4")
	fetcher := NewHTTPFetcher(server.Client(), 0, zap.NewNop())

	err := fetcher.Fetch(context.Background(), server.URL, dest)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetch)
	assert.NoFileExists(t, dest)
}

func TestHTTPFetcher_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	dest := filepath.Join(t.TempDir(), "clip.mp4")
	fetcher := NewHTTPFetcher(nil, 0, zap.NewNop())

	err := fetcher.Fetch(context.Background(), server.URL, dest)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetch)
}

func TestHTTPFetcher_WriteErrorIsFilesystem(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("data"))
	}))
	defer server.Close()

	// Destination directory does not exist
	dest := filepath.Join(t.TempDir(), "missing", "clip.mp4")
	fetcher := NewHTTPFetcher(server.Client(), 0, zap.NewNop())

	err := fetcher.Fetch(context.Background(), server.URL, dest)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFilesystem)
}

func TestHTTPFetcher_RemovesPartialFileOnBodyError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "1048576")
		w.Write([]byte("partial"))
		// Hijack and drop the connection mid-body
		if hj, ok := w.(http.Hijacker); ok {
			conn, _, _ := hj.Hijack()
			conn.Close()
		}
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "clip.mp4")
	fetcher := NewHTTPFetcher(server.Client(), 0, zap.NewNop())

	err := fetcher.Fetch(context.Background(), server.URL, dest)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetch)
	assert.NoFileExists(t, dest)
}
