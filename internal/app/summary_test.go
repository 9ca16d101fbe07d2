package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/media-studio-go/internal/domain"
)

func TestSummarize_Status(t *testing.T) {
	success := domain.Outcome{Reference: "a", LocalPath: "/tmp/video/a.mp4"}
	failure := domain.Outcome{Reference: "b", Err: errors.New("boom")}

	tests := []struct {
		name     string
		outcomes []domain.Outcome
		expected BatchStatus
	}{
		{"all succeeded", []domain.Outcome{success, success, success}, BatchAllSucceeded},
		{"partial", []domain.Outcome{success, failure, success}, BatchPartial},
		{"all failed", []domain.Outcome{failure, failure, failure}, BatchAllFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize(tt.outcomes, len(tt.outcomes), false)
			assert.Equal(t, tt.expected, s.Status)
		})
	}
}

func TestSummarize_GroupsByCategoryDir(t *testing.T) {
	outcomes := []domain.Outcome{
		{Reference: "a", LocalPath: "/base/video/clip.mp4"},
		{Reference: "b", LocalPath: "/base/video/other.mp4"},
		{Reference: "c", LocalPath: "/base/image/photo.png"},
		{Reference: "d", LocalPath: "/base/elsewhere/file.bin"},
	}

	s := Summarize(outcomes, 4, true)

	require.Len(t, s.ByCategory[domain.CategoryVideo], 2)
	require.Len(t, s.ByCategory[domain.CategoryImage], 1)
	// Paths outside category folders fall into the unknown group
	require.Len(t, s.ByCategory[domain.CategoryUnknown], 1)
}

func TestSummarize_FlatListWhenNotOrganized(t *testing.T) {
	outcomes := []domain.Outcome{
		{Reference: "a", LocalPath: "/base/clip.mp4"},
	}

	s := Summarize(outcomes, 1, false)
	assert.Nil(t, s.ByCategory)
	assert.Equal(t, []string{"/base/clip.mp4"}, s.Files)
}

func TestSummary_Render(t *testing.T) {
	base := t.TempDir()
	videoDir := filepath.Join(base, "video")
	require.NoError(t, os.MkdirAll(videoDir, 0755))
	clip := filepath.Join(videoDir, "clip.mp4")
	require.NoError(t, os.WriteFile(clip, []byte("0123456789"), 0644))

	s := Summarize([]domain.Outcome{
		{Reference: "a", LocalPath: clip},
		{Reference: "b", Err: errors.New("boom")},
	}, 2, true)

	out := s.Render()
	assert.Contains(t, out, "Downloaded 1 of 2")
	assert.Contains(t, out, "partial")
	assert.Contains(t, out, "Video:")
	assert.Contains(t, out, "clip.mp4")
	assert.Contains(t, out, "10 B")
}
