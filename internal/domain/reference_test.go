package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaReference_IsStorageURI(t *testing.T) {
	assert.True(t, MediaReference("gs://bucket/path/clip.mp4").IsStorageURI())
	assert.False(t, MediaReference("https://example.com/clip.mp4").IsStorageURI())
	assert.False(t, MediaReference("").IsStorageURI())
}

func TestMediaReference_SplitStorageURI(t *testing.T) {
	bucket, object, err := MediaReference("gs://my-bucket/videos/clip.mp4").SplitStorageURI()
	require.NoError(t, err)
	assert.Equal(t, "my-bucket", bucket)
	assert.Equal(t, "videos/clip.mp4", object)
}

func TestMediaReference_SplitStorageURI_Malformed(t *testing.T) {
	tests := []string{
		"gs://bucket-only",
		"gs://",
		"gs:///object",
		"https://example.com/clip.mp4",
	}

	for _, uri := range tests {
		t.Run(uri, func(t *testing.T) {
			_, _, err := MediaReference(uri).SplitStorageURI()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrResolution))
		})
	}
}

func TestMediaReference_Filename(t *testing.T) {
	tests := []struct {
		name     string
		ref      MediaReference
		index    int
		expected string
	}{
		{"storage uri", "gs://bucket/videos/clip.mp4", 1, "clip.mp4"},
		{"nested storage uri", "gs://bucket/a/b/c/shot.webm", 2, "shot.webm"},
		{"plain url", "https://example.com/media/photo.png", 1, "photo.png"},
		{"url with query", "https://example.com/media/photo.png?sig=abc", 1, "photo.png"},
		{"url without path", "https://example.com", 3, "media_3"},
		{"bare bucket uri", "gs://bucket-only", 7, "media_7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.ref.Filename(tt.index))
		})
	}
}

func TestOutcome_Succeeded(t *testing.T) {
	ok := Outcome{Reference: "gs://b/o.mp4", LocalPath: "/tmp/o.mp4"}
	assert.True(t, ok.Succeeded())

	failed := Outcome{Reference: "gs://b/o.mp4", Err: errors.New("boom")}
	assert.False(t, failed.Succeeded())
}

func TestSuccesses_PreservesOrder(t *testing.T) {
	outcomes := []Outcome{
		{Reference: "a", LocalPath: "/tmp/a"},
		{Reference: "b", Err: errors.New("failed")},
		{Reference: "c", LocalPath: "/tmp/c"},
	}

	ok := Successes(outcomes)
	require.Len(t, ok, 2)
	assert.Equal(t, MediaReference("a"), ok[0].Reference)
	assert.Equal(t, MediaReference("c"), ok[1].Reference)
}

func TestDestinationLayout_Dir(t *testing.T) {
	layout := DestinationLayout{
		CategoryVideo:   "/base/video",
		CategoryUnknown: "/base/unknown",
	}

	assert.Equal(t, "/base/video", layout.Dir(CategoryVideo))
	assert.Equal(t, "/base/unknown", layout.Dir(CategoryAudio))
}
