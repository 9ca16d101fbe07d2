package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelByID(t *testing.T) {
	m, ok := ModelByID("veo3-001")
	require.True(t, ok)
	assert.Equal(t, "veo-3.0-generate-001", m.APIModelName)
	assert.Equal(t, 4, m.Capabilities.MaxVideos)

	_, ok = ModelByID("veo9-experimental")
	assert.False(t, ok)
}

func TestVideoModels_ReturnsCopy(t *testing.T) {
	models := VideoModels()
	require.Contains(t, models, "veo2-001")

	delete(models, "veo2-001")
	_, ok := ModelByID("veo2-001")
	assert.True(t, ok)
}

func TestValidateOptions_UnknownModel(t *testing.T) {
	_, _, err := ValidateOptions("nope", GenerationOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownModel))
}

func TestValidateOptions_NoCorrections(t *testing.T) {
	opts := GenerationOptions{
		NumberOfVideos:  2,
		DurationSeconds: 8,
		AspectRatio:     "16:9",
		Resolution:      "1080p",
	}

	validated, corrections, err := ValidateOptions("veo3-001", opts)
	require.NoError(t, err)
	assert.Empty(t, corrections)
	assert.Equal(t, opts, validated)
}

func TestValidateOptions_ClampsVideoCount(t *testing.T) {
	opts := GenerationOptions{
		NumberOfVideos:  9,
		DurationSeconds: 8,
		AspectRatio:     "16:9",
		Resolution:      "720p",
	}

	validated, corrections, err := ValidateOptions("veo2-001", opts)
	require.NoError(t, err)
	assert.Equal(t, 4, validated.NumberOfVideos)
	require.Len(t, corrections, 1)
	assert.Equal(t, "videos", corrections[0].Option)
}

func TestValidateOptions_CorrectsDuration(t *testing.T) {
	opts := GenerationOptions{
		NumberOfVideos:  1,
		DurationSeconds: 12,
		AspectRatio:     "16:9",
		Resolution:      "720p",
	}

	validated, corrections, err := ValidateOptions("veo2-001", opts)
	require.NoError(t, err)
	assert.Equal(t, 8, validated.DurationSeconds)
	require.Len(t, corrections, 1)
	assert.Equal(t, "duration", corrections[0].Option)
}

func TestValidateOptions_CorrectsAspectRatio(t *testing.T) {
	// veo3-001 only supports 16:9
	opts := GenerationOptions{
		NumberOfVideos:  1,
		DurationSeconds: 8,
		AspectRatio:     "9:16",
		Resolution:      "1080p",
	}

	validated, corrections, err := ValidateOptions("veo3-001", opts)
	require.NoError(t, err)
	assert.Equal(t, "16:9", validated.AspectRatio)
	require.Len(t, corrections, 1)
	assert.Equal(t, "aspect_ratio", corrections[0].Option)
}

func TestValidateOptions_NormalizesResolutionSuffix(t *testing.T) {
	// CLI passes "1080", capabilities store "1080p"
	opts := GenerationOptions{
		NumberOfVideos:  1,
		DurationSeconds: 8,
		AspectRatio:     "16:9",
		Resolution:      "1080",
	}

	validated, corrections, err := ValidateOptions("veo3-001", opts)
	require.NoError(t, err)
	assert.Empty(t, corrections)
	assert.Equal(t, "1080p", validated.Resolution)
}

func TestValidateOptions_CorrectsUnsupportedResolution(t *testing.T) {
	opts := GenerationOptions{
		NumberOfVideos:  1,
		DurationSeconds: 8,
		AspectRatio:     "16:9",
		Resolution:      "1080p",
	}

	// veo2-001 only supports 720p
	validated, corrections, err := ValidateOptions("veo2-001", opts)
	require.NoError(t, err)
	assert.Equal(t, "720p", validated.Resolution)
	require.Len(t, corrections, 1)
	assert.Equal(t, "resolution", corrections[0].Option)
}

func TestDurationRange_Contains(t *testing.T) {
	d := DurationRange{Min: 5, Max: 8, Default: 8, Options: []int{5, 6, 7, 8}}
	assert.True(t, d.Contains(5))
	assert.True(t, d.Contains(8))
	assert.False(t, d.Contains(4))
	assert.False(t, d.Contains(9))
}
