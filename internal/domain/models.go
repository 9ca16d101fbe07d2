package domain

import "strconv"

// DurationRange describes the duration options of a video model
type DurationRange struct {
	Min     int
	Max     int
	Default int
	Options []int
}

// Contains reports whether seconds is one of the allowed durations
func (d DurationRange) Contains(seconds int) bool {
	for _, opt := range d.Options {
		if opt == seconds {
			return true
		}
	}
	return false
}

// VideoCapabilities describes the constraints of a video generation model
type VideoCapabilities struct {
	MaxVideos               int
	Duration                DurationRange
	AspectRatios            []string
	Resolutions             []string
	FrameRates              []int
	SupportsImageToVideo    bool
	SupportsPromptEnhance   bool
	SupportsExtendVideo     bool
}

// ModelConfig is one entry of the static model registry
type ModelConfig struct {
	ID           string
	APIModelName string
	DisplayName  string
	Description  string
	Capabilities VideoCapabilities
}

// videoModels is the immutable model registry, built once at startup.
// Entries mirror the published Veo model constraints.
var videoModels = map[string]ModelConfig{
	"veo2-001": {
		ID:           "veo2-001",
		APIModelName: "veo-2.0-generate-001",
		DisplayName:  "Veo 2.0 Generate 001",
		Description:  "Stable text-to-video generation, supports up to 4 videos",
		Capabilities: VideoCapabilities{
			MaxVideos:             4,
			Duration:              DurationRange{Min: 5, Max: 8, Default: 8, Options: []int{5, 6, 7, 8}},
			AspectRatios:          []string{"16:9", "9:16"},
			Resolutions:           []string{"720p"},
			FrameRates:            []int{24},
			SupportsImageToVideo:  true,
			SupportsPromptEnhance: true,
			SupportsExtendVideo:   true,
		},
	},
	"veo3-001": {
		ID:           "veo3-001",
		APIModelName: "veo-3.0-generate-001",
		DisplayName:  "Veo 3.0 Generate 001",
		Description:  "Stable text-to-video generation, supports up to 4 videos",
		Capabilities: VideoCapabilities{
			MaxVideos:             4,
			Duration:              DurationRange{Min: 8, Max: 8, Default: 8, Options: []int{8}},
			AspectRatios:          []string{"16:9"},
			Resolutions:           []string{"720p", "1080p"},
			FrameRates:            []int{24},
			SupportsPromptEnhance: true,
		},
	},
	"veo3-preview": {
		ID:           "veo3-preview",
		APIModelName: "veo-3.0-generate-preview",
		DisplayName:  "Veo 3.0 Generate Preview",
		Description:  "Latest features with image-to-video support, up to 4 videos",
		Capabilities: VideoCapabilities{
			MaxVideos:             4,
			Duration:              DurationRange{Min: 8, Max: 8, Default: 8, Options: []int{8}},
			AspectRatios:          []string{"16:9"},
			Resolutions:           []string{"720p", "1080p"},
			FrameRates:            []int{24},
			SupportsImageToVideo:  true,
			SupportsPromptEnhance: true,
		},
	},
}

// ModelByID returns the registry entry for a model id
func ModelByID(id string) (ModelConfig, bool) {
	m, ok := videoModels[id]
	return m, ok
}

// VideoModels returns all registered video models keyed by id.
// The returned map is a copy; the registry itself is never exposed.
func VideoModels() map[string]ModelConfig {
	models := make(map[string]ModelConfig, len(videoModels))
	for id, m := range videoModels {
		models[id] = m
	}
	return models
}

// GenerationOptions are the caller-supplied generation parameters before
// validation against a model's capabilities
type GenerationOptions struct {
	NumberOfVideos  int
	DurationSeconds int
	AspectRatio     string
	Resolution      string
	EnhancePrompt   bool
}

// Correction records one option that was clamped to a model's capabilities
type Correction struct {
	Option    string
	Requested string
	Applied   string
}

// ValidateOptions clamps options to the model's capabilities and reports the
// corrections that were applied. Unknown model ids return ErrUnknownModel.
func ValidateOptions(modelID string, opts GenerationOptions) (GenerationOptions, []Correction, error) {
	m, ok := ModelByID(modelID)
	if !ok {
		return opts, nil, ErrUnknownModel
	}

	caps := m.Capabilities
	var corrections []Correction

	if opts.NumberOfVideos < 1 {
		opts.NumberOfVideos = 1
	}
	if opts.NumberOfVideos > caps.MaxVideos {
		corrections = append(corrections, Correction{
			Option:    "videos",
			Requested: strconv.Itoa(opts.NumberOfVideos),
			Applied:   strconv.Itoa(caps.MaxVideos),
		})
		opts.NumberOfVideos = caps.MaxVideos
	}

	if !caps.Duration.Contains(opts.DurationSeconds) {
		corrections = append(corrections, Correction{
			Option:    "duration",
			Requested: strconv.Itoa(opts.DurationSeconds),
			Applied:   strconv.Itoa(caps.Duration.Default),
		})
		opts.DurationSeconds = caps.Duration.Default
	}

	if !contains(caps.AspectRatios, opts.AspectRatio) {
		corrections = append(corrections, Correction{
			Option:    "aspect_ratio",
			Requested: opts.AspectRatio,
			Applied:   caps.AspectRatios[0],
		})
		opts.AspectRatio = caps.AspectRatios[0]
	}

	// CLI accepts "1080", capabilities store "1080p"
	resolution := opts.Resolution
	if resolution != "" && resolution[len(resolution)-1] != 'p' {
		resolution += "p"
	}
	if !contains(caps.Resolutions, resolution) {
		corrections = append(corrections, Correction{
			Option:    "resolution",
			Requested: opts.Resolution,
			Applied:   caps.Resolutions[0],
		})
		resolution = caps.Resolutions[0]
	}
	opts.Resolution = resolution

	return opts, corrections, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

