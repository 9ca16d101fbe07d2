package domain

import "strings"

// Category is the coarse media kind derived from a file extension
type Category string

const (
	CategoryVideo   Category = "video"
	CategoryImage   Category = "image"
	CategoryAudio   Category = "audio"
	CategoryUnknown Category = "unknown"
)

// Categories lists every category in the order destination folders are created
var Categories = []Category{CategoryVideo, CategoryImage, CategoryAudio, CategoryUnknown}

// extensionCategories maps lowercase file extensions (with leading dot) to
// their category. Built once at init, never mutated at runtime.
var extensionCategories = map[string]Category{
	// video
	".mp4": CategoryVideo, ".avi": CategoryVideo, ".mov": CategoryVideo,
	".mkv": CategoryVideo, ".wmv": CategoryVideo, ".flv": CategoryVideo,
	".webm": CategoryVideo, ".m4v": CategoryVideo, ".3gp": CategoryVideo,
	// image
	".jpg": CategoryImage, ".jpeg": CategoryImage, ".png": CategoryImage,
	".gif": CategoryImage, ".bmp": CategoryImage, ".tiff": CategoryImage,
	".svg": CategoryImage, ".webp": CategoryImage, ".ico": CategoryImage,
	// audio
	".mp3": CategoryAudio, ".wav": CategoryAudio, ".flac": CategoryAudio,
	".aac": CategoryAudio, ".ogg": CategoryAudio, ".wma": CategoryAudio,
	".m4a": CategoryAudio, ".opus": CategoryAudio,
}

// Classify returns the category for a file extension (including the leading
// dot). Extensions outside the table classify as unknown; this is an expected
// result, not an error.
func Classify(ext string) Category {
	if c, ok := extensionCategories[strings.ToLower(ext)]; ok {
		return c
	}
	return CategoryUnknown
}

// ValidCategory checks if a string names a known category
func ValidCategory(s string) bool {
	switch Category(s) {
	case CategoryVideo, CategoryImage, CategoryAudio, CategoryUnknown:
		return true
	}
	return false
}
