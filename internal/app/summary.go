package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/yourusername/media-studio-go/internal/domain"
)

// BatchStatus classifies a batch result
type BatchStatus string

const (
	BatchAllSucceeded BatchStatus = "all succeeded"
	BatchPartial      BatchStatus = "partial"
	BatchAllFailed    BatchStatus = "all failed"
)

// Summary is the renderable report of a download batch
type Summary struct {
	Status     BatchStatus
	Succeeded  int
	Attempted  int
	Organized  bool
	ByCategory map[domain.Category][]string
	Files      []string
}

// Summarize builds the report for a finished batch. When organized is true,
// successful paths are grouped by the category implied by their containing
// directory name.
func Summarize(outcomes []domain.Outcome, attempted int, organized bool) Summary {
	successes := domain.Successes(outcomes)

	s := Summary{
		Succeeded: len(successes),
		Attempted: attempted,
		Organized: organized,
	}

	switch {
	case attempted > 0 && s.Succeeded == attempted:
		s.Status = BatchAllSucceeded
	case s.Succeeded == 0:
		s.Status = BatchAllFailed
	default:
		s.Status = BatchPartial
	}

	if organized {
		s.ByCategory = make(map[domain.Category][]string)
		for _, o := range successes {
			parent := filepath.Base(filepath.Dir(o.LocalPath))
			category := domain.CategoryUnknown
			if domain.ValidCategory(parent) {
				category = domain.Category(parent)
			}
			s.ByCategory[category] = append(s.ByCategory[category], o.LocalPath)
		}
	} else {
		for _, o := range successes {
			s.Files = append(s.Files, o.LocalPath)
		}
	}

	return s
}

// Render formats the summary for terminal output
func (s Summary) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Downloaded %d of %d media file(s) (%s)\n", s.Succeeded, s.Attempted, s.Status)

	if s.Organized {
		for _, c := range domain.Categories {
			paths := s.ByCategory[c]
			if len(paths) == 0 {
				continue
			}
			name := string(c)
			fmt.Fprintf(&b, "\n%s:\n", strings.ToUpper(name[:1])+name[1:])
			for _, p := range paths {
				fmt.Fprintf(&b, "  - %s%s\n", filepath.Base(p), fileSizeSuffix(p))
			}
		}
	} else {
		for _, p := range s.Files {
			fmt.Fprintf(&b, "  - %s%s\n", filepath.Base(p), fileSizeSuffix(p))
		}
	}

	return b.String()
}

func fileSizeSuffix(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return ""
	}
	return fmt.Sprintf(" (%s)", humanize.Bytes(uint64(info.Size())))
}
