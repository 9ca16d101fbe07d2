package domain

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// StorageScheme is the URI scheme used by the remote object store
const StorageScheme = "gs://"

// MediaReference identifies a remote media object, either a storage URI
// (gs://bucket/path) or a direct URL. Supplied by the caller, never mutated.
type MediaReference string

// IsStorageURI reports whether the reference points into the object store
func (r MediaReference) IsStorageURI() bool {
	return strings.HasPrefix(string(r), StorageScheme)
}

// SplitStorageURI splits a storage URI into bucket and object path.
// Returns an error wrapping ErrResolution when the URI cannot be split.
func (r MediaReference) SplitStorageURI() (bucket, object string, err error) {
	if !r.IsStorageURI() {
		return "", "", fmt.Errorf("%w: not a storage URI: %s", ErrResolution, r)
	}
	rest := strings.TrimPrefix(string(r), StorageScheme)
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: invalid storage URI format: %s", ErrResolution, r)
	}
	return parts[0], parts[1], nil
}

// Filename derives a target filename from the reference. Storage URIs use the
// final object path segment, URLs use the final URL path segment. When neither
// yields a non-empty name, media_{index} is synthesized (index is 1-based).
func (r MediaReference) Filename(index int) string {
	var name string
	if r.IsStorageURI() {
		if _, object, err := r.SplitStorageURI(); err == nil {
			name = path.Base(object)
		}
	} else if u, err := url.Parse(string(r)); err == nil {
		name = path.Base(u.Path)
	}
	if name == "" || name == "." || name == "/" {
		name = fmt.Sprintf("media_%d", index)
	}
	return name
}

// Outcome is the per-reference result of an attempted download. Exactly one
// of LocalPath or Err is set; immutable once recorded.
type Outcome struct {
	Reference MediaReference
	LocalPath string
	Err       error
}

// Succeeded reports whether the download completed and the file was written
func (o Outcome) Succeeded() bool {
	return o.Err == nil && o.LocalPath != ""
}

// Successes filters an outcome list down to successful downloads,
// preserving input order.
func Successes(outcomes []Outcome) []Outcome {
	var ok []Outcome
	for _, o := range outcomes {
		if o.Succeeded() {
			ok = append(ok, o)
		}
	}
	return ok
}

// DestinationLayout maps each category to its absolute destination directory.
// Built once before any fetch begins and read-only afterwards, so it is safe
// to read from concurrent fetches.
type DestinationLayout map[Category]string

// Dir returns the directory for a category, falling back to the unknown
// catch-all for categories outside the layout.
func (l DestinationLayout) Dir(c Category) string {
	if dir, ok := l[c]; ok {
		return dir
	}
	return l[CategoryUnknown]
}
