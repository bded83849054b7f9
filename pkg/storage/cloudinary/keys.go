package cloudinary

import (
	"net/url"
	"path"
	"regexp"
	"strings"
)

// uploadPathMarker separates the routing prefix of a delivery URL from the
// versioned public ID that follows it.
const uploadPathMarker = "/upload/"

// versionSegmentRegexp matches the optional v<digits> path component the
// service inserts between the upload marker and the public ID.
var versionSegmentRegexp = regexp.MustCompile(`^v\d+/`)

// publicIDFromIdentifier derives the namespace-relative public ID from
// either identifier form the platform passes in: the canonical URL a
// previous upload returned, or the original bare filename. No lookup table
// is kept; the key is recomputed on every call.
func (s *Storage) publicIDFromIdentifier(identifier string) string {
	if !strings.Contains(identifier, "://") {
		return s.keyForName(identifier)
	}

	if u, err := url.Parse(identifier); err == nil {
		if idx := strings.Index(u.Path, uploadPathMarker); idx >= 0 {
			rest := strings.TrimPrefix(u.Path[idx+len(uploadPathMarker):], "/")
			rest = versionSegmentRegexp.ReplaceAllString(rest, "")
			// The upload embedded the folder in the public ID, so the
			// remainder is already namespace-qualified.
			if rest != "" {
				return stripExtension(rest)
			}
		}
	}

	// Lossy degrade for URL shapes we do not recognize: use the raw
	// identifier minus extension. At worst this yields a spurious
	// not-found, never a wrong object.
	return stripExtension(identifier)
}

// keyForName builds the public ID for an upload-time filename:
// {folder}/{base name without extension}.
func (s *Storage) keyForName(name string) string {
	base := stripExtension(path.Base(name))
	if s.folder == "" {
		return base
	}
	return s.folder + "/" + base
}

func stripExtension(name string) string {
	if ext := path.Ext(name); ext != "" {
		return strings.TrimSuffix(name, ext)
	}
	return name
}

var imageExtensions = map[string]struct{}{
	"jpg": {}, "jpeg": {}, "png": {}, "gif": {}, "webp": {}, "svg": {},
	"bmp": {}, "tif": {}, "tiff": {}, "ico": {}, "heic": {}, "heif": {},
	"avif": {},
}

var videoExtensions = map[string]struct{}{
	"mp4": {}, "mov": {}, "mpeg": {}, "mpg": {}, "webm": {}, "avi": {},
	"mkv": {}, "m4v": {}, "ogv": {}, "3gp": {},
}

// resourceTypeForName classifies an identifier by its file extension,
// case-insensitively. Upload relies on the service's auto detection, but the
// metadata and destroy endpoints require an explicit resource type.
func resourceTypeForName(identifier string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(identifier), "."))
	if _, ok := imageExtensions[ext]; ok {
		return "image"
	}
	if _, ok := videoExtensions[ext]; ok {
		return "video"
	}
	return "raw"
}
