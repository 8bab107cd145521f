package assetstore

import (
	"net/url"
	"path"
	"regexp"
	"strings"
)

const maxPublicIDLen = 50

var (
	unsafeChars    = regexp.MustCompile(`[^a-zA-Z0-9.-]`)
	versionSegment = regexp.MustCompile(`^v\d+$`)
)

// SanitizeFilename derives a storage key from an uploaded filename: unsafe
// characters are replaced with underscores and only the trailing 50 characters
// are kept so the key stays within the store's identifier limits.
func SanitizeFilename(name string) string {
	sanitized := unsafeChars.ReplaceAllString(name, "_")
	if len(sanitized) > maxPublicIDLen {
		sanitized = sanitized[len(sanitized)-maxPublicIDLen:]
	}
	return sanitized
}

// PublicIDFromURL recovers the folder-qualified public ID from a delivery URL.
// Cloudinary URLs look like
//
//	https://res.cloudinary.com/<cloud>/image/upload/v123/skills/go_icon.png
//
// so the ID is everything after the "upload" segment, minus the version
// segment and the file extension: "skills/go_icon".
func PublicIDFromURL(reference string) string {
	u, err := url.Parse(reference)
	if err != nil {
		return ""
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")

	// Keep only the segments after "upload", if present.
	for i, seg := range segments {
		if seg == "upload" {
			segments = segments[i+1:]
			break
		}
	}
	if len(segments) > 0 && versionSegment.MatchString(segments[0]) {
		segments = segments[1:]
	}
	if len(segments) == 0 {
		return ""
	}

	last := segments[len(segments)-1]
	segments[len(segments)-1] = strings.TrimSuffix(last, path.Ext(last))
	return strings.Join(segments, "/")
}
