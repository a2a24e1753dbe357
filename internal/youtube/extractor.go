// Package youtube derives canonical video identifiers from free-form input.
package youtube

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/creativeshelf/creativeshelf/internal/domain"
)

// videoIDPattern matches a canonical YouTube video id: exactly 11
// characters from the URL-safe base64 alphabet.
var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// pathPrefixes are the alternate playback path forms that embed the video
// id as the following path segment.
var pathPrefixes = []string{"embed", "shorts", "v", "live"}

// ExtractVideoID returns the canonical video id contained in input, which
// may be a bare id, a youtu.be short link, a watch?v= URL, or a playback
// path URL. Every form validates the candidate against the canonical
// shape; there is no partial output.
func ExtractVideoID(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", domain.ErrNoVideoID
	}
	if videoIDPattern.MatchString(s) {
		return s, nil
	}

	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", domain.ErrNoVideoID
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	segments := splitPath(u.Path)

	var candidate string
	switch host {
	case "youtu.be":
		if len(segments) > 0 {
			candidate = segments[0]
		}
	case "youtube.com", "m.youtube.com", "music.youtube.com":
		if v := u.Query().Get("v"); v != "" {
			candidate = v
			break
		}
		if len(segments) >= 2 {
			for _, prefix := range pathPrefixes {
				if segments[0] == prefix {
					candidate = segments[1]
					break
				}
			}
		}
	}

	if candidate == "" || !videoIDPattern.MatchString(candidate) {
		return "", domain.ErrNoVideoID
	}
	return candidate, nil
}

func splitPath(p string) []string {
	var segments []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
