package prompt

import (
	"strings"
)

// DefaultPathSegments is how many trailing segments survive abbreviation
// when no (or an invalid) count is configured.
const DefaultPathSegments = 2

// AbbreviatePath produces the display form of dir: the home prefix becomes
// "~", and paths deeper than maxSegments keep only the trailing segments
// behind an ellipsis.
func AbbreviatePath(dir, home string, maxSegments int) string {
	if maxSegments <= 0 {
		maxSegments = DefaultPathSegments
	}

	dir = strings.TrimSuffix(dir, "/")
	home = strings.TrimSuffix(home, "/")
	if dir == "" {
		return "/"
	}

	if home != "" && dir == home {
		return "~"
	}

	if home != "" && strings.HasPrefix(dir, home+"/") {
		rest := strings.TrimPrefix(dir, home+"/")
		segments := strings.Split(rest, "/")
		if len(segments) > maxSegments {
			return "~/.../" + strings.Join(segments[len(segments)-maxSegments:], "/")
		}
		return "~/" + rest
	}

	segments := strings.Split(strings.TrimPrefix(dir, "/"), "/")
	if len(segments) > maxSegments {
		return ".../" + strings.Join(segments[len(segments)-maxSegments:], "/")
	}
	return dir
}
