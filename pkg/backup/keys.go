package backup

import (
	"path/filepath"
	"strings"
)

const (
	// homeToken substitutes the home-directory prefix in stable keys, so
	// keys stay valid if the backup tree is inspected on another machine.
	homeToken = "HOME"

	// keySeparator replaces path separators in stable keys. Multi-character
	// and not expected in a path segment, which keeps keys collision
	// resistant and still readable for debugging.
	keySeparator = "%%"
)

// StableKey derives the current-generation backup key for a destination:
// the home prefix becomes the HOME token, then every path separator
// becomes the key separator.
func StableKey(home, destination string) string {
	p := destination
	if home != "" {
		if p == home {
			p = homeToken
		} else if strings.HasPrefix(p, home+string(filepath.Separator)) {
			p = homeToken + p[len(home):]
		}
	}
	return strings.ReplaceAll(p, string(filepath.Separator), keySeparator)
}

// LegacyKey derives the basename-only key used by the first generation
// of this tool. Kept so old backups stay restorable; never used for new
// records.
func LegacyKey(destination string) string {
	return filepath.Base(destination)
}

// Keys returns the ordered key candidates for a destination, newest
// scheme first. Restore walks this list and takes the first hit.
func Keys(home, destination string) []string {
	return []string{
		StableKey(home, destination),
		LegacyKey(destination),
	}
}
