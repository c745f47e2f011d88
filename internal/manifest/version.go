package manifest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrVersionTooOld is returned when the running CLI is older than a
// manifest's min_version.
var ErrVersionTooOld = errors.New("cli version too old")

// DevVersion is the version string of unreleased builds.
const DevVersion = "dev"

// CheckVersion reports an error when current is older than min. An empty min
// and development builds always pass. A leading "v" is tolerated on both.
func CheckVersion(min, current string) error {
	if min == "" || current == "" || current == DevVersion {
		return nil
	}
	mv, err := parseSemver(min)
	if err != nil {
		return fmt.Errorf("parsing min_version %q: %w", min, err)
	}
	cv, err := parseSemver(current)
	if err != nil {
		return fmt.Errorf("parsing cli version %q: %w", current, err)
	}
	if cv.LessThan(mv) {
		return fmt.Errorf("%w: manifest needs %s, running %s", ErrVersionTooOld, mv, cv)
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
