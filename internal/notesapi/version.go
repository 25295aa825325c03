package notesapi

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// DevVersion is reported by builds that were not stamped with a release tag.
const DevVersion = "(devel)"

// CheckCompatible reports whether a client at clientVersion can talk to a
// server at serverVersion. Versions are semver tags such as "v1.2.3"; the
// major versions must match. Development builds on either side are always
// accepted.
func CheckCompatible(clientVersion, serverVersion string) error {
	if clientVersion == DevVersion || serverVersion == DevVersion || serverVersion == "" {
		return nil
	}
	cv, sv := canonical(clientVersion), canonical(serverVersion)
	if !semver.IsValid(cv) {
		return fmt.Errorf("invalid client version %q", clientVersion)
	}
	if !semver.IsValid(sv) {
		return fmt.Errorf("invalid server version %q", serverVersion)
	}
	if semver.Major(cv) != semver.Major(sv) {
		return fmt.Errorf("server version %s is not compatible with client %s", sv, cv)
	}
	return nil
}

func canonical(v string) string {
	if v != "" && v[0] != 'v' {
		v = "v" + v
	}
	return semver.Canonical(v)
}
