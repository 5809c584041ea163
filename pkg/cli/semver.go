package cli

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// releaseTag renders the git tag for a version, e.g. "1.2.4" -> "v1.2.4".
func releaseTag(version string) string {
	return "v" + version
}

// isSemverShaped checks whether a ref looks like a semantic version, with or
// without the "v" prefix. Used as a cheap sanity filter on operator input
// before the strict validation runs.
func isSemverShaped(ref string) bool {
	if !strings.HasPrefix(ref, "v") {
		ref = "v" + ref
	}
	return semver.IsValid(ref)
}

// validateCustomInput pre-screens a hand-entered version while the prompt is
// still open. Empty input is allowed; it means keep the current version.
func validateCustomInput(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	if !isSemverShaped(input) {
		return fmt.Errorf("%q does not look like a semantic version", input)
	}
	return nil
}
