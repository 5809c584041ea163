// Package version computes release version candidates. Incrementing follows
// the conventions JavaScript package tooling uses: the plain kinds drop any
// prerelease suffix, the pre* kinds attach a numbered prerelease using a
// fixed identifier, and "prerelease" bumps the trailing number when the
// identifier already matches.
package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DefaultPrereleaseID is the prerelease identifier used when none is
// configured.
const DefaultPrereleaseID = "beta"

// IncrementKind is one of the standard semantic-version bump categories.
type IncrementKind string

const (
	Patch      IncrementKind = "patch"
	Minor      IncrementKind = "minor"
	Major      IncrementKind = "major"
	Prepatch   IncrementKind = "prepatch"
	Preminor   IncrementKind = "preminor"
	Premajor   IncrementKind = "premajor"
	Prerelease IncrementKind = "prerelease"
)

// IncrementKinds lists every kind in the order operators are offered them.
var IncrementKinds = []IncrementKind{
	Patch, Minor, Major,
	Prepatch, Preminor, Premajor,
	Prerelease,
}

// InvalidVersionError reports a string that is not a valid semantic version.
type InvalidVersionError struct {
	Version string
	Err     error
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid semantic version %q: %v", e.Version, e.Err)
}

func (e *InvalidVersionError) Unwrap() error {
	return e.Err
}

// Validate returns an *InvalidVersionError unless v parses as a strict
// semantic version.
func Validate(v string) error {
	if _, err := semver.StrictNewVersion(v); err != nil {
		return &InvalidVersionError{Version: v, Err: err}
	}
	return nil
}

// Increment computes the candidate version for one bump kind. preID is the
// prerelease identifier attached by the pre* kinds; empty means
// DefaultPrereleaseID.
func Increment(current string, kind IncrementKind, preID string) (string, error) {
	cur, err := semver.StrictNewVersion(current)
	if err != nil {
		return "", &InvalidVersionError{Version: current, Err: err}
	}
	if preID == "" {
		preID = DefaultPrereleaseID
	}

	switch kind {
	case Patch:
		return cur.IncPatch().String(), nil
	case Minor:
		// A prerelease of the next minor finalizes to it instead of
		// skipping ahead.
		if cur.Prerelease() != "" && cur.Patch() == 0 {
			return semver.New(cur.Major(), cur.Minor(), 0, "", "").String(), nil
		}
		return cur.IncMinor().String(), nil
	case Major:
		if cur.Prerelease() != "" && cur.Minor() == 0 && cur.Patch() == 0 {
			return semver.New(cur.Major(), 0, 0, "", "").String(), nil
		}
		return cur.IncMajor().String(), nil
	case Prepatch:
		return semver.New(cur.Major(), cur.Minor(), cur.Patch()+1, preID+".0", "").String(), nil
	case Preminor:
		return semver.New(cur.Major(), cur.Minor()+1, 0, preID+".0", "").String(), nil
	case Premajor:
		return semver.New(cur.Major()+1, 0, 0, preID+".0", "").String(), nil
	case Prerelease:
		return incrementPrerelease(cur, preID), nil
	default:
		return "", fmt.Errorf("unknown increment kind %q", kind)
	}
}

// incrementPrerelease bumps the prerelease counter. A stable version grows a
// fresh prerelease on the next patch; a prerelease with a matching identifier
// and numeric tail counts up; anything else restarts at <preID>.0.
func incrementPrerelease(cur *semver.Version, preID string) string {
	pre := cur.Prerelease()
	if pre == "" {
		return semver.New(cur.Major(), cur.Minor(), cur.Patch()+1, preID+".0", "").String()
	}

	parts := strings.Split(pre, ".")
	if parts[0] == preID && len(parts) == 2 {
		if n, err := strconv.Atoi(parts[1]); err == nil {
			next := fmt.Sprintf("%s.%d", preID, n+1)
			return semver.New(cur.Major(), cur.Minor(), cur.Patch(), next, "").String()
		}
	}
	return semver.New(cur.Major(), cur.Minor(), cur.Patch(), preID+".0", "").String()
}

// Candidate pairs an increment kind with its resolved version string.
type Candidate struct {
	Kind    IncrementKind
	Version string
}

// Candidates resolves every increment kind against the current version, in
// presentation order.
func Candidates(current, preID string) ([]Candidate, error) {
	candidates := make([]Candidate, 0, len(IncrementKinds))
	for _, kind := range IncrementKinds {
		v, err := Increment(current, kind, preID)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, Candidate{Kind: kind, Version: v})
	}
	return candidates, nil
}

// IsGreater reports whether a is a strictly greater semantic version than b.
// Invalid input counts as not greater.
func IsGreater(a, b string) bool {
	va, err := semver.StrictNewVersion(a)
	if err != nil {
		return false
	}
	vb, err := semver.StrictNewVersion(b)
	if err != nil {
		return false
	}
	return va.GreaterThan(vb)
}
