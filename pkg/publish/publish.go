// Package publish invokes the registry publish tool. The publish tool owns
// the registry protocol; this package only shapes the invocation and
// classifies its failure modes.
package publish

import (
	"fmt"
	"strings"

	"github.com/releasekit/releasekit/pkg/logger"
	"github.com/releasekit/releasekit/pkg/runner"
)

var publishLog = logger.New("publish")

// alreadyPublishedMarker is the stderr fragment registries emit when the
// exact version already exists.
const alreadyPublishedMarker = "previously published"

// AlreadyPublishedError reports that the registry already has this exact
// version. Callers treat it as a skip, not a failure.
type AlreadyPublishedError struct {
	Name    string
	Version string
}

func (e *AlreadyPublishedError) Error() string {
	return fmt.Sprintf("%s@%s was previously published", e.Name, e.Version)
}

// Publisher shapes registry publish invocations.
type Publisher struct {
	run  runner.Runner
	tool string
	dir  string
}

// New returns a Publisher using the given publish tool (yarn, npm, pnpm).
func New(run runner.Runner, tool, dir string) *Publisher {
	return &Publisher{run: run, tool: tool, dir: dir}
}

// Publish pushes the package at the new version to the registry. The publish
// tool is told not to create its own VCS tag, given the explicit new version,
// public access, and the distribution tag when one was resolved.
//
// A rejection whose stderr reports the version as previously published comes
// back as *AlreadyPublishedError; anything else is fatal.
func (p *Publisher) Publish(name, newVersion, distTag string) error {
	args := []string{
		"publish",
		"--no-git-tag-version",
		"--new-version", newVersion,
		"--access", "public",
	}
	if distTag != "" {
		args = append(args, "--tag", distTag)
	}

	publishLog.Printf("Publishing %s@%s (tag=%q)", name, newVersion, distTag)

	_, stderr, err := p.run.RunCapture(runner.Command{Name: p.tool, Args: args, Dir: p.dir})
	if err != nil {
		if strings.Contains(stderr, alreadyPublishedMarker) {
			publishLog.Printf("Registry already has %s@%s", name, newVersion)
			return &AlreadyPublishedError{Name: name, Version: newVersion}
		}
		return fmt.Errorf("publish failed: %w", err)
	}

	publishLog.Printf("Published %s@%s", name, newVersion)
	return nil
}
