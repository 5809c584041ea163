// Package preflight verifies the release environment before any prompt or
// mutation. Checks are independent, so they run concurrently and every
// failure is reported at once instead of one per attempt.
package preflight

import (
	"fmt"
	"os/exec"

	"github.com/sourcegraph/conc/pool"

	"github.com/releasekit/releasekit/pkg/logger"
)

var preflightLog = logger.New("preflight")

// Check is a single environment requirement.
type Check struct {
	Name string
	Run  func() error
}

// BinaryOnPath requires an executable to be resolvable on PATH.
func BinaryOnPath(name string) Check {
	return Check{
		Name: name,
		Run: func() error {
			if _, err := exec.LookPath(name); err != nil {
				return fmt.Errorf("%q not found on PATH", name)
			}
			return nil
		},
	}
}

// Requirement adapts an arbitrary predicate into a Check.
func Requirement(name string, ok func() bool, failure string) Check {
	return Check{
		Name: name,
		Run: func() error {
			if !ok() {
				return fmt.Errorf("%s", failure)
			}
			return nil
		},
	}
}

// Run executes all checks concurrently and returns the combined failures.
func Run(checks ...Check) error {
	p := pool.New().WithErrors()
	for _, check := range checks {
		p.Go(func() error {
			if err := check.Run(); err != nil {
				preflightLog.Printf("Check %q failed: %v", check.Name, err)
				return err
			}
			preflightLog.Printf("Check %q ok", check.Name)
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return fmt.Errorf("environment check failed: %w", err)
	}
	return nil
}
