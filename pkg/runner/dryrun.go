package runner

import (
	"fmt"
	"io"
	"os"

	"github.com/releasekit/releasekit/pkg/console"
)

// DryRun logs every command instead of executing it. Both stdout and stderr
// of the pretend invocation are empty, and every call succeeds.
type DryRun struct {
	out io.Writer
}

// NewDryRun returns a Runner that only describes what it would do. Output
// goes to stderr unless redirected with NewDryRunTo.
func NewDryRun() *DryRun {
	return &DryRun{out: os.Stderr}
}

// NewDryRunTo is NewDryRun with an explicit destination, for tests.
func NewDryRunTo(out io.Writer) *DryRun {
	return &DryRun{out: out}
}

func (r *DryRun) Run(cmd Command) error {
	r.log(cmd)
	return nil
}

func (r *DryRun) RunCapture(cmd Command) (string, string, error) {
	r.log(cmd)
	return "", "", nil
}

func (r *DryRun) log(cmd Command) {
	fmt.Fprintf(r.out, "[dry-run] would run: %s\n", console.FormatCommandMessage(cmd.String()))
}
