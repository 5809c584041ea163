// Package runner abstracts external process invocation so the release flow
// can swap real execution for a logging stub. The implementation is chosen
// once at startup: Exec for real releases, DryRun when the operator passes
// --dry. Call sites never branch on the mode themselves.
package runner

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/releasekit/releasekit/pkg/logger"
)

var runnerLog = logger.New("runner")

// Command names an external program invocation.
type Command struct {
	Name string
	Args []string
	Dir  string
}

// String renders the command the way an operator would type it.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Runner executes external commands.
//
// Run inherits the parent's stdio, for commands whose output belongs on the
// operator's terminal (builds, changelog generators). RunCapture pipes stdout
// and stderr into buffers, for commands whose output the program inspects
// (diff checks, registry publishes).
type Runner interface {
	Run(cmd Command) error
	RunCapture(cmd Command) (stdout, stderr string, err error)
}

// ExitError reports a command that started but exited non-zero. Stderr holds
// whatever the command wrote there, when it was captured.
type ExitError struct {
	Command Command
	Stderr  string
	Err     error
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("command %q failed: %v", e.Command.String(), e.Err)
	if e.Stderr != "" {
		msg += fmt.Sprintf("\n%s", strings.TrimRight(e.Stderr, "\n"))
	}
	return msg
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code, or -1 when it never ran.
func (e *ExitError) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// Exec runs commands for real.
type Exec struct{}

// NewExec returns a Runner that actually invokes external commands.
func NewExec() *Exec {
	return &Exec{}
}

func (r *Exec) Run(cmd Command) error {
	runnerLog.Printf("Running: %s", cmd.String())

	c := exec.Command(cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	if err := c.Run(); err != nil {
		return &ExitError{Command: cmd, Err: err}
	}
	return nil
}

func (r *Exec) RunCapture(cmd Command) (string, string, error) {
	runnerLog.Printf("Running (captured): %s", cmd.String())

	var stdout, stderr bytes.Buffer
	c := exec.Command(cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdout = &stdout
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		return stdout.String(), stderr.String(), &ExitError{
			Command: cmd,
			Stderr:  stderr.String(),
			Err:     err,
		}
	}
	return stdout.String(), stderr.String(), nil
}
