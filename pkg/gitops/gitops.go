// Package gitops wraps the git operations a release needs. Mutating commands
// (stage, commit, tag, push) go through the injected Runner so dry runs can
// log them instead; inspection commands always execute for real, since the
// release flow branches on their output.
package gitops

import (
	"fmt"
	"strings"

	"github.com/releasekit/releasekit/pkg/logger"
	"github.com/releasekit/releasekit/pkg/runner"
)

var gitLog = logger.New("gitops")

// Git runs git against a single repository.
type Git struct {
	mutate  runner.Runner
	inspect runner.Runner
	dir     string
	remote  string
}

// New returns a Git whose mutating commands go through mutate. Inspection
// commands always run for real.
func New(mutate runner.Runner, dir, remote string) *Git {
	return &Git{
		mutate:  mutate,
		inspect: runner.NewExec(),
		dir:     dir,
		remote:  remote,
	}
}

// NewWithInspect also overrides the inspection runner, for tests.
func NewWithInspect(mutate, inspect runner.Runner, dir, remote string) *Git {
	return &Git{mutate: mutate, inspect: inspect, dir: dir, remote: remote}
}

func (g *Git) cmd(args ...string) runner.Command {
	return runner.Command{Name: "git", Args: args, Dir: g.dir}
}

// HasChanges reports whether the working tree differs from HEAD.
func (g *Git) HasChanges() (bool, error) {
	stdout, _, err := g.inspect.RunCapture(g.cmd("diff"))
	if err != nil {
		return false, fmt.Errorf("failed to inspect working tree: %w", err)
	}
	return strings.TrimSpace(stdout) != "", nil
}

// IsWorkTree reports whether dir is inside a git work tree.
func (g *Git) IsWorkTree() bool {
	stdout, _, err := g.inspect.RunCapture(g.cmd("rev-parse", "--is-inside-work-tree"))
	return err == nil && strings.TrimSpace(stdout) == "true"
}

// CurrentBranch returns the checked-out branch name.
func (g *Git) CurrentBranch() (string, error) {
	stdout, _, err := g.inspect.RunCapture(g.cmd("rev-parse", "--abbrev-ref", "HEAD"))
	if err != nil {
		return "", fmt.Errorf("failed to resolve current branch: %w", err)
	}
	return strings.TrimSpace(stdout), nil
}

// StageAll stages every change in the working tree.
func (g *Git) StageAll() error {
	gitLog.Print("Staging all changes")
	return g.mutate.Run(g.cmd("add", "-A"))
}

// Commit records the staged changes.
func (g *Git) Commit(message string) error {
	gitLog.Printf("Committing: %s", message)
	return g.mutate.Run(g.cmd("commit", "-m", message))
}

// Tag creates a lightweight tag at HEAD.
func (g *Git) Tag(name string) error {
	gitLog.Printf("Tagging: %s", name)
	return g.mutate.Run(g.cmd("tag", name))
}

// PushTag pushes a single tag ref to the remote.
func (g *Git) PushTag(name string) error {
	gitLog.Printf("Pushing tag %s to %s", name, g.remote)
	return g.mutate.Run(g.cmd("push", g.remote, "refs/tags/"+name))
}

// PushBranch pushes the checked-out branch to the remote by name, so the
// push is unambiguous regardless of the local push.default setting.
func (g *Git) PushBranch() error {
	branch, err := g.CurrentBranch()
	if err != nil {
		return err
	}
	gitLog.Printf("Pushing branch %s to %s", branch, g.remote)
	return g.mutate.Run(g.cmd("push", g.remote, branch))
}
