package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/releasekit/releasekit/pkg/config"
	"github.com/releasekit/releasekit/pkg/console"
	"github.com/releasekit/releasekit/pkg/gitops"
	"github.com/releasekit/releasekit/pkg/logger"
	"github.com/releasekit/releasekit/pkg/manifest"
	"github.com/releasekit/releasekit/pkg/preflight"
	"github.com/releasekit/releasekit/pkg/publish"
	"github.com/releasekit/releasekit/pkg/runner"
	"github.com/releasekit/releasekit/pkg/version"
)

var releaseLog = logger.New("cli:release")

// customChoice is the select value for entering a version by hand.
const customChoice = "custom"

// ReleaseOptions are the parsed command-line arguments. They are never
// modified after parsing; everything derived from them lives in
// ReleaseIntent.
type ReleaseOptions struct {
	Version   string
	DistTag   string
	DryRun    bool
	SkipBuild bool
	Dir       string
	Verbose   bool
}

// ReleaseIntent is the resolved plan for one release, fixed once the
// operator confirms.
type ReleaseIntent struct {
	TargetVersion string
	DistTag       string
	DryRun        bool
	SkipBuild     bool
}

// RunRelease drives a release from start to finish: preflight, version
// resolution, confirmation, then the mutating phases.
func RunRelease(opts ReleaseOptions) error {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}
	man, err := manifest.Load(dir)
	if err != nil {
		return err
	}

	releaseLog.Printf("Releasing %s (current version %s)", man.Name, man.Version)

	var mutate runner.Runner = runner.NewExec()
	if opts.DryRun {
		fmt.Fprintln(os.Stderr, console.FormatWarningMessage("Dry run: mutating commands will be logged, not executed."))
		mutate = runner.NewDryRun()
	}
	git := gitops.New(mutate, dir, cfg.Remote)

	if err := preflight.Run(environmentChecks(cfg, git)...); err != nil {
		return err
	}
	console.LogVerbose(opts.Verbose, "Environment checks passed")

	intent, cancelled, err := resolveIntent(opts, cfg, man)
	if err != nil {
		return err
	}
	if cancelled {
		releaseLog.Print("Release declined at confirmation")
		return nil
	}

	r := &releaseRunner{
		cfg:     cfg,
		man:     man,
		git:     git,
		pub:     publish.New(mutate, cfg.PublishTool, dir),
		script:  runner.NewExec(),
		dir:     dir,
		out:     os.Stderr,
		verbose: opts.Verbose,
	}
	return r.perform(intent)
}

// environmentChecks lists the preflight requirements for this configuration.
func environmentChecks(cfg *config.Config, git *gitops.Git) []preflight.Check {
	checks := []preflight.Check{
		preflight.BinaryOnPath("git"),
		preflight.BinaryOnPath(cfg.PackageManager),
		preflight.Requirement("git work tree", git.IsWorkTree, "not inside a git work tree"),
	}
	if cfg.PublishTool != cfg.PackageManager {
		checks = append(checks, preflight.BinaryOnPath(cfg.PublishTool))
	}
	return checks
}

// resolveIntent runs the interactive part of the flow: target version,
// distribution tag, final confirmation. The second return value is true when
// the operator declined the release.
func resolveIntent(opts ReleaseOptions, cfg *config.Config, man *manifest.Manifest) (ReleaseIntent, bool, error) {
	target, err := resolveTargetVersion(opts, cfg, man)
	if err != nil {
		return ReleaseIntent{}, false, err
	}

	distTag, err := resolveDistTag(opts, target)
	if err != nil {
		return ReleaseIntent{}, false, err
	}

	confirmed, err := console.ConfirmAction(
		fmt.Sprintf("Releasing %s. Confirm?", releaseTag(target)),
		"Release",
		"Abort",
	)
	if err != nil {
		return ReleaseIntent{}, false, fmt.Errorf("failed to get confirmation: %w", err)
	}
	if !confirmed {
		return ReleaseIntent{}, true, nil
	}

	return ReleaseIntent{
		TargetVersion: target,
		DistTag:       distTag,
		DryRun:        opts.DryRun,
		SkipBuild:     opts.SkipBuild,
	}, false, nil
}

// resolveTargetVersion picks the version to release: the explicit argument if
// one was given, otherwise an interactive choice among the seven increment
// kinds plus a custom entry.
func resolveTargetVersion(opts ReleaseOptions, cfg *config.Config, man *manifest.Manifest) (string, error) {
	if opts.Version != "" {
		if err := version.Validate(opts.Version); err != nil {
			return "", err
		}
		warnIfNotNewer(opts.Version, man.Version)
		return opts.Version, nil
	}

	candidates, err := version.Candidates(man.Version, cfg.PrereleaseID)
	if err != nil {
		return "", err
	}

	options := make([]console.SelectOption, 0, len(candidates)+1)
	for _, c := range candidates {
		options = append(options, console.SelectOption{
			Label: fmt.Sprintf("%s (%s)", c.Kind, c.Version),
			Value: c.Version,
		})
	}
	options = append(options, console.SelectOption{Label: "custom", Value: customChoice})

	selected, err := console.PromptSelect(
		fmt.Sprintf("Select release type for %s", man.Name),
		fmt.Sprintf("Current version: %s", man.Version),
		options,
	)
	if err != nil {
		return "", fmt.Errorf("failed to select release type: %w", err)
	}

	target := selected
	if selected == customChoice {
		input, err := console.PromptInput("Enter custom version", "Leave empty to keep the current version", man.Version, validateCustomInput)
		if err != nil {
			return "", fmt.Errorf("failed to read custom version: %w", err)
		}
		target = strings.TrimSpace(input)
		if target == "" {
			target = man.Version
		}
	}

	if err := version.Validate(target); err != nil {
		return "", err
	}
	warnIfNotNewer(target, man.Version)

	releaseLog.Printf("Resolved target version: %s", target)
	return target, nil
}

// resolveDistTag picks the distribution tag. An explicit --tag wins; a target
// containing "beta" triggers a confirmation for the beta tag.
func resolveDistTag(opts ReleaseOptions, target string) (string, error) {
	if opts.DistTag != "" {
		return opts.DistTag, nil
	}
	if !strings.Contains(target, "beta") {
		return "", nil
	}

	useBeta, err := console.ConfirmAction(
		fmt.Sprintf("Publish %s under the \"beta\" distribution tag?", target),
		"Yes, tag as beta",
		"No, use the default tag",
	)
	if err != nil {
		return "", fmt.Errorf("failed to get dist-tag confirmation: %w", err)
	}
	if useBeta {
		return "beta", nil
	}
	return "", nil
}

func warnIfNotNewer(target, current string) {
	if !version.IsGreater(target, current) {
		fmt.Fprintln(os.Stderr, console.FormatWarningMessage(
			fmt.Sprintf("Target version %s is not newer than the current version %s.", target, current)))
	}
}

// releaseRunner executes the mutating phases of a confirmed release.
type releaseRunner struct {
	cfg     *config.Config
	man     *manifest.Manifest
	git     *gitops.Git
	pub     *publish.Publisher
	script  runner.Runner
	dir     string
	out     io.Writer
	verbose bool
}

// perform runs the mutating part of the release: persist the version, build,
// changelog, commit+tag, publish, push. It stops at the first failure; there
// is no rollback, since a half-finished release spans systems that cannot be
// unwound atomically.
func (r *releaseRunner) perform(intent ReleaseIntent) error {
	tag := releaseTag(intent.TargetVersion)
	console.LogVerbose(r.verbose, fmt.Sprintf("Release identifier: %s", tag))

	r.step(fmt.Sprintf("Updating %s to version %s...", manifest.FileName, intent.TargetVersion))
	if err := r.man.WriteVersion(intent.TargetVersion); err != nil {
		return err
	}

	r.step("Building package...")
	if intent.SkipBuild || intent.DryRun {
		r.notice("(skipped)")
	} else {
		build := runner.Command{Name: r.cfg.PackageManager, Args: []string{"run", r.cfg.BuildScript}, Dir: r.dir}
		if err := r.script.Run(build); err != nil {
			return err
		}
	}

	r.step("Generating changelog...")
	// The changelog script runs even during a dry run. See "Dry runs" in the
	// README before changing this.
	changelog := runner.Command{Name: r.cfg.PackageManager, Args: []string{"run", r.cfg.ChangelogScript}, Dir: r.dir}
	if err := r.script.Run(changelog); err != nil {
		return err
	}

	r.step("Committing changes...")
	hasChanges, err := r.git.HasChanges()
	if err != nil {
		return err
	}
	if hasChanges {
		if err := r.git.StageAll(); err != nil {
			return err
		}
		if err := r.git.Commit("release: " + tag); err != nil {
			return err
		}
		if err := r.git.Tag(tag); err != nil {
			return err
		}
	} else {
		r.notice("No changes to commit.")
	}

	r.step("Publishing package...")
	if err := r.pub.Publish(r.man.Name, intent.TargetVersion, intent.DistTag); err != nil {
		var already *publish.AlreadyPublishedError
		if !errors.As(err, &already) {
			return err
		}
		r.warn(fmt.Sprintf("Skipping publish: %s.", already.Error()))
	}

	r.step("Pushing to remote...")
	if err := r.git.PushTag(tag); err != nil {
		return err
	}
	if err := r.git.PushBranch(); err != nil {
		return err
	}

	if r.cfg.GitHubRelease {
		r.step("Creating GitHub release...")
		if err := r.createGitHubRelease(tag, intent.DryRun); err != nil {
			return err
		}
	}

	if intent.DryRun {
		r.success(fmt.Sprintf("Dry run for %s@%s complete.", r.man.Name, intent.TargetVersion))
	} else {
		r.success(fmt.Sprintf("Released %s@%s.", r.man.Name, intent.TargetVersion))
	}
	return nil
}

func (r *releaseRunner) step(msg string) {
	fmt.Fprintln(r.out, console.FormatInfoMessage("\n"+msg))
}

func (r *releaseRunner) notice(msg string) {
	fmt.Fprintln(r.out, msg)
}

func (r *releaseRunner) warn(msg string) {
	fmt.Fprintln(r.out, console.FormatWarningMessage(msg))
}

func (r *releaseRunner) success(msg string) {
	fmt.Fprintln(r.out, console.FormatSuccessMessage(msg))
}
