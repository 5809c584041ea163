// Package cli wires the releasekit command line: flag parsing, interactive
// prompts, and the release flow itself.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/releasekit/releasekit/pkg/console"
	"github.com/releasekit/releasekit/pkg/logger"
)

var commandsLog = logger.New("cli:commands")

// Package-level version information, overridden at build time.
var cliVersion = "dev"

// SetVersionInfo sets the CLI version reported by --version.
func SetVersionInfo(v string) {
	cliVersion = v
}

// GetVersion returns the current CLI version.
func GetVersion() string {
	return cliVersion
}

// NewRootCommand builds the releasekit command.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "releasekit [version]",
		Short: "Release a package: bump, build, changelog, commit, tag, publish, push",
		Long: `releasekit walks you through releasing the package in the current directory.

It resolves the target version (from the argument or an interactive prompt),
updates package.json, runs the build and changelog scripts, commits and tags
the release, publishes it to the registry, and pushes the tag and branch.

Examples:
  releasekit                    # pick the version interactively
  releasekit 2.0.0              # release an explicit version
  releasekit --dry              # log mutating commands instead of running them
  releasekit --skip-build       # release without rebuilding
  releasekit 2.0.0-beta.1 --tag beta`,
		Version: cliVersion,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry")
			skipBuild, _ := cmd.Flags().GetBool("skip-build")
			distTag, _ := cmd.Flags().GetString("tag")
			dir, _ := cmd.Flags().GetString("cwd")
			verbose, _ := cmd.Flags().GetBool("verbose")

			opts := ReleaseOptions{
				DryRun:    dryRun,
				SkipBuild: skipBuild,
				DistTag:   distTag,
				Dir:       dir,
				Verbose:   verbose,
			}
			if len(args) == 1 {
				opts.Version = args[0]
			}

			commandsLog.Printf("Parsed options: %+v", opts)
			return RunRelease(opts)
		},
	}

	cmd.Flags().Bool("dry", false, "Log mutating commands instead of running them")
	cmd.Flags().Bool("skip-build", false, "Skip the build step")
	cmd.Flags().String("tag", "", "Distribution tag to publish under (e.g. beta)")
	cmd.Flags().String("cwd", ".", "Directory of the package to release")
	cmd.Flags().BoolP("verbose", "v", false, "Verbose output")

	// Errors are rendered once, by Execute, not by cobra too.
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return cmd
}

// formatRunError renders a fatal error, adding recovery hints when the
// failure was an attempt to prompt outside a terminal.
func formatRunError(err error) string {
	if strings.Contains(err.Error(), "not a TTY") {
		return console.FormatErrorWithSuggestions(err.Error(), []string{
			"Run releasekit from an interactive terminal",
			"Or pass the version argument and --tag to skip the prompts",
		})
	}
	return console.FormatErrorMessage(err.Error())
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, formatRunError(err))
		os.Exit(1)
	}
}
