// Package config loads optional per-repository release settings from
// .releasekit.yml. Every field has a default, so the file only needs to exist
// when a repository deviates from the conventions.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/releasekit/releasekit/pkg/logger"
	"github.com/releasekit/releasekit/pkg/version"
)

var configLog = logger.New("config")

// FileNames are the config file names probed, in order.
var FileNames = []string{".releasekit.yml", ".releasekit.yaml"}

// Config holds per-repository release settings.
type Config struct {
	// PackageManager runs the build and changelog scripts ("<pm> run <script>").
	PackageManager string `yaml:"package_manager"`
	// BuildScript is the manifest script that builds the package.
	BuildScript string `yaml:"build_script"`
	// ChangelogScript is the manifest script that regenerates the changelog.
	ChangelogScript string `yaml:"changelog_script"`
	// PublishTool invokes the registry publish. Defaults to PackageManager.
	PublishTool string `yaml:"publish_tool"`
	// Remote is the git remote pushed to.
	Remote string `yaml:"remote"`
	// PrereleaseID is the identifier used by the pre* increment kinds.
	PrereleaseID string `yaml:"prerelease_id"`
	// GitHubRelease creates a GitHub release for the pushed tag.
	GitHubRelease bool `yaml:"github_release"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		PackageManager:  "yarn",
		BuildScript:     "build",
		ChangelogScript: "changelog",
		PublishTool:     "yarn",
		Remote:          "origin",
		PrereleaseID:    version.DefaultPrereleaseID,
	}
}

// Load reads the config file in dir, if any, and fills unset fields with
// defaults. A missing file is not an error.
func Load(dir string) (*Config, error) {
	cfg := Default()

	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		raw, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		loaded := &Config{}
		if err := yaml.Unmarshal(raw, loaded); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		configLog.Printf("Loaded config from %s", path)
		cfg.merge(loaded)
		return cfg, nil
	}

	configLog.Print("No config file found, using defaults")
	return cfg, nil
}

// merge overlays non-empty fields from other.
func (c *Config) merge(other *Config) {
	if other.PackageManager != "" {
		c.PackageManager = other.PackageManager
		// PublishTool follows the package manager unless set on its own.
		c.PublishTool = other.PackageManager
	}
	if other.BuildScript != "" {
		c.BuildScript = other.BuildScript
	}
	if other.ChangelogScript != "" {
		c.ChangelogScript = other.ChangelogScript
	}
	if other.PublishTool != "" {
		c.PublishTool = other.PublishTool
	}
	if other.Remote != "" {
		c.Remote = other.Remote
	}
	if other.PrereleaseID != "" {
		c.PrereleaseID = other.PrereleaseID
	}
	if other.GitHubRelease {
		c.GitHubRelease = true
	}
}
