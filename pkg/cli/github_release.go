package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cli/go-gh/v2/pkg/api"
	"github.com/cli/go-gh/v2/pkg/repository"

	"github.com/releasekit/releasekit/pkg/console"
)

// createGitHubRelease creates a GitHub release for the pushed tag, with
// generated release notes. Prerelease versions are marked as such.
func (r *releaseRunner) createGitHubRelease(tag string, dryRun bool) error {
	repo, err := repository.Current()
	if err != nil {
		return fmt.Errorf("cannot resolve current GitHub repository: %w", err)
	}

	if dryRun {
		fmt.Fprintf(r.out, "[dry-run] would create GitHub release %s for %s/%s\n", tag, repo.Owner, repo.Name)
		return nil
	}

	payload := map[string]any{
		"tag_name":               tag,
		"name":                   tag,
		"generate_release_notes": true,
		"prerelease":             strings.Contains(tag, "-"),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cannot encode release payload: %w", err)
	}

	client, err := api.NewRESTClient(api.ClientOptions{Host: repo.Host})
	if err != nil {
		return fmt.Errorf("cannot create GitHub client: %w", err)
	}

	var response struct {
		HTMLURL string `json:"html_url"`
	}
	path := fmt.Sprintf("repos/%s/%s/releases", repo.Owner, repo.Name)
	if err := client.Post(path, bytes.NewReader(body), &response); err != nil {
		return fmt.Errorf("failed to create GitHub release: %w", err)
	}

	fmt.Fprintln(r.out, console.FormatSuccessMessage(fmt.Sprintf("GitHub release created: %s", response.HTMLURL)))
	return nil
}
