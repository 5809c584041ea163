//go:build !integration

package publish

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/releasekit/releasekit/pkg/runner"
)

type fakeRunner struct {
	ran    []runner.Command
	stderr string
	err    error
}

func (f *fakeRunner) Run(cmd runner.Command) error {
	f.ran = append(f.ran, cmd)
	return f.err
}

func (f *fakeRunner) RunCapture(cmd runner.Command) (string, string, error) {
	f.ran = append(f.ran, cmd)
	return "", f.stderr, f.err
}

func TestPublishInvocationShape(t *testing.T) {
	t.Run("without dist tag", func(t *testing.T) {
		fake := &fakeRunner{}
		p := New(fake, "yarn", "/repo")

		require.NoError(t, p.Publish("@acme/widgets", "1.2.4", ""))
		require.Len(t, fake.ran, 1)
		assert.Equal(t,
			"yarn publish --no-git-tag-version --new-version 1.2.4 --access public",
			fake.ran[0].String())
		assert.Equal(t, "/repo", fake.ran[0].Dir)
	})

	t.Run("with dist tag", func(t *testing.T) {
		fake := &fakeRunner{}
		p := New(fake, "yarn", "/repo")

		require.NoError(t, p.Publish("@acme/widgets", "2.0.0-beta.0", "beta"))
		require.Len(t, fake.ran, 1)
		assert.Equal(t,
			"yarn publish --no-git-tag-version --new-version 2.0.0-beta.0 --access public --tag beta",
			fake.ran[0].String())
	})

	t.Run("configured tool", func(t *testing.T) {
		fake := &fakeRunner{}
		p := New(fake, "pnpm", "/repo")

		require.NoError(t, p.Publish("@acme/widgets", "1.2.4", ""))
		assert.Equal(t, "pnpm", fake.ran[0].Name)
	})
}

func TestPublishAlreadyPublished(t *testing.T) {
	fake := &fakeRunner{
		stderr: "error: Couldn't publish package: version 2.0.0 previously published\n",
		err:    fmt.Errorf("exit status 1"),
	}
	p := New(fake, "yarn", "/repo")

	err := p.Publish("@acme/widgets", "2.0.0", "")
	require.Error(t, err)

	var alreadyErr *AlreadyPublishedError
	require.ErrorAs(t, err, &alreadyErr)
	assert.Equal(t, "@acme/widgets", alreadyErr.Name)
	assert.Equal(t, "2.0.0", alreadyErr.Version)
	assert.Contains(t, alreadyErr.Error(), "previously published")
}

func TestPublishOtherFailureIsFatal(t *testing.T) {
	fake := &fakeRunner{
		stderr: "error: 403 Forbidden\n",
		err:    fmt.Errorf("exit status 1"),
	}
	p := New(fake, "yarn", "/repo")

	err := p.Publish("@acme/widgets", "2.0.0", "")
	require.Error(t, err)

	var alreadyErr *AlreadyPublishedError
	assert.False(t, errors.As(err, &alreadyErr), "403 must not be tolerated")
	assert.Contains(t, err.Error(), "publish failed")
}

func TestPublishDryRunOnlyLogs(t *testing.T) {
	var buf bytes.Buffer
	p := New(runner.NewDryRunTo(&buf), "yarn", "/repo")

	require.NoError(t, p.Publish("@acme/widgets", "1.2.4", "beta"))
	assert.Contains(t, buf.String(),
		"would run: yarn publish --no-git-tag-version --new-version 1.2.4 --access public --tag beta")
}
