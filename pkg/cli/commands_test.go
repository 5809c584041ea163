//go:build !integration

package cli

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandFlags(t *testing.T) {
	cmd := NewRootCommand()

	tests := []struct {
		flag     string
		flagType string
	}{
		{flag: "dry", flagType: "bool"},
		{flag: "skip-build", flagType: "bool"},
		{flag: "tag", flagType: "string"},
		{flag: "cwd", flagType: "string"},
		{flag: "verbose", flagType: "bool"},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			f := cmd.Flags().Lookup(tt.flag)
			require.NotNil(t, f, "flag %q should be defined", tt.flag)
			assert.Equal(t, tt.flagType, f.Value.Type())
		})
	}
}

func TestRootCommandSilencesCobraOutput(t *testing.T) {
	// Execute prints the error itself; cobra must not print it a second time.
	cmd := NewRootCommand()
	assert.True(t, cmd.SilenceErrors)
	assert.True(t, cmd.SilenceUsage)
}

func TestFormatRunError(t *testing.T) {
	t.Run("prompt failure carries recovery hints", func(t *testing.T) {
		out := formatRunError(fmt.Errorf("cannot prompt for selection: not a TTY"))
		assert.Contains(t, out, "not a TTY")
		assert.Contains(t, out, "interactive terminal")
	})

	t.Run("other failures render plainly", func(t *testing.T) {
		out := formatRunError(fmt.Errorf("publish failed: exit status 1"))
		assert.Contains(t, out, "publish failed")
		assert.NotContains(t, out, "interactive terminal")
	})
}

func TestRootCommandRejectsExtraArgs(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"1.0.0", "2.0.0"})
	err := cmd.Execute()
	require.Error(t, err, "only one positional version argument is allowed")
}

func TestVersionInfo(t *testing.T) {
	original := GetVersion()
	defer SetVersionInfo(original)

	SetVersionInfo("9.9.9-test")
	assert.Equal(t, "9.9.9-test", GetVersion())
	assert.Equal(t, "9.9.9-test", NewRootCommand().Version)
}
