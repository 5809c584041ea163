//go:build !integration

package preflight

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAllPassing(t *testing.T) {
	pass := Check{Name: "ok", Run: func() error { return nil }}
	require.NoError(t, Run(pass, pass, pass))
}

func TestRunCollectsEveryFailure(t *testing.T) {
	err := Run(
		Check{Name: "a", Run: func() error { return fmt.Errorf("a is broken") }},
		Check{Name: "b", Run: func() error { return nil }},
		Check{Name: "c", Run: func() error { return fmt.Errorf("c is broken") }},
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "a is broken")
	assert.Contains(t, err.Error(), "c is broken")
}

func TestBinaryOnPath(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		// sh exists on every supported platform's CI image.
		assert.NoError(t, BinaryOnPath("sh").Run())
	})

	t.Run("absent", func(t *testing.T) {
		err := BinaryOnPath("definitely-not-a-real-binary-name").Run()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found on PATH")
	})
}

func TestRequirement(t *testing.T) {
	assert.NoError(t, Requirement("work tree", func() bool { return true }, "not a git work tree").Run())

	err := Requirement("work tree", func() bool { return false }, "not a git work tree").Run()
	require.Error(t, err)
	assert.EqualError(t, err, "not a git work tree")
}
