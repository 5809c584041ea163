//go:build !integration

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReleaseTag(t *testing.T) {
	assert.Equal(t, "v1.2.4", releaseTag("1.2.4"))
	assert.Equal(t, "v2.0.0-beta.0", releaseTag("2.0.0-beta.0"))
}

func TestIsSemverShaped(t *testing.T) {
	tests := []struct {
		ref      string
		expected bool
	}{
		{ref: "1.2.3", expected: true},
		{ref: "v1.2.3", expected: true},
		{ref: "2.0.0-beta.1", expected: true},
		{ref: "main", expected: false},
		{ref: "", expected: false},
		{ref: "1.2.3.4", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			assert.Equal(t, tt.expected, isSemverShaped(tt.ref))
		})
	}
}

func TestValidateCustomInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "plain version", input: "1.2.3", valid: true},
		{name: "v prefix", input: "v1.2.3", valid: true},
		{name: "prerelease", input: "2.0.0-beta.1", valid: true},
		{name: "empty keeps current", input: "", valid: true},
		{name: "whitespace only keeps current", input: "  ", valid: true},
		{name: "branch name", input: "main", valid: false},
		{name: "four segments", input: "1.2.3.4", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCustomInput(tt.input)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
