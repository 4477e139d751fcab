package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShort(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Version, Short())
}

func TestFull(t *testing.T) {
	t.Parallel()

	expected := "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
	assert.Equal(t, expected, Full())
}

// TestVersionVariables tests that version variables are properly initialized.
func TestVersionVariables(t *testing.T) {
	t.Parallel()

	assert.NotEmpty(t, Version)
	assert.NotEmpty(t, Commit)
	assert.NotEmpty(t, BuildTime)
}

// TestVersionFormat tests that version follows semantic versioning format.
func TestVersionFormat(t *testing.T) {
	t.Parallel()

	assert.Contains(t, Version, ".")
	assert.NotContains(t, Version, " ")
}
