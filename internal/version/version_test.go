package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReleaseNameForVersion(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		expected string
	}{
		{name: "exact match for 2.5.0", version: "2.5.0", expected: "Final"},
		{name: "patch version uses base name", version: "2.5.3", expected: "Final"},
		{name: "earlier release", version: "2.4.1", expected: "Candidate"},
		{name: "prerelease uses base name", version: "2.5.0-rc.1", expected: "Final"},
		{name: "version without name", version: "3.0.0", expected: ""},
		{name: "invalid version", version: "invalid", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetReleaseNameForVersion(tt.version))
		})
	}
}

func TestLabel(t *testing.T) {
	original := Version
	defer func() { Version = original }()

	Version = "2.5.0+42.abc1234"
	assert.Equal(t, "V2.5.0 Final", Label())

	Version = "3.1.0"
	assert.Equal(t, "V3.1.0", Label())
}

func TestGetInfo(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer SetBuildInfo(origVersion, origCommit, origDate)

	SetBuildInfo("2.5.1", "abc1234", "2024-06-01")

	info, err := GetInfo()
	require.NoError(t, err)
	assert.Equal(t, "2.5.1", info.Version)
	assert.Equal(t, "Final", info.Release)
	assert.Equal(t, "abc1234", info.GitCommit)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")

	out := String()
	assert.True(t, strings.HasPrefix(out, "Syncro V2.5.1 Final"))
	assert.Contains(t, out, "Git Commit: abc1234")
	assert.Contains(t, out, "Build Date: 2024-06-01")
}

func TestGetInfo_InvalidVersion(t *testing.T) {
	original := Version
	defer func() { Version = original }()

	Version = "not-a-version"
	_, err := GetInfo()
	assert.Error(t, err)
	assert.Contains(t, String(), "invalid version")
}
