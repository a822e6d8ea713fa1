// Package version provides centralized version management for Syncro.
// It supports semantic versioning, build-time injection and release labels.
package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Build information that can be set at compile time via -ldflags
var (
	// Version is the semantic version of the application
	Version = "2.5.0"

	// GitCommit is the git commit hash when the binary was built
	GitCommit = "unknown"

	// BuildDate is the date when the binary was built
	BuildDate = "unknown"
)

// releaseNames maps major.minor.0 versions to the release name shown in the footer.
var releaseNames = map[string]string{
	"2.3.0": "Preview",
	"2.4.0": "Candidate",
	"2.5.0": "Final",
}

// Info represents comprehensive version information
type Info struct {
	Version   string          `json:"version"`
	Release   string          `json:"release"`
	GitCommit string          `json:"gitCommit"`
	BuildDate string          `json:"buildDate"`
	GoVersion string          `json:"goVersion"`
	Platform  string          `json:"platform"`
	SemVer    *semver.Version `json:"-"`
}

// GetVersion returns the current version string
func GetVersion() string {
	return Version
}

// GetBaseVersion returns the base version (major.minor.patch) without build metadata
func GetBaseVersion() string {
	sv, err := semver.NewVersion(Version)
	if err != nil {
		return Version
	}
	return fmt.Sprintf("%d.%d.%d", sv.Major(), sv.Minor(), sv.Patch())
}

// GetReleaseNameForVersion returns the release name for a version.
// Patch and prerelease versions use the major.minor.0 name.
func GetReleaseNameForVersion(version string) string {
	if name, exists := releaseNames[version]; exists {
		return name
	}

	sv, err := semver.NewVersion(version)
	if err != nil {
		return ""
	}

	baseVersion := fmt.Sprintf("%d.%d.0", sv.Major(), sv.Minor())
	return releaseNames[baseVersion]
}

// Label returns the footer label, e.g. "V2.5.0 Final".
func Label() string {
	label := "V" + GetBaseVersion()
	if name := GetReleaseNameForVersion(Version); name != "" {
		label += " " + name
	}
	return label
}

// GetInfo returns comprehensive version information
func GetInfo() (*Info, error) {
	sv, err := semver.NewVersion(Version)
	if err != nil {
		return nil, fmt.Errorf("invalid semantic version '%s': %w", Version, err)
	}

	return &Info{
		Version:   Version,
		Release:   GetReleaseNameForVersion(Version),
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		SemVer:    sv,
	}, nil
}

// String renders the version information for the version command.
func String() string {
	info, err := GetInfo()
	if err != nil {
		return fmt.Sprintf("Syncro %s (invalid version)", Version)
	}

	lines := []string{fmt.Sprintf("Syncro %s", Label())}
	if info.GitCommit != "unknown" {
		lines = append(lines, fmt.Sprintf("Git Commit: %s", info.GitCommit))
	}
	if info.BuildDate != "unknown" {
		lines = append(lines, fmt.Sprintf("Build Date: %s", info.BuildDate))
	}
	lines = append(lines, fmt.Sprintf("Go Version: %s", info.GoVersion))
	lines = append(lines, fmt.Sprintf("Platform: %s", info.Platform))

	return strings.Join(lines, "\n")
}

// SetBuildInfo sets build information (used for testing)
func SetBuildInfo(version, gitCommit, buildDate string) {
	Version = version
	GitCommit = gitCommit
	BuildDate = buildDate
}
