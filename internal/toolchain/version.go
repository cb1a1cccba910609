package toolchain

import (
	"bytes"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var versionPattern = regexp.MustCompile(`\d+\.\d+\.\d+(?:-[0-9A-Za-z.-]+)?`)

// ParseVersion extracts the first semantic version from toolchain output such
// as "cargo 1.79.0 (ffa9cf99a 2024-06-03)".
func ParseVersion(output string) (*semver.Version, error) {
	match := versionPattern.FindString(output)
	if match == "" {
		return nil, fmt.Errorf("no version found in %q", strings.TrimSpace(output))
	}
	return semver.NewVersion(match)
}

// Version runs "<command> --version" and parses the result.
func (c *Cargo) Version() (*semver.Version, error) {
	path, err := exec.LookPath(c.command())
	if err != nil {
		return nil, fmt.Errorf("%s not found on PATH: %w", c.command(), err)
	}

	var out bytes.Buffer
	cmd := exec.Command(path, "--version")
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("running %s --version: %w", c.command(), err)
	}
	return ParseVersion(out.String())
}

// CompareVersions compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
// Handles "v" prefix tolerance (strips leading "v" before parsing).
func CompareVersions(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// CheckMinVersion returns an error when the installed toolchain is older
// than minimum.
func (c *Cargo) CheckMinVersion(minimum string) (*semver.Version, error) {
	have, err := c.Version()
	if err != nil {
		return nil, err
	}
	cmp, err := CompareVersions(have.String(), minimum)
	if err != nil {
		return have, err
	}
	if cmp < 0 {
		return have, fmt.Errorf("%s %s is older than the required %s", c.command(), have, minimum)
	}
	return have, nil
}

// ValidVersion reports whether s parses as a semantic version.
func ValidVersion(s string) error {
	_, err := parseSemver(s)
	return err
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
