package toolchain

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Family identifies a compiler driver.
type Family string

const (
	Clang   Family = "clang"
	GCC     Family = "gcc"
	Unknown Family = "unknown"
)

// minimumVersions are the first releases with complete C++11 support.
var minimumVersions = map[Family]string{
	Clang: ">= 3.3",
	GCC:   ">= 4.8.1",
}

var versionPattern = regexp.MustCompile(`\b(\d+)\.(\d+)(?:\.(\d+))?`)

// ParseVersion extracts the driver family and version from the output of
// "<compiler> --version".
func ParseVersion(output string) (Family, *semver.Version, error) {
	first, _, _ := strings.Cut(strings.TrimSpace(output), "\n")

	family := Unknown
	lower := strings.ToLower(first)
	switch {
	case strings.Contains(lower, "clang"):
		family = Clang
	case strings.Contains(lower, "gcc"), strings.Contains(lower, "g++"),
		strings.Contains(output, "Free Software Foundation"):
		family = GCC
	}

	match := versionPattern.FindString(first)
	if match == "" {
		return family, nil, fmt.Errorf("no version number in %q", first)
	}
	v, err := semver.NewVersion(match)
	if err != nil {
		return family, nil, fmt.Errorf("invalid compiler version %q: %w", match, err)
	}
	return family, v, nil
}

// CheckVersion reports an error when a known compiler family is too old to
// build the generated code. Unknown families are accepted.
func CheckVersion(family Family, v *semver.Version) error {
	expr, ok := minimumVersions[family]
	if !ok {
		return nil
	}
	constraint, err := semver.NewConstraint(expr)
	if err != nil {
		return fmt.Errorf("invalid constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%s %s does not support C++11, need %s", family, v, expr)
	}
	return nil
}

// Version runs the compiler with --version and parses the answer.
func (c *ExecCompiler) Version(ctx context.Context) (Family, *semver.Version, error) {
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, c.Command, "--version")
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return Unknown, nil, fmt.Errorf("%s --version: %w", c.Command, err)
	}
	return ParseVersion(out.String())
}

// Validate checks that the compiler runs and is recent enough.
func (c *ExecCompiler) Validate(ctx context.Context) error {
	family, v, err := c.Version(ctx)
	if err != nil {
		return err
	}
	log.Debugf("%s is %s %s", c.Command, family, v)
	return CheckVersion(family, v)
}
