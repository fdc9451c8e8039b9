package version

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"

	"github.com/teranos/confgen/errors"
)

// Build information. These variables are set at build time via ldflags.
var (
	// CommitHash is the git commit hash when the binary was built
	CommitHash = "dev"

	// BuildTime is when the binary was built
	BuildTime = "unknown"

	// Version is the semantic version (if tagged)
	Version = "dev"
)

// Info contains version and build information
type Info struct {
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	Version    string `json:"version"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// Get returns the current version information
func Get() Info {
	return Info{
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		Version:    Version,
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a human-readable version string
func (i Info) String() string {
	if i.Version != "dev" {
		return fmt.Sprintf("confgen %s (commit %s, built %s)", i.Version, i.CommitHash, i.BuildTime)
	}
	return fmt.Sprintf("confgen dev (commit %s, built %s)", i.CommitHash, i.BuildTime)
}

// CheckConstraint verifies that this binary satisfies a semver constraint such
// as ">= 1.2". Development builds satisfy every well-formed constraint.
func CheckConstraint(constraint string) error {
	return checkConstraint(Version, constraint)
}

func checkConstraint(current, constraint string) error {
	if constraint == "" {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return errors.Wrapf(err, "invalid version constraint %q", constraint)
	}
	if current == "dev" {
		return nil
	}

	v, err := semver.NewVersion(current)
	if err != nil {
		return errors.Wrapf(err, "invalid confgen version %q", current)
	}

	if !c.Check(v) {
		return errors.WithHintf(
			errors.Newf("confgen %s does not satisfy %q", current, constraint),
			"install a confgen release matching %q", constraint,
		)
	}
	return nil
}
