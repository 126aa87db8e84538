// Package version reports the build version of the netui binary.
package version

import (
	"fmt"
	"strings"

	ver "github.com/hashicorp/go-version"
)

var (
	// Set to the content of the CURRENT_VERSION file at link-time with -X.
	rawReleaseVersion = "0.0.0"

	releaseVersion = ver.Must(ver.NewSemver(strings.TrimSuffix(rawReleaseVersion, "\n")))

	// Set at link-time with -X.
	gitVersion = "unknown"
)

func ReleaseVersion() *ver.Version {
	return releaseVersion
}

// GitVersion is the git SHA this binary was built from.
func GitVersion() string {
	return gitVersion
}

func DisplayString() string {
	return fmt.Sprintf("%s (%s)", releaseVersion.String(), gitVersion)
}
