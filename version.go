package main

import (
	"fmt"

	"github.com/blang/semver/v4"
)

const locallyBuilt = "(built from source)"

// version is initialized at build time through -ldflags "-X main.version=<version number>"
var version = "master"

// versionString describes the running build. Anything that is not a semantic
// version comes from a developer build.
func versionString() string {
	v, err := semver.ParseTolerant(version)
	if err != nil {
		return fmt.Sprintf("relauncher %s", locallyBuilt)
	}
	return fmt.Sprintf("relauncher v%s", v)
}
