// File: version.go
// Title: Build Version Information
// Description: Version, commit and build date of the goldx tools, set at
//              link time with -ldflags "-X".
// Author: goldenacre
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Moved out of the CLI command package

package version

import (
	"fmt"
	"runtime"
)

// Overridden at build time:
//
//	go build -ldflags "-X github.com/goldenacre/extensions/pkg/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	Version   = "0.2.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info describes the running binary
type Info struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one line summary, e.g. "v0.2.0 (development, unknown)"
func (i Info) String() string {
	return fmt.Sprintf("v%s (%s, %s)", i.Version, i.GitCommit, i.BuildDate)
}
