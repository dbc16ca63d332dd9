// Package version holds build fingerprints for the surge CLI, overridable
// at build time via -ldflags.
package version

import "github.com/fatih/color"

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI.
	Version = versionMajorColor.Sprint("0") + "." + versionMinorColor.Sprint("1") + "." + versionPatchColor.Sprint("0") + "-dev"

	// GitCommit is an optional git commit hash, set at build time.
	GitCommit = ""

	// GitMessage is an optional git commit message, set at build time.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601, set at build time.
	BuildDate = ""
)
