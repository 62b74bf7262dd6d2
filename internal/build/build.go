// Package build holds build-time information.
package build

// Version is the application version.
// It defaults to "dev" and can be overwritten by linker flags.
var Version = "dev"

// Commit and Date identify the source revision and the time of the build.
// They are empty unless set by linker flags.
var (
	Commit string
	Date   string
)
