package version

import "fmt"

// Set at build time with -ldflags "-X github.com/itsmostafa/mdtoc/internal/version.Version=..."
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String returns the version line printed by --version.
func String() string {
	return fmt.Sprintf("mdtoc %s (commit: %s, built: %s)", Version, Commit, BuildDate)
}
