package app

import "fmt"

// Set at build time, for example:
//
//	go build -ldflags "-X github.com/priteshGolakiya/Interview-Questions/internal/app.Version=1.0.0" ./cmd/server
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version string reported at startup and by /health.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
