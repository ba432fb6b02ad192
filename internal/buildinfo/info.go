// Package buildinfo carries version metadata stamped in with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/cleared-dev/ledger/internal/buildinfo.Version=v0.3.0" ./cmd/ledger
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String renders the version line printed by `ledger --version`.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
