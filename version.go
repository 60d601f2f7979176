package registro

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var rawVersion string

// Version is the release of the API and the CLI, reported by /api/status.
var Version = strings.TrimSpace(rawVersion)
