package pactool

import (
	_ "embed"
	"strings"
)

// Bumped by the release script; shown in the menu header.
//
//go:embed ver
var embeddedVersion string

// Version returns the embedded release string without its trailing newline.
func Version() string {
	v := strings.TrimSpace(embeddedVersion)
	if v == "" {
		return "dev"
	}
	return v
}
