package pactool

import (
	"os"
	"path/filepath"
)

// fullUpdate syncs the repositories and upgrades every installed package.
func (s *Session) fullUpdate() {
	arrowf(s.Out, colSuccess, "Updating all packages...\n")
	s.runTool("pacman", "-Syu")
	arrowf(s.Out, colSuccess, "Finished.\n")
}

// findAURHelper returns the command name of the first installed AUR helper,
// probing the known locations in order of preference.
func findAURHelper() (string, bool) {
	for _, p := range aurHelpers {
		if _, err := os.Stat(filepath.Join(rootDir, p)); err == nil {
			return filepath.Base(p), true
		}
	}
	return "", false
}

// aurUpdate hands the whole update over to an AUR helper, which covers the
// official repositories as well.
func (s *Session) aurUpdate() {
	arrowf(s.Out, colSuccess, "Updating all packages and AUR packages...\n")
	if helper, ok := findAURHelper(); ok {
		debugf(s.Err, "using AUR helper %s\n", helper)
		s.runTool(helper)
	} else {
		cPrintln(s.Err, colWarn, "No AUR helper found, skipping...")
	}
	arrowf(s.Out, colSuccess, "Finished.\n")
}

func (s *Session) checkPacdiffs() {
	arrowf(s.Out, colSuccess, "Checking for pacdiffs...\n")
	s.runTool("pacdiff")
	arrowf(s.Out, colSuccess, "Finished.\n")
}
