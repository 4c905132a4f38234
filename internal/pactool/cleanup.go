package pactool

import (
	"fmt"
	"strconv"
)

// clearCache prunes the package cache down to the newest n versions of
// each package.
func (s *Session) clearCache() {
	arrowf(s.Out, colSuccess, "Clearing the pacman cache...\n")

	keep, ok := s.askRetention("How many package versions would you like to keep?", s.Config.CacheKeep)
	if !ok {
		return
	}

	s.runTool("paccache", "-r", "-k", strconv.FormatUint(uint64(keep), 10))
	arrowf(s.Out, colSuccess, "Finished.\n")
}

// clearLogs shows the journal size and, once confirmed, vacuums entries
// older than the requested number of days.
func (s *Session) clearLogs() {
	arrowf(s.Out, colSuccess, "Clearing the journal logs...\n")

	s.runTool("journalctl", "--disk-usage")
	if !s.askForConfirmation(nil, "Are you sure you would like to clear the logs?") {
		cPrintf(s.Err, colArrow, "==> ")
		cPrintln(s.Err, colWarn, "Skipping journal log clearing...")
		return
	}

	days, ok := s.askRetention("How many days of logs would you like to keep?", s.Config.LogDays)
	if !ok {
		return
	}

	s.runTool("journalctl", fmt.Sprintf("--vacuum-time=%dd", days))
	arrowf(s.Out, colSuccess, "Finished.\n")
}
