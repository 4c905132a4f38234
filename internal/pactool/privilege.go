package pactool

import (
	"errors"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

var errPacmanMissing = errors.New("pacman was not detected on this system, are you on an arch-based distro?")

// getuid is swapped out in tests.
var getuid = unix.Getuid

// isPrivileged reports whether pactool runs as root. pacman itself refuses
// to modify the system otherwise.
func isPrivileged() bool {
	return getuid() == 0
}

// pacmanDetected checks for pacman's configuration file under the configured root.
func pacmanDetected() bool {
	_, err := os.Stat(filepath.Join(rootDir, PacmanConf))
	return err == nil
}

// contribInstalled asks pacman whether pacman-contrib, which ships paccache
// and pacdiff, is installed.
func (s *Session) contribInstalled() bool {
	_, err := s.Runner.Output("pacman", "-Q", contribPackage)
	return err == nil
}

// checkPreconditions verifies the host before the menu is shown. Only a
// missing pacman is fatal; the other checks warn and carry on.
func (s *Session) checkPreconditions() error {
	if !pacmanDetected() {
		return errPacmanMissing
	}

	if !isPrivileged() {
		cPrintln(s.Err, colWarn, "[WARNING] !! pactool is not running with root privileges, this may cause issues. !!")
	}

	if !s.contribInstalled() {
		cPrintf(s.Err, colWarn, "[WARNING] %s is not installed\n", contribPackage)
		cPrintln(s.Err, colInfo, "This collection of packages is required for most of pactool's functionality")
		if s.askForConfirmation(nil, "Would you like to install it now?") {
			s.runTool("pacman", "-Sy", contribPackage)
		}
	}
	return nil
}
