package pactool

import (
	"sync/atomic"

	"github.com/gookit/color"
)

// We use a value of 1 while an external tool owns the terminal and 0 otherwise.
var isCriticalAtomic atomic.Int32

// Global variables
var (
	rootDir        = "/"
	Debug          bool
	ConfigFile     = "/etc/pactool.conf"
	PacmanConf     = "/etc/pacman.conf"
	contribPackage = "pacman-contrib"
	// AUR helpers in order of preference.
	aurHelpers = []string{"/bin/yay", "/bin/trizen", "/bin/pikaur", "/bin/paru"}
)

// Retention defaults used when the user just presses enter.
const (
	defaultCacheKeep = 3
	defaultLogDays   = 3
)

// color helpers
var (
	colInfo    = color.Info // style provided by gookit/color
	colWarn    = color.Warn
	colError   = color.Error
	colSuccess = color.HEX("#1976D2")
	colArrow   = color.HEX("#FFEB3B")
	colNote    = color.Tag("notice")
)
