package pactool

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
)

// menuAction binds a selector key to one housekeeping task.
type menuAction struct {
	Key   rune
	Label string
	Run   func(*Session)
}

var menuActions = []menuAction{
	{'1', "Update all packages", (*Session).fullUpdate},
	{'2', "Update all packages and AUR packages", (*Session).aurUpdate},
	{'3', "Prune orphaned dependencies", (*Session).pruneOrphans},
	{'4', "Check for pacdiffs", (*Session).checkPacdiffs},
	{'5', "Clear the pacman cache", (*Session).clearCache},
	{'6', "Clear the journal logs", (*Session).clearLogs},
}

func lookupAction(key rune) (menuAction, bool) {
	for _, a := range menuActions {
		if a.Key == key {
			return a, true
		}
	}
	return menuAction{}, false
}

// printMenu renders the version header, the numbered actions and the input prompt.
func (s *Session) printMenu() {
	arrowf(s.Out, colSuccess, "pactool version %s\n", Version())
	fmt.Fprintln(s.Out)
	for _, a := range menuActions {
		fmt.Fprintf(s.Out, "%s %s\n", color.Bold.Sprintf("%c.)", a.Key), a.Label)
	}
	fmt.Fprintln(s.Out)
	cPrintln(s.Out, colNote, "choice(s) e.g 1425:")
	cPrintf(s.Out, colArrow, "> ")
}

// Dispatch runs the action for every character of input, left to right.
// Unknown characters are reported and skipped.
func (s *Session) Dispatch(input string) {
	for _, choice := range strings.TrimSpace(input) {
		action, ok := lookupAction(choice)
		if !ok {
			cPrintf(s.Err, colWarn, "Invalid choice '%c', skipping...\n", choice)
			continue
		}
		action.Run(s)
	}
}
