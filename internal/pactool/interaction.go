package pactool

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errInvalidNumber = errors.New("invalid number")

// ParseRetention parses a "how many to keep" answer. An empty answer
// yields def; anything else must be an unsigned 16-bit integer.
func ParseRetention(input string, def uint16) (uint16, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return def, nil
	}
	n, err := strconv.ParseUint(input, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidNumber, input)
	}
	return uint16(n), nil
}

// askRetention prompts for a retention count. ok is false when the answer
// was not a valid number, in which case a warning has already been printed.
func (s *Session) askRetention(question string, def uint16) (uint16, bool) {
	answer := s.ask(nil, "%s (default: %d) ", question, def)
	n, err := ParseRetention(answer, def)
	if err != nil {
		debugf(s.Err, "retention input rejected: %v\n", err)
		cPrintln(s.Err, colWarn, "Invalid number, skipping...")
		return 0, false
	}
	return n, true
}
