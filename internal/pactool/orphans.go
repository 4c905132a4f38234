package pactool

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/gookit/color"
)

// ParseOrphans turns the output of `pacman -Qdtq` into package names, one per line.
func ParseOrphans(out []byte) []string {
	var orphans []string
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name != "" {
			orphans = append(orphans, name)
		}
	}
	return orphans
}

// findOrphans queries pacman for dependencies nothing requires anymore.
// pacman exits 1 when there are none, so the exit status is ignored and
// only the printed names count.
func (s *Session) findOrphans() []string {
	out, err := s.Runner.Output("pacman", "-Qdtq")
	if err != nil {
		debugf(s.Err, "pacman -Qdtq: %v\n", err)
	}
	return ParseOrphans(out)
}

// pruneOrphans removes every orphaned dependency together with its own
// unneeded dependencies and backup files.
func (s *Session) pruneOrphans() {
	arrowf(s.Out, colSuccess, "Pruning orphaned dependencies...\n")

	orphans := s.findOrphans()
	if len(orphans) == 0 {
		arrowf(s.Out, colSuccess, "No orphaned dependencies found!\n")
		return
	}

	lines := make([]string, 0, len(orphans)+1)
	lines = append(lines, colSuccess.Sprintf("--- %d Orphan Package(s) Found ---", len(orphans)))
	for i, pkg := range orphans {
		lines = append(lines, fmt.Sprintf("%s%2d) %s", colArrow.Sprint("-> "), i+1, color.Bold.Sprint(pkg)))
	}
	if err := RunPager(s.Out, "Orphaned dependencies", lines); err != nil {
		debugf(s.Err, "pager: %v\n", err)
	}

	s.runTool("pacman", append([]string{"-Rns"}, orphans...)...)
	arrowf(s.Out, colSuccess, "Finished.\n")
}
