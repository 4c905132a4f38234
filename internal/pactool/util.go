package pactool

import (
	"fmt"
	"io"
	"strings"
)

// color-compatible printer interface (works with *color.Theme, color.RGBColor and color.Tag)
type colorPrinter interface {
	Sprintf(format string, a ...any) string
}

// cPrintf prints with a colored style or falls back to fmt.Fprintf when nil
func cPrintf(w io.Writer, p colorPrinter, format string, a ...any) {
	if p == nil {
		fmt.Fprintf(w, format, a...)
		return
	}
	fmt.Fprint(w, p.Sprintf(format, a...))
}

// cPrintln prints a line with the given style or falls back to fmt.Fprintln when nil
func cPrintln(w io.Writer, p colorPrinter, a ...any) {
	msg := strings.TrimSuffix(fmt.Sprintln(a...), "\n")
	if p == nil {
		fmt.Fprintln(w, msg)
		return
	}
	fmt.Fprintln(w, p.Sprintf("%s", msg))
}

// arrowf prints the "==> " marker followed by a styled message.
func arrowf(w io.Writer, p colorPrinter, format string, a ...any) {
	cPrintf(w, colArrow, "==> ")
	cPrintf(w, p, format, a...)
}

// debugf prints debug messages when Debug is true
func debugf(w io.Writer, format string, args ...any) {
	if Debug {
		fmt.Fprintf(w, format, args...)
	}
}
