package pactool

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// Session carries the streams and collaborators of one interactive run.
type Session struct {
	Context context.Context
	Config  *Config
	Runner  CommandRunner
	In      *bufio.Reader
	Out     io.Writer
	Err     io.Writer
}

// NewSession builds a Session. All prompts share one buffered reader so that
// input typed ahead is never lost between questions.
func NewSession(ctx context.Context, cfg *Config, runner CommandRunner, in io.Reader, out, errOut io.Writer) *Session {
	if cfg == nil {
		cfg = &Config{Values: map[string]string{}, CacheKeep: defaultCacheKeep, LogDays: defaultLogDays}
	}
	return &Session{
		Context: ctx,
		Config:  cfg,
		Runner:  runner,
		In:      bufio.NewReader(in),
		Out:     out,
		Err:     errOut,
	}
}

// readLine returns the next input line without surrounding whitespace.
// End of input reads as an empty answer.
func (s *Session) readLine() string {
	line, err := s.In.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

// ask prints a prompt without a newline and reads the answer.
func (s *Session) ask(p colorPrinter, format string, a ...any) string {
	cPrintf(s.Out, p, format, a...)
	return s.readLine()
}

// askForConfirmation asks a y/N question. Anything containing a "y"
// counts as yes; everything else, including an empty line, is no.
func (s *Session) askForConfirmation(p colorPrinter, format string, a ...any) bool {
	answer := s.ask(p, format+" (y/N) ", a...)
	return strings.Contains(strings.ToLower(answer), "y")
}
