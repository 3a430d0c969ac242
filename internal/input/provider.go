// Package input abstracts operator input so the pipeline's decision logic
// can run against a terminal, pre-supplied flag values, or deterministic
// defaults without a tty attached.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
)

// Provider supplies answers for the decisions a run cannot make on its own:
// ambiguous entry points and descriptive fields for new catalog entries.
type Provider interface {
	// Ask returns a value for the named field, or fallback when the
	// provider has nothing better.
	Ask(field, prompt, fallback string) (string, error)
	// Choose returns the index of the selected option. A negative index
	// means "no usable selection"; callers fall back deterministically.
	Choose(prompt string, options []string) (int, error)
}

// Terminal prompts interactively on the given reader/writer pair.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal builds an interactive provider over stdin/stderr.
func NewTerminal() *Terminal {
	return &Terminal{in: bufio.NewReader(os.Stdin), out: os.Stderr}
}

// NewTerminalWith builds an interactive provider over explicit streams.
func NewTerminalWith(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

func (t *Terminal) Ask(field, prompt, fallback string) (string, error) {
	if fallback != "" {
		fmt.Fprintf(t.out, "%s [%s]: ", prompt, fallback)
	} else {
		fmt.Fprintf(t.out, "%s: ", prompt)
	}
	line, err := t.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read %s: %w", field, err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return fallback, nil
	}
	return line, nil
}

func (t *Terminal) Choose(prompt string, options []string) (int, error) {
	fmt.Fprintln(t.out, prompt)
	for i, option := range options {
		fmt.Fprintf(t.out, "  %d) %s\n", i+1, option)
	}
	fmt.Fprintf(t.out, "Selection [1]: ")
	line, err := t.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return -1, fmt.Errorf("read selection: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > len(options) {
		return -1, nil
	}
	return n - 1, nil
}

// Static answers from pre-supplied values and never blocks. Missing answers
// yield the fallback, making it safe for non-interactive callers.
type Static struct {
	Answers map[string]string
	Choice  int
}

// NewStatic builds a provider from pre-supplied field answers.
func NewStatic(answers map[string]string) *Static {
	return &Static{Answers: answers, Choice: -1}
}

func (s *Static) Ask(field, _ string, fallback string) (string, error) {
	if v, ok := s.Answers[field]; ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v), nil
	}
	return fallback, nil
}

func (s *Static) Choose(_ string, options []string) (int, error) {
	if s.Choice >= 0 && s.Choice < len(options) {
		return s.Choice, nil
	}
	return -1, nil
}

// Interactive reports whether stdin is attached to a terminal; prompting a
// non-terminal stdin would block a scripted caller forever.
func Interactive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
