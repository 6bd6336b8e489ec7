package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Console is the line-based input source and output sink the flows talk to.
// It never depends on a real terminal: any reader/writer pair works, which
// is how tests script whole sessions.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole wraps the given input and output streams.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Print writes text verbatim to the output sink.
func (c *Console) Print(text string) {
	fmt.Fprint(c.out, text)
}

// Printf writes formatted text to the output sink.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// ReadLine prints the prompt and returns the next input line with
// surrounding whitespace trimmed. Navigation tokens are NOT interpreted;
// use Prompt for nav-aware reads.
//
// When the input source ends, the final unterminated line (if any) is
// returned once; after that ReadLine reports the wrapped io.EOF.
func (c *Console) ReadLine(prompt string) (string, error) {
	c.Print(prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", fmt.Errorf("input source closed: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Prompt reads a line like ReadLine but first checks for a navigation
// command. If the user typed one, Prompt returns a *NavError that the
// caller must propagate; the text result is only valid when err is nil.
func (c *Console) Prompt(prompt string) (string, error) {
	input, err := c.ReadLine(prompt)
	if err != nil {
		return "", err
	}
	if page, ok := ParseNavToken(input); ok {
		return "", &NavError{Target: page}
	}
	return input, nil
}
