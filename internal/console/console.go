package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/connectfour-go/internal/model"
)

// Console is a line-oriented text terminal
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Console reading from in and writing to out
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Out returns the writer the console prints to
func (c *Console) Out() io.Writer {
	return c.out
}

// ReadLine reads one line without its line ending.
// A final unterminated line is returned as-is; after that ReadLine
// returns model.ErrInputClosed.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", model.ErrInputClosed
			}
			return strings.TrimRight(line, "\r"), nil
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Prompt writes the prompt without a newline and reads the reply
func (c *Console) Prompt(prompt string) (string, error) {
	c.Print(prompt)
	return c.ReadLine()
}

// Print writes text as-is
func (c *Console) Print(text string) {
	_, _ = io.WriteString(c.out, text)
}

// Println writes text followed by a newline
func (c *Console) Println(text string) {
	_, _ = fmt.Fprintln(c.out, text)
}

// Printf writes formatted text
func (c *Console) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}
