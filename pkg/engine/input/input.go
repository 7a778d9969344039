package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInputClosed is returned once the input stream has ended or the player aborted
var ErrInputClosed = errors.New("input closed")

// Chooser asks the player to pick one of several options.
// A nil error guarantees 0 <= index < len(options).
type Chooser interface {
	Choose(prompt string, options []string) (int, error)
}

// LinePrompt is a line based Chooser that prints numbered options and reads the
// chosen number, prompting again until the answer is valid
type LinePrompt struct {
	reader *bufio.Reader
	out    io.Writer

	// Shown when the answer is not a number
	InvalidNumber string
	// Shown when the number is not one of the listed options
	OutOfRange string
}

// Ensure LinePrompt implements Chooser
var _ Chooser = (*LinePrompt)(nil)

// NewLinePrompt creates a prompt reading answers from in and printing to out
func NewLinePrompt(in io.Reader, out io.Writer) *LinePrompt {
	return &LinePrompt{
		reader:        bufio.NewReader(in),
		out:           out,
		InvalidNumber: "Couldn't convert choice to integer",
		OutOfRange:    "Choice number not within bounds",
	}
}

// Choose prints the prompt and options as "0 - option" lines and returns the chosen index
func (p *LinePrompt) Choose(prompt string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("choose %q: no options", prompt)
	}

	for {
		fmt.Fprintln(p.out, prompt)
		for i, opt := range options {
			fmt.Fprintf(p.out, "%d - %s\n", i, opt)
		}
		fmt.Fprint(p.out, "\n> ")

		line, err := p.readLine()
		if err != nil {
			return 0, err
		}

		choice, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(p.out, p.InvalidNumber)
			continue
		}
		if choice < 0 || choice >= len(options) {
			fmt.Fprintln(p.out, p.OutOfRange)
			continue
		}

		return choice, nil
	}
}

// ReadName prints prompt and reads lines until a non-blank one arrives, returning it trimmed
func (p *LinePrompt) ReadName(prompt string) (string, error) {
	for {
		fmt.Fprint(p.out, prompt)

		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
	}
}

// readLine returns the next trimmed line. A final line without newline is still returned.
func (p *LinePrompt) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
