package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

var ErrInputClosed = errors.New("input closed")

const (
	// Unbounded ReadInt limits
	MinInt = math.MinInt
	MaxInt = math.MaxInt
)

// Prompter reads validated player input and writes game text.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	styles Styles
}

// NewPrompter creates a prompter reading from in and writing to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		styles: NewStyles(out),
	}
}

// Out returns the writer game text is printed to.
func (p *Prompter) Out() io.Writer {
	return p.out
}

// ReadLine prints prompt and returns the next line without its terminator.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", ErrInputClosed
			}
			// Last line without a trailing newline
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", fmt.Errorf("read input: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// ReadInt prompts until the player enters an integer in [min, max].
func (p *Prompter) ReadInt(prompt string, min, max int) (int, error) {
	for {
		line, err := p.ReadLine(prompt)
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			p.Println("Invalid input. Please enter a valid number.")
			continue
		}

		if value < min || value > max {
			p.Printf("Please enter a number between %d and %d.\n", min, max)
			continue
		}

		return value, nil
	}
}

// Confirm asks a y/n question. Any answer starting with y or Y is a yes.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	answer, err := p.ReadLine(prompt)
	if err != nil {
		return false, err
	}
	return answer != "" && (answer[0] == 'y' || answer[0] == 'Y'), nil
}

// Printf writes formatted text.
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Println writes a plain line.
func (p *Prompter) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

// Heading writes a section title preceded by a blank line.
func (p *Prompter) Heading(text string) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.styles.Heading.Render(text))
}

// Notice writes a neutral game event such as "Too high!".
func (p *Prompter) Notice(format string, args ...any) {
	fmt.Fprintln(p.out, p.styles.Notice.Render(fmt.Sprintf(format, args...)))
}

// Hint writes a hint line.
func (p *Prompter) Hint(format string, args ...any) {
	fmt.Fprintln(p.out, p.styles.Hint.Render(fmt.Sprintf(format, args...)))
}

// Success writes a winning line.
func (p *Prompter) Success(format string, args ...any) {
	fmt.Fprintln(p.out, p.styles.Success.Render(fmt.Sprintf(format, args...)))
}

// Failure writes a losing line.
func (p *Prompter) Failure(format string, args ...any) {
	fmt.Fprintln(p.out, p.styles.Failure.Render(fmt.Sprintf(format, args...)))
}

// Achievement writes an unlocked achievement.
func (p *Prompter) Achievement(format string, args ...any) {
	fmt.Fprintln(p.out, p.styles.Achievement.Render(fmt.Sprintf(format, args...)))
}
