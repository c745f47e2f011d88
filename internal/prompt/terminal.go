package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrCancelled is returned when input ends or the user types q/quit.
	ErrCancelled = errors.New("cancelled")
	// ErrInvalidSelection is returned for an answer that is neither a valid
	// number nor one of the options.
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrNoOptions is returned when Select is called with nothing to choose.
	ErrNoOptions = errors.New("no options to choose from")
)

// Terminal reads answers line by line from r and writes menus to w.
type Terminal struct {
	reader *bufio.Reader
	w      io.Writer
}

// NewTerminal returns a Terminal over r and w.
func NewTerminal(r io.Reader, w io.Writer) *Terminal {
	return &Terminal{reader: bufio.NewReader(r), w: w}
}

// Select presents a numbered list and returns the chosen option text. The
// answer may be the exact option text or a number in range.
func (t *Terminal) Select(label string, options []string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("%s %w", label, ErrNoOptions)
	}

	fmt.Fprintf(t.w, "\n%s\n", label)
	for i, item := range options {
		fmt.Fprintf(t.w, "  %d) %s\n", i+1, item)
	}
	fmt.Fprintf(t.w, "Enter number [1-%d]: ", len(options))

	answer, err := t.readLine()
	if err != nil {
		return "", err
	}

	// Option text wins over position so numeric labels such as "2023" can
	// be typed as shown.
	for _, item := range options {
		if item == answer {
			return item, nil
		}
	}

	if num, convErr := strconv.Atoi(answer); convErr == nil && num >= 1 && num <= len(options) {
		return options[num-1], nil
	}
	return "", fmt.Errorf("%w %q: choose 1-%d", ErrInvalidSelection, answer, len(options))
}

// Ask prints label and returns the trimmed answer.
func (t *Terminal) Ask(label string) (string, error) {
	fmt.Fprintf(t.w, "\n%s ", label)
	return t.readLine()
}

// readLine returns the next trimmed line. A final line without a newline is
// still returned; EOF with nothing read is a cancellation.
func (t *Terminal) readLine() (string, error) {
	line, err := t.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", ErrCancelled
	}

	answer := strings.TrimSpace(line)
	switch strings.ToLower(answer) {
	case "q", "quit":
		return "", ErrCancelled
	}
	return answer, nil
}
