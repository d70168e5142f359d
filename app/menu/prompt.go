package menu

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	errNotNumber   = errors.New("not a number")
	errOutOfRange  = errors.New("number out of range")
	errNoSelection = errors.New("no file numbers given")
)

// parseNumber parses a whole number in [min, max]. A max below 1 leaves the
// range open above.
func parseNumber(input string, min, max int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, errNotNumber
	}
	if n < min || (max >= 1 && n > max) {
		return n, errOutOfRange
	}
	return n, nil
}

// parseSelection parses comma separated 1-based file numbers. Blank entries
// are ignored and repeats are kept.
func parseSelection(input string, count int) ([]int, error) {
	var selected []int
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, errNotNumber
		}
		selected = append(selected, n)
	}

	if len(selected) == 0 {
		return nil, errNoSelection
	}
	for _, n := range selected {
		if n < 1 || n > count {
			return nil, errOutOfRange
		}
	}
	return selected, nil
}

// readLine prints prompt and returns the next input line without its line
// break. io.EOF is returned only when no input is left at all.
func (m *Menu) readLine(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)

	line, err := m.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

type numberPrompt struct {
	prompt     string
	min        int
	max        int
	rangeMsg   string
	invalidMsg string
}

func (m *Menu) promptNumber(p numberPrompt) (int, error) {
	for {
		line, err := m.readLine(p.prompt)
		if err != nil {
			return 0, err
		}

		n, err := parseNumber(line, p.min, p.max)
		switch {
		case err == nil:
			return n, nil
		case errors.Is(err, errOutOfRange):
			fmt.Fprintln(m.out, p.rangeMsg)
		default:
			fmt.Fprintln(m.out, p.invalidMsg)
		}
	}
}

func (m *Menu) promptSelection(count int) ([]int, error) {
	fmt.Fprintln(m.out, "\nEnter file numbers to join (comma separated, e.g. 1,2,3):")
	for {
		line, err := m.readLine("> ")
		if err != nil {
			return nil, err
		}

		selected, err := parseSelection(line, count)
		switch {
		case err == nil:
			return selected, nil
		case errors.Is(err, errNoSelection):
			fmt.Fprintln(m.out, "Please enter at least one file number.")
		case errors.Is(err, errOutOfRange):
			fmt.Fprintf(m.out, "Please enter numbers between 1 and %d.\n", count)
		default:
			fmt.Fprintln(m.out, "Invalid input. Please enter numbers separated by commas.")
		}
	}
}
