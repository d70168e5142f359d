package menu

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"slices"
	"strings"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input    string
		min      int
		max      int
		expected int
		err      error
	}{
		{"3", 1, 4, 3, nil},
		{" 4 ", 1, 4, 4, nil},
		{"+2", 1, 4, 2, nil},
		{"0", 1, 4, 0, errOutOfRange},
		{"5", 1, 4, 5, errOutOfRange},
		{"1000", 1, 0, 1000, nil},
		{"-1", 1, 0, -1, errOutOfRange},
		{"abc", 1, 4, 0, errNotNumber},
		{"", 1, 4, 0, errNotNumber},
		{"2.5", 1, 4, 0, errNotNumber},
	}

	for _, test := range tests {
		result, err := parseNumber(test.input, test.min, test.max)
		if !errors.Is(err, test.err) {
			t.Errorf("parseNumber(%q, %d, %d): expected error %v, got %v", test.input, test.min, test.max, test.err, err)
			continue
		}
		if err == nil && result != test.expected {
			t.Errorf("parseNumber(%q, %d, %d): expected %d, got %d", test.input, test.min, test.max, test.expected, result)
		}
	}
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		input    string
		count    int
		expected []int
		err      error
	}{
		{"1,2,3", 3, []int{1, 2, 3}, nil},
		{" 3 , 1 ", 3, []int{3, 1}, nil},
		{"2,,1,", 3, []int{2, 1}, nil},
		{"1,1", 2, []int{1, 1}, nil},
		{"", 3, nil, errNoSelection},
		{" , ", 3, nil, errNoSelection},
		{"1,4", 3, nil, errOutOfRange},
		{"0", 3, nil, errOutOfRange},
		{"1,x", 3, nil, errNotNumber},
	}

	for _, test := range tests {
		result, err := parseSelection(test.input, test.count)
		if !errors.Is(err, test.err) {
			t.Errorf("parseSelection(%q, %d): expected error %v, got %v", test.input, test.count, test.err, err)
			continue
		}
		if !slices.Equal(result, test.expected) {
			t.Errorf("parseSelection(%q, %d): expected %v, got %v", test.input, test.count, test.expected, result)
		}
	}
}

func TestReadLine(t *testing.T) {
	var out bytes.Buffer
	m := &Menu{Printer: NewPrinter(&out, false), in: bufio.NewReader(strings.NewReader("first\r\nlast"))}

	line, err := m.readLine("> ")
	if err != nil || line != "first" {
		t.Errorf("Expected 'first', got %q (err: %v)", line, err)
	}

	line, err = m.readLine("> ")
	if err != nil || line != "last" {
		t.Errorf("Expected 'last' without trailing newline, got %q (err: %v)", line, err)
	}

	if _, err := m.readLine("> "); !errors.Is(err, io.EOF) {
		t.Errorf("Expected io.EOF once input is exhausted, got %v", err)
	}

	if out.String() != "> > > " {
		t.Errorf("Expected prompts to be printed, got %q", out.String())
	}
}
