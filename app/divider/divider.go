// Package divider splits a sequence of lines into contiguous parts of
// near-equal size.
package divider

import (
	"errors"
	"strings"
)

var (
	ErrInvalidParts = errors.New("number of parts must be at least 1")
	ErrEmptyInput   = errors.New("nothing to split: input has no lines")
)

// SplitLines breaks content into lines after each "\r\n", "\n" or lone
// "\r", keeping the terminator so parts can be written back byte for byte.
func SplitLines(content string) []string {
	var lines []string
	for content != "" {
		i := strings.IndexAny(content, "\r\n")
		if i < 0 {
			lines = append(lines, content)
			break
		}
		end := i + 1
		if content[i] == '\r' && end < len(content) && content[end] == '\n' {
			end++
		}
		lines = append(lines, content[:end])
		content = content[end:]
	}
	return lines
}

// PartSizes returns the size of each part when total lines are split into
// numParts parts. The first total%numParts parts carry one extra line.
func PartSizes(total, numParts int) []int {
	base := total / numParts
	remainder := total % numParts

	sizes := make([]int, numParts)
	for i := range sizes {
		sizes[i] = base
		if i < remainder {
			sizes[i]++
		}
	}
	return sizes
}

// Partition splits lines into numParts contiguous parts. When numParts
// exceeds the number of lines it is clamped to one line per part and
// clamped is reported as true.
func Partition(lines []string, numParts int) (parts [][]string, clamped bool, err error) {
	if numParts < 1 {
		return nil, false, ErrInvalidParts
	}
	if len(lines) == 0 {
		return nil, false, ErrEmptyInput
	}

	if numParts > len(lines) {
		numParts = len(lines)
		clamped = true
	}

	parts = make([][]string, 0, numParts)
	start := 0
	for _, size := range PartSizes(len(lines), numParts) {
		end := start + size
		parts = append(parts, lines[start:end:end])
		start = end
	}

	return parts, clamped, nil
}
