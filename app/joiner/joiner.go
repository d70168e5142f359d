package joiner

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

var ErrEmptyInput = errors.New("all input files are empty")

type Result struct {
	Unique     []string // every distinct line, sorted
	Duplicates []string // lines seen more than once, sorted
	TotalLines int      // non-empty line occurrences before deduplication
}

type Joiner struct {
	seen       map[string]struct{}
	duplicates map[string]struct{}
	total      int
}

func NewJoiner() *Joiner {
	return &Joiner{
		seen:       make(map[string]struct{}),
		duplicates: make(map[string]struct{}),
	}
}

// Lines splits content on any line break. Lone carriage returns count as
// breaks too.
func Lines(content string) []string {
	return strings.FieldsFunc(content, func(r rune) bool {
		return r == '\n' || r == '\r'
	})
}

// Add records lines in order. Lines are trimmed and blank ones skipped.
func (j *Joiner) Add(lines []string) {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if _, ok := j.seen[line]; ok {
			j.duplicates[line] = struct{}{}
		} else {
			j.seen[line] = struct{}{}
		}
		j.total++
	}
}

func (j *Joiner) Result() (*Result, error) {
	if j.total == 0 {
		return nil, ErrEmptyInput
	}

	return &Result{
		Unique:     slices.Sorted(maps.Keys(j.seen)),
		Duplicates: slices.Sorted(maps.Keys(j.duplicates)),
		TotalLines: j.total,
	}, nil
}

// Join merges the lines of files, given in file order.
func Join(files [][]string) (*Result, error) {
	j := NewJoiner()
	for _, lines := range files {
		j.Add(lines)
	}
	return j.Result()
}
