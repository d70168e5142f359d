// Package report appends operation summaries to a YAML file, one document
// per completed operation.
package report

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lysyi3m/text-comb/app/ops"
)

type entry struct {
	CompletedAt time.Time `yaml:"completed_at"`
	ops.Summary `yaml:",inline"`
}

type Writer struct {
	path string
	now  func() time.Time
}

// NewWriter returns a writer appending to path. An empty path disables
// reporting.
func NewWriter(path string) *Writer {
	return &Writer{path: path, now: time.Now}
}

func (w *Writer) Enabled() bool {
	return w != nil && w.path != ""
}

func (w *Writer) Append(summary *ops.Summary) error {
	if !w.Enabled() || summary == nil {
		return nil
	}

	data, err := yaml.Marshal(entry{CompletedAt: w.now().UTC(), Summary: *summary})
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open report %s: %w", w.path, err)
	}
	defer f.Close()

	if _, err := f.Write(append([]byte("---\n"), data...)); err != nil {
		return fmt.Errorf("failed to write report %s: %w", w.path, err)
	}
	return nil
}
