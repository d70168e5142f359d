package menu

import (
	"errors"
	"fmt"
	"io"

	"github.com/lysyi3m/text-comb/app/divider"
	"github.com/lysyi3m/text-comb/app/joiner"
	"github.com/lysyi3m/text-comb/app/links"
	"github.com/lysyi3m/text-comb/app/ops"
	"github.com/lysyi3m/text-comb/app/workspace"
)

// Printer renders operation outcomes for the user.
type Printer struct {
	out    io.Writer
	styles Styles
}

func NewPrinter(out io.Writer, color bool) *Printer {
	return &Printer{out: out, styles: NewStyles(color)}
}

// EmptyOutcome maps the "nothing to do" conditions to their user message.
func EmptyOutcome(err error) (string, bool) {
	switch {
	case errors.Is(err, workspace.ErrNoTextFiles):
		return "No .txt files found in current directory.", true
	case errors.Is(err, links.ErrNoURLs):
		return "No URLs found in the file.", true
	case errors.Is(err, divider.ErrEmptyInput):
		return "File is empty.", true
	case errors.Is(err, joiner.ErrEmptyInput):
		return "All files are empty. No output created.", true
	default:
		return "", false
	}
}

// Outcome prints the summary of a finished operation or the reason it
// stopped. Empty input is a normal outcome and yields a nil error.
func (p *Printer) Outcome(summary *ops.Summary, err error) error {
	if err != nil {
		if message, ok := EmptyOutcome(err); ok {
			p.println("\n" + message)
			return nil
		}
		p.println("\n" + p.styles.Error.Render(fmt.Sprintf("Error: %v", err)))
		return err
	}

	switch summary.Operation {
	case ops.OperationExtract:
		p.extractSummary(summary)
	case ops.OperationDivide:
		p.divideSummary(summary)
	case ops.OperationJoin:
		p.joinSummary(summary)
	}
	return nil
}

func (p *Printer) Warn(message string) {
	p.println(p.styles.Warning.Render(message))
}

func (p *Printer) extractSummary(s *ops.Summary) {
	labels := map[string]string{
		ops.KindUserinfo: "Userinfo links",
		ops.KindPostinfo: "Postinfo links",
		ops.KindGarbage:  "Garbage links",
	}

	p.println("\nResults:")
	for _, output := range s.Outputs {
		p.println(p.styles.Success.Render(fmt.Sprintf("- %s saved to: %s", labels[output.Kind], output.Path)))
	}

	p.println(fmt.Sprintf("\nTotal URLs processed: %d", s.Counts["total"]))
	p.println(fmt.Sprintf("Unique URLs found: %d", s.Counts["unique"]))
}

func (p *Printer) divideSummary(s *ops.Summary) {
	for _, warning := range s.Warnings {
		p.println("")
		p.Warn("Warning: " + warning)
	}

	for i, output := range s.Outputs {
		p.println(fmt.Sprintf("Saved part %d with %d lines to %s", i+1, output.Lines, output.Path))
	}

	p.println("")
	p.println(p.styles.Success.Render(fmt.Sprintf("Successfully divided %s into %d parts.", s.Inputs[0], s.Counts["parts"])))
}

func (p *Printer) joinSummary(s *ops.Summary) {
	p.println(fmt.Sprintf("\nProcessed %d files with %d total lines.", s.Counts["files"], s.Counts["total_lines"]))

	if unique, ok := s.Output(ops.KindUnique); ok {
		p.println(p.styles.Success.Render(fmt.Sprintf("- Unique lines saved to: %s (%d lines)", unique.Path, unique.Lines)))
	}
	if duplicates, ok := s.Output(ops.KindDuplicates); ok {
		p.println(p.styles.Success.Render(fmt.Sprintf("- Duplicates saved to: %s (%d lines)", duplicates.Path, duplicates.Lines)))
	} else {
		p.println(p.styles.Muted.Render("- No duplicates found."))
	}
}

func (p *Printer) println(line string) {
	fmt.Fprintln(p.out, line)
}
