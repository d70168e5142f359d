// Package menu implements the interactive console front end: a numbered
// menu dispatching to the extract, divide and join operations.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/lysyi3m/text-comb/app/links"
	"github.com/lysyi3m/text-comb/app/ops"
	"github.com/lysyi3m/text-comb/app/report"
	"github.com/lysyi3m/text-comb/app/workspace"
)

const (
	choiceExtract = 1
	choiceDivide  = 2
	choiceJoin    = 3
	choiceExit    = 4
)

type Menu struct {
	*Printer

	in        *bufio.Reader
	ws        *workspace.Workspace
	reporter  *report.Writer
	outputDir string
	clear     bool
}

func New(in io.Reader, out io.Writer, ws *workspace.Workspace, reporter *report.Writer, outputDir string, color bool) *Menu {
	return &Menu{
		Printer:   NewPrinter(out, color),
		in:        bufio.NewReader(in),
		ws:        ws,
		reporter:  reporter,
		outputDir: outputDir,
		clear:     isTerminal(out),
	}
}

// Run shows the menu until the user exits, input ends or ctx is cancelled.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.clearScreen()
		m.println(m.styles.Banner.Render(m.styles.Title.Render("TEXT TOOLS") + "\n\n" +
			"1. Link Extractor\n" +
			"2. Text Divider\n" +
			"3. Text Joiner\n" +
			"4. Exit"))

		choice, err := m.promptNumber(numberPrompt{
			prompt:     "\nEnter your choice (1-4): ",
			min:        choiceExtract,
			max:        choiceExit,
			rangeMsg:   "Please enter a number between 1 and 4.",
			invalidMsg: "Invalid input. Please enter a number.",
		})
		if err != nil {
			return m.endOfInput(err)
		}

		switch choice {
		case choiceExtract:
			err = m.extractLinks()
		case choiceDivide:
			err = m.divideText()
		case choiceJoin:
			err = m.joinText()
		case choiceExit:
			m.println("\nGoodbye!")
			return nil
		}
		if err != nil {
			return m.endOfInput(err)
		}
	}
}

func (m *Menu) extractLinks() error {
	m.clearScreen()
	m.println(m.styles.banner("LINK EXTRACTOR"))

	files, ok := m.listFiles()
	if !ok {
		return m.pause()
	}

	file, err := m.selectFile(files)
	if err != nil {
		return err
	}

	content, err := m.ws.ReadText(file)
	if err != nil {
		m.finish(nil, err)
		return m.pause()
	}

	include, err := m.readLine("Enter keywords to include (comma separated, leave empty for none): ")
	if err != nil {
		return err
	}
	exclude, err := m.readLine("Enter keywords to exclude (comma separated, leave empty for none): ")
	if err != nil {
		return err
	}

	summary, err := ops.ExtractText(m.ws, file, content, links.NewFilter(include, exclude))
	m.finish(summary, err)
	return m.pause()
}

func (m *Menu) divideText() error {
	m.clearScreen()
	m.println(m.styles.banner("TEXT DIVIDER"))

	files, ok := m.listFiles()
	if !ok {
		return m.pause()
	}

	file, err := m.selectFile(files)
	if err != nil {
		return err
	}

	parts, err := m.promptNumber(numberPrompt{
		prompt:     "\nEnter number of parts to divide into: ",
		min:        1,
		rangeMsg:   "Number must be at least 1.",
		invalidMsg: "Invalid input. Please enter a positive integer.",
	})
	if err != nil {
		return err
	}

	summary, err := ops.Divide(m.ws, file, parts, m.outputDir)
	m.finish(summary, err)
	return m.pause()
}

func (m *Menu) joinText() error {
	m.clearScreen()
	m.println(m.styles.banner("TEXT JOINER"))

	files, ok := m.listFiles()
	if !ok {
		return m.pause()
	}

	selected, err := m.promptSelection(len(files))
	if err != nil {
		return err
	}

	names := make([]string, 0, len(selected))
	for _, n := range selected {
		names = append(names, files[n-1].Name)
	}

	summary, err := ops.Join(m.ws, names)
	m.finish(summary, err)
	return m.pause()
}

func (m *Menu) listFiles() ([]workspace.TextFile, bool) {
	files, err := m.ws.ListTextFiles()
	if err != nil {
		m.Outcome(nil, err)
		return nil, false
	}

	m.println("\nAvailable text files:")
	for i, file := range files {
		m.println(fmt.Sprintf("%d. %s %s", i+1, file.Name, m.styles.Muted.Render("("+humanize.Bytes(uint64(file.Size))+")")))
	}
	return files, true
}

func (m *Menu) selectFile(files []workspace.TextFile) (string, error) {
	n, err := m.promptNumber(numberPrompt{
		prompt:     "\nEnter file number to process: ",
		min:        1,
		max:        len(files),
		rangeMsg:   fmt.Sprintf("Please enter a number between 1 and %d.", len(files)),
		invalidMsg: "Invalid input. Please enter a number.",
	})
	if err != nil {
		return "", err
	}
	return files[n-1].Name, nil
}

func (m *Menu) finish(summary *ops.Summary, err error) {
	if err := m.Outcome(summary, err); err != nil {
		slog.Debug("Operation failed", "error", err)
		return
	}
	if summary == nil {
		return
	}

	if err := m.reporter.Append(summary); err != nil {
		slog.Warn("Failed to write report", "error", err)
		m.Warn(fmt.Sprintf("Failed to write report: %v", err))
	}
}

func (m *Menu) pause() error {
	_, err := m.readLine("\nPress Enter to return to menu...")
	return err
}

// endOfInput treats exhausted input as a request to exit.
func (m *Menu) endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		m.println("\nGoodbye!")
		return nil
	}
	return err
}

func (m *Menu) clearScreen() {
	if m.clear {
		fmt.Fprint(m.out, "\033[H\033[2J")
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
