package ops

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/lysyi3m/text-comb/app/divider"
	"github.com/lysyi3m/text-comb/app/workspace"
)

const DefaultOutputDir = "output"

// Divide splits file into numParts parts written to
// {outputDir}/{stem}_part{i}.txt. Nothing is created when the file has no
// lines.
func Divide(ws *workspace.Workspace, file string, numParts int, outputDir string) (*Summary, error) {
	if numParts < 1 {
		return nil, divider.ErrInvalidParts
	}
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}

	content, err := ws.ReadRawText(file)
	if err != nil {
		return nil, err
	}

	lines := divider.SplitLines(content)
	parts, clamped, err := divider.Partition(lines, numParts)
	if err != nil {
		return nil, err
	}

	summary := newSummary(OperationDivide, file)
	if clamped {
		warning := fmt.Sprintf("File has only %d lines, which is fewer than requested %d parts.", len(lines), numParts)
		summary.Warnings = append(summary.Warnings, warning)
		slog.Warn("Requested parts clamped to line count", "file", file, "requested", numParts, "lines", len(lines))
	}

	if err := ws.MkdirAll(outputDir); err != nil {
		return nil, err
	}

	base := filepath.Base(file)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	for i, part := range parts {
		name := filepath.Join(outputDir, fmt.Sprintf("%s_part%d.txt", stem, i+1))
		if err := ws.WriteText(name, strings.Join(part, "")); err != nil {
			return nil, err
		}
		summary.Outputs = append(summary.Outputs, Output{Kind: KindPart, Path: name, Lines: len(part)})
	}

	summary.Counts["lines"] = len(lines)
	summary.Counts["parts"] = len(parts)
	summary.Counts["requested_parts"] = numParts

	slog.Info("File divided", "file", file, "lines", len(lines), "parts", len(parts))
	return summary, nil
}
