package ops

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/lysyi3m/text-comb/app/joiner"
	"github.com/lysyi3m/text-comb/app/workspace"
)

// Join merges files into {unique}_combined_unique.txt and, when any line
// repeats, {duplicates}_duplicates.txt. All files are read before anything
// is written.
func Join(ws *workspace.Workspace, files []string) (*Summary, error) {
	j := joiner.NewJoiner()
	for _, file := range files {
		content, err := ws.ReadText(file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		j.Add(joiner.Lines(content))
	}

	result, err := j.Result()
	if err != nil {
		return nil, err
	}

	summary := newSummary(OperationJoin, files...)

	uniqueName := fmt.Sprintf("%d_combined_unique.txt", len(result.Unique))
	if err := ws.WriteText(uniqueName, strings.Join(result.Unique, "\n")); err != nil {
		return nil, err
	}
	summary.Outputs = append(summary.Outputs, Output{Kind: KindUnique, Path: uniqueName, Lines: len(result.Unique)})

	if len(result.Duplicates) > 0 {
		duplicatesName := fmt.Sprintf("%d_duplicates.txt", len(result.Duplicates))
		if err := ws.WriteText(duplicatesName, strings.Join(result.Duplicates, "\n")); err != nil {
			return nil, err
		}
		summary.Outputs = append(summary.Outputs, Output{Kind: KindDuplicates, Path: duplicatesName, Lines: len(result.Duplicates)})
	}

	summary.Counts["files"] = len(files)
	summary.Counts["total_lines"] = result.TotalLines
	summary.Counts["unique"] = len(result.Unique)
	summary.Counts["duplicates"] = len(result.Duplicates)

	slog.Info("Files joined", "files", len(files), "total_lines", result.TotalLines, "unique", len(result.Unique), "duplicates", len(result.Duplicates))
	return summary, nil
}
