package ops

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/lysyi3m/text-comb/app/links"
	"github.com/lysyi3m/text-comb/app/workspace"
)

// Extract classifies the URLs found in file and writes one
// {count}_{category}.txt file per non-empty category.
func Extract(ws *workspace.Workspace, file string, filter *links.Filter) (*Summary, error) {
	content, err := ws.ReadText(file)
	if err != nil {
		return nil, err
	}
	return ExtractText(ws, file, content, filter)
}

// ExtractText is Extract for content already read from file.
func ExtractText(ws *workspace.Workspace, file, content string, filter *links.Filter) (*Summary, error) {
	result, err := links.NewExtractor(filter).Run(content)
	if err != nil {
		return nil, err
	}

	summary := newSummary(OperationExtract, file)
	for _, category := range links.Categories {
		urls := result.Links(category)
		summary.Counts[string(category)] = len(urls)
		if len(urls) == 0 {
			continue
		}

		name := fmt.Sprintf("%d_%s.txt", len(urls), category)
		if err := ws.WriteText(name, strings.Join(urls, "\n")); err != nil {
			return nil, err
		}
		summary.Outputs = append(summary.Outputs, Output{Kind: string(category), Path: name, Lines: len(urls)})
	}
	summary.Counts["total"] = result.Total
	summary.Counts["unique"] = result.Unique

	slog.Info("Links extracted", "file", file, "total", result.Total, "unique", result.Unique)
	return summary, nil
}
