package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/bindle-dev/bindle/pkg/build"
	"github.com/pterm/pterm"
)

// RenderSummary renders a completed build as a table of emitted assets
func RenderSummary(result *build.Result, format Format) string {
	if Detect(format) == FormatText {
		var b strings.Builder
		for _, asset := range result.Assets {
			fmt.Fprintf(&b, "%s\t%d bytes\t[%s]\n", asset.Path, asset.Size, strings.Join(asset.Steps, " "))
		}
		fmt.Fprintf(&b, "%d asset(s) in %s\n", len(result.Assets), result.Duration.Round(time.Millisecond))
		return b.String()
	}

	data := pterm.TableData{{"Asset", "Size", "Steps"}}
	for _, asset := range result.Assets {
		data = append(data, []string{
			asset.Path,
			fmt.Sprintf("%d", asset.Size),
			strings.Join(asset.Steps, ", "),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		// Styled rendering is best-effort; fall back to plain text
		return RenderSummary(result, FormatText)
	}

	footer := pterm.FgGreen.Sprintf("%d asset(s) in %s", len(result.Assets), result.Duration.Round(time.Millisecond))
	return table + "\n" + footer + "\n"
}
