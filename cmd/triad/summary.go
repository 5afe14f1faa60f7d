// SPDX-License-Identifier: MIT

package main

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/triad/internal/app"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var summaryHeaders = []string{"Project", "Approach", "Links", "Precision", "Recall", "F1", "MAP", "Wilcoxon p", "Cliff's δ", "Status"}

const statusColumn = 9

// renderSummary draws one table row per project result.
func renderSummary(results []app.Result) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, summaryRow(r))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(summaryHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == statusColumn && results[row].Err != nil:
				return failStyle
			default:
				return cellStyle
			}
		})
	return t.String()
}

func summaryRow(r app.Result) []string {
	row := []string{r.Project, r.Approach, "-", "-", "-", "-", "-", "-", "-", "ok"}
	if r.Err != nil {
		row[statusColumn] = "failed: " + r.Err.Error()
		return row
	}
	row[2] = strconv.Itoa(r.Links)
	if !r.Evaluated {
		row[statusColumn] = "not evaluated"
		return row
	}
	row[3], row[4], row[5], row[6] = f4(r.PRF.Precision), f4(r.PRF.Recall), f4(r.PRF.F1), f4(r.MAP)
	if c := r.Comparison; c != nil {
		if c.Skipped {
			row[7], row[8] = "skipped", "skipped"
		} else {
			row[7], row[8] = f4(c.PValue), f4(c.CliffsDelta)
		}
	}
	return row
}

func f4(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }
