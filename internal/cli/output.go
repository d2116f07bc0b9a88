// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/contagion/dataset"
	"github.com/katalvlaran/contagion/report"
)

var (
	styleHeader = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	styleCell   = lipgloss.NewStyle().Padding(0, 1)
	styleNumber = styleCell.Align(lipgloss.Right)
	styleBorder = lipgloss.NewStyle().Foreground(lipgloss.Color("#636363"))
)

// row is one ranked node as printed by estimate and simulate.
type row struct {
	Rank       int      `json:"rank"`
	Node       int      `json:"node"`
	Label      string   `json:"label"`
	Score      float64  `json:"score"`
	Raw        float64  `json:"raw"`
	Steps      *int     `json:"steps,omitempty"`
	MeanSpread *float64 `json:"meanSpread,omitempty"`
	StdErr     *float64 `json:"stdErr,omitempty"`
	PageRank   *float64 `json:"pagerank,omitempty"`
}

// rows takes the top k entries of rep and decorates them with labels, the
// engine-specific detail rep carries, and an optional baseline score.
func rows(rep *report.Report, ds *dataset.Dataset, k int, pagerank *report.Report) []row {
	top := rep.Top(k)
	out := make([]row, len(top))
	for i, e := range top {
		r := row{Rank: e.Rank, Node: e.Node, Label: ds.Label(e.Node), Score: e.Score, Raw: e.Raw}
		if rep.Steps != nil {
			r.Steps = &rep.Steps[e.Node]
		}
		if rep.MeanSpread != nil {
			r.MeanSpread = &rep.MeanSpread[e.Node]
		}
		if rep.StdErr != nil {
			r.StdErr = &rep.StdErr[e.Node]
		}
		if pagerank != nil {
			r.PageRank = &pagerank.Scores[e.Node]
		}
		out[i] = r
	}

	return out
}

// writeRows renders rows as "table" or "json".
func writeRows(w io.Writer, format string, rs []row) error {
	switch strings.ToLower(format) {
	case "json":
		return writeJSON(w, rs)
	case "table":
		return writeRowTable(w, rs)
	default:
		return fmt.Errorf("%w: unknown output format %q (want table or json)", errUsage, format)
	}
}

func writeRowTable(w io.Writer, rs []row) error {
	headers := []string{"Rank", "Node", "Label", "Score", "Raw"}
	if len(rs) > 0 {
		if rs[0].Steps != nil {
			headers = append(headers, "Steps")
		}
		if rs[0].MeanSpread != nil {
			headers = append(headers, "Mean", "StdErr")
		}
		if rs[0].PageRank != nil {
			headers = append(headers, "PageRank")
		}
	}

	data := make([][]string, len(rs))
	for i, r := range rs {
		cells := []string{
			strconv.Itoa(r.Rank),
			strconv.Itoa(r.Node),
			r.Label,
			formatFloat(r.Score),
			formatFloat(r.Raw),
		}
		if r.Steps != nil {
			cells = append(cells, strconv.Itoa(*r.Steps))
		}
		if r.MeanSpread != nil {
			cells = append(cells, formatFloat(*r.MeanSpread), formatFloat(*r.StdErr))
		}
		if r.PageRank != nil {
			cells = append(cells, formatFloat(*r.PageRank))
		}
		data[i] = cells
	}

	return writeTable(w, headers, data, 2)
}

// writeTable prints a bordered table; columns other than textCol are
// right-aligned.
func writeTable(w io.Writer, headers []string, data [][]string, textCol int) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styleBorder).
		Headers(headers...).
		Rows(data...).
		StyleFunc(func(r, c int) lipgloss.Style {
			switch {
			case r == table.HeaderRow:
				return styleHeader
			case c == textCol:
				return styleCell
			default:
				return styleNumber
			}
		})

	_, err := fmt.Fprintln(w, t.Render())

	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 6, 64)
}
