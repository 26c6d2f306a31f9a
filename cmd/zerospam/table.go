package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// column describes one table column. Numeric columns are right aligned.
type column struct {
	title   string
	numeric bool
}

// renderTable draws rows with the rounded style, keeping header case as
// given. Rows whose index is in highlight are painted red.
func renderTable(columns []column, rows [][]string, highlight map[int]bool) string {
	if len(columns) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault

	header := make(table.Row, len(columns))
	configs := make([]table.ColumnConfig, len(columns))
	for i, col := range columns {
		header[i] = col.title
		configs[i] = table.ColumnConfig{
			Number:      i + 1,
			Align:       alignFor(col),
			AlignHeader: text.AlignLeft,
		}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for idx, row := range rows {
		cells := make(table.Row, len(columns))
		for i := range cells {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			if highlight[idx] {
				cell = text.FgRed.Sprint(cell)
			}
			cells[i] = cell
		}
		tw.AppendRow(cells)
	}

	return tw.Render()
}

func alignFor(col column) text.Align {
	if col.numeric {
		return text.AlignRight
	}
	return text.AlignLeft
}
