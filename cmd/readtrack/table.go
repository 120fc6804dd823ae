package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// tableView describes one rendered table. Footer is optional.
type tableView struct {
	Title   string
	Headers []string
	Aligns  []columnAlignment
	Rows    [][]string
	Footer  []string
}

func toRow(values []string, columns int) table.Row {
	row := make(table.Row, columns)
	for i := range columns {
		if i < len(values) {
			row[i] = values[i]
		} else {
			row[i] = ""
		}
	}
	return row
}

func renderTable(view tableView) string {
	columns := len(view.Headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if view.Title != "" {
		tw.SetTitle(view.Title)
	}
	tw.AppendHeader(toRow(view.Headers, columns))
	for _, row := range view.Rows {
		tw.AppendRow(toRow(row, columns))
	}
	if len(view.Footer) > 0 {
		tw.AppendFooter(toRow(view.Footer, columns))
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := range columns {
		align := text.AlignLeft
		if i < len(view.Aligns) && view.Aligns[i] == alignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:           i + 1,
			Align:            align,
			AlignFooter:      align,
			AlignHeader:      text.AlignLeft,
			WidthMax:         48,
			WidthMaxEnforcer: text.WrapSoft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}
