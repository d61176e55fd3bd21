package ui

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Table renders a bordered, left-aligned table.
func Table(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetBorder(true)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(rows)
	table.Render()
}

// Float formats v with four decimals.
func Float(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }

// Int formats v in base 10.
func Int[T ~int | ~int64 | ~uint32 | ~uint64](v T) string { return strconv.FormatInt(int64(v), 10) }
