// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/cofactor/matrix"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Align(lipgloss.Right).Padding(0, 1)
)

// formatCell renders v with a fixed number of decimals, or the shortest
// exact representation when precision is negative.
func formatCell(v float64, precision int) string {
	if precision < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strconv.FormatFloat(v, 'f', precision, 64)
}

// render writes m to w. Plain output with default precision is exactly
// m.String(), so scripts can rely on the library's display format.
func render(w io.Writer, m *matrix.Dense, pretty bool, precision int) error {
	if pretty {
		_, err := fmt.Fprintln(w, prettyTable(m, precision))
		return err
	}
	if precision < 0 {
		_, err := io.WriteString(w, m.String())
		return err
	}

	var sb strings.Builder
	for _, row := range m.Grid() {
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(formatCell(v, precision))
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

// prettyTable lays m out in a bordered table with column indices as headers.
func prettyTable(m *matrix.Dense, precision int) string {
	headers := make([]string, m.Cols())
	for j := range headers {
		headers[j] = strconv.Itoa(j)
	}

	rows := make([][]string, 0, m.Rows())
	for _, row := range m.Grid() {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = formatCell(v, precision)
		}
		rows = append(rows, cells)
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}
