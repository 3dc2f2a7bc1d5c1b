package pretty

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table formatting constants.
const (
	tablePadding     = 2
	minLastWidth     = 20
	heavySeparator   = "="
	defaultTermWidth = 100
)

// TableFormatter formats rows as an aligned table. The last column wraps
// to fit the terminal width.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{styles: styles, termWidth: termWidth}
}

// Format renders headers and rows. Rows shorter than headers are padded
// with empty cells.
func (t *TableFormatter) Format(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := t.columnWidths(headers, rows)

	var builder strings.Builder
	builder.WriteString(t.formatRow(headers, widths, t.styles.TableHeader))
	builder.WriteString(t.formatSeparator(widths))
	for _, row := range rows {
		builder.WriteString(t.formatRow(row, widths, lipgloss.NewStyle()))
	}
	builder.WriteString(t.formatSeparator(widths))
	return builder.String()
}

func (t *TableFormatter) columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = lipgloss.Width(header)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	last := len(widths) - 1
	used := 0
	for _, w := range widths[:last] {
		used += w + tablePadding
	}
	widths[last] = max(min(widths[last], t.termWidth-used), minLastWidth)
	return widths
}

func (t *TableFormatter) formatRow(row []string, widths []int, style lipgloss.Style) string {
	cells := make([]string, 0, 2*len(widths))
	for i, width := range widths {
		var cell string
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			cells = append(cells, strings.Repeat(" ", tablePadding))
		}
		cells = append(cells, style.Width(width).Render(cell))
	}

	joined := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	var builder strings.Builder
	for _, line := range strings.Split(joined, "\n") {
		builder.WriteString(strings.TrimRight(line, " "))
		builder.WriteString("\n")
	}
	return builder.String()
}

func (t *TableFormatter) formatSeparator(widths []int) string {
	total := 0
	for _, w := range widths {
		total += w
	}
	total += tablePadding * (len(widths) - 1)
	return t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, total)) + "\n"
}
