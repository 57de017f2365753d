package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-htoprc/internal/util"
)

const minValueWidth = 12

type TableFormatter struct {
	headers  []string
	color    bool
	maxWidth int
}

// NewTableFormatter sizes the table to the terminal width.
func NewTableFormatter(color bool) *TableFormatter {
	return &TableFormatter{
		headers:  []string{"Key", "Value", "Default"},
		color:    color,
		maxWidth: util.TerminalWidth(),
	}
}

func (f *TableFormatter) Format(w io.Writer, report Report) error {
	if report.Path != "" {
		fmt.Fprintln(w, util.Colorize(report.Path, util.ColorBold, f.color))
	}

	widths := f.calculateColumnWidths(report.Rows)

	f.printBorder(w, widths, "top")
	f.printRow(w, f.headers, widths, "")
	f.printBorder(w, widths, "middle")

	section := ""
	for _, row := range report.Rows {
		if section != "" && row.Section != section {
			f.printBorder(w, widths, "middle")
		}
		section = row.Section

		color := ""
		switch {
		case row.Section == SectionUnknown:
			color = util.ColorYellow
		case row.Changed && row.Section == SectionOption:
			color = util.ColorGreen
		}
		f.printRow(w, []string{row.Key, row.Value, row.Default}, widths, color)
	}

	f.printBorder(w, widths, "bottom")

	for _, d := range report.Result.Diagnostics {
		fmt.Fprintln(w, util.Colorize("warning: "+d.String(), util.ColorYellow, f.color))
	}
	return nil
}

// calculateColumnWidths fits key and default columns to their content and
// gives the value column whatever terminal width is left.
func (f *TableFormatter) calculateColumnWidths(rows []Row) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = util.GetDisplayWidth(header)
	}
	for _, row := range rows {
		for i, value := range []string{row.Key, row.Value, row.Default} {
			if w := util.GetDisplayWidth(value); w > widths[i] {
				widths[i] = w
			}
		}
	}

	// Each column has two padding spaces plus one border character.
	budget := f.maxWidth - 1 - 3*len(widths)
	if over := widths[0] + widths[1] + widths[2] - budget; over > 0 {
		widths[1] = max(minValueWidth, widths[1]-over)
		if rest := widths[0] + widths[1] + widths[2] - budget; rest > 0 {
			widths[2] = max(minValueWidth, widths[2]-rest)
		}
	}
	return widths
}

func (f *TableFormatter) printBorder(w io.Writer, widths []int, borderType string) {
	var left, middle, right string

	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	case "bottom":
		left, middle, right = "└", "┴", "┘"
	}

	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = strings.Repeat("─", width+2)
	}
	fmt.Fprintln(w, left+strings.Join(parts, middle)+right)
}

func (f *TableFormatter) printRow(w io.Writer, values []string, widths []int, color string) {
	cells := make([]string, len(values))
	for i, value := range values {
		cell := util.PadString(util.Truncate(value, widths[i]), widths[i], true)
		if color != "" && i == 0 {
			cell = util.Colorize(cell, color, f.color)
		}
		cells[i] = " " + cell + " "
	}
	fmt.Fprintln(w, "│"+strings.Join(cells, "│")+"│")
}
