package presenter

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"osintify/recon"
)

// DefaultWidth is the column width long cell values are wrapped to.
const DefaultWidth = 60

var (
	titleColor   = color.New(color.FgGreen, color.Bold)
	messageColor = color.New(color.FgYellow)
	skipColor    = color.New(color.FgWhite)
	warningColor = color.New(color.FgRed)
)

// Grid renders results as grid tables, one per lookup.
type Grid struct {
	Out   io.Writer
	Width int
}

func New(out io.Writer) *Grid {
	return &Grid{Out: out, Width: DefaultWidth}
}

func (g *Grid) Present(title string, result recon.Result) {
	for _, warning := range result.Warnings {
		warningColor.Fprintln(g.Out, warning)
	}

	if result.IsDiagnostic() {
		titleColor.Fprint(g.Out, title)
		messageColor.Fprintf(g.Out, " %s\n\n", result.Message)
		return
	}

	titleColor.Fprintln(g.Out, title)

	table := tablewriter.NewWriter(g.Out)
	table.SetHeader(result.Headers)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetRowLine(true)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, row := range result.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = Wrap(cell, g.Width)
		}
		table.Append(cells)
	}
	table.Render()
	fmt.Fprintln(g.Out)
}

func (g *Grid) Skipped(notice string) {
	skipColor.Fprintf(g.Out, "%s\n\n", notice)
}

// Wrap folds text to lines of at most width runes. Words longer than width
// (URLs, PEM lines) are split hard.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		if strings.TrimSpace(paragraph) == "" {
			lines = append(lines, "")
			continue
		}

		wrapped, _ := tablewriter.WrapString(paragraph, width)
		for _, line := range wrapped {
			runes := []rune(line)
			for len(runes) > width {
				lines = append(lines, string(runes[:width]))
				runes = runes[width:]
			}
			lines = append(lines, string(runes))
		}
	}

	return strings.Join(lines, "\n")
}
