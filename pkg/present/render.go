package present

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	ColorAccent = lipgloss.Color("#bb9af7")
	ColorField  = lipgloss.Color("#7dcfff")
	ColorMuted  = lipgloss.Color("#565f89")

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1)

	FieldStyle = lipgloss.NewStyle().
			Foreground(ColorField).
			Width(20).
			Padding(0, 1)

	ValueStyle = lipgloss.NewStyle().
			Width(52).
			Padding(0, 1)
)

// Render draws the summary table to w.
func Render(w io.Writer, rows []Row) error {
	body := make([][]string, 0, len(rows))
	for _, row := range rows {
		body = append(body, []string{row.Field, row.Value})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorMuted)).
		Headers("Field", "Value").
		Rows(body...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return HeaderStyle
			case col == 0:
				return FieldStyle
			default:
				return ValueStyle
			}
		})

	_, err := fmt.Fprintf(w, "%s\n%s\n", TitleStyle.Render("Order Summary"), t.Render())
	return err
}
