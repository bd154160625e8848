package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the templates poline can find",
	Long: `Shows the directories searched for templates, the one in use, every
template that loaded and any file that was skipped.`,
	Args: cobra.NoArgs,
	RunE: listTemplates,
}

func listTemplates(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	cat, err := sess.Templates(cmd.Context())

	fmt.Fprintln(out, "Searched:")
	for _, dir := range cat.Searched {
		marker := " "
		if dir == cat.Dir {
			marker = "*"
		}
		fmt.Fprintf(out, " %s %s\n", marker, dir)
	}
	for _, w := range cat.Warnings {
		fmt.Fprintf(out, "skipped %s: %v\n", w.Path, w.Err)
	}
	if err != nil {
		return err
	}

	listing := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		Headers("NAME", "MATERIAL", "VENDOR", "DESCRIPTION").
		StyleFunc(func(row, col int) lipgloss.Style {
			return listingCell
		})
	for _, tpl := range cat.Set.All() {
		listing.Row(tpl.Name, tpl.MaterialType(), tpl.Vendor(), tpl.Description)
	}

	_, err = fmt.Fprintf(out, "\n%s\n", listing.Render())
	return err
}

var listingCell = lipgloss.NewStyle().PaddingRight(1)
