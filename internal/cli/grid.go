package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/kateryna-senchenko/textencryptor/pkg/cipher"
)

// gridCommand creates the grid command, which shows how text is laid out
// before the columns are read.
func (c *CLI) gridCommand() *cobra.Command {
	var input inputOpts

	cmd := &cobra.Command{
		Use:     "grid [text...]",
		Short:   "Show the grid used to encrypt text",
		Example: `  squarecode grid "chill out"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := c.readInput(args, input)
			if err != nil {
				return err
			}
			if text == nil {
				return noInputError()
			}
			g, err := cipher.NewGrid(cipher.Normalize(*text))
			if err != nil {
				return err
			}
			c.printGrid(g)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input.file, "file", "f", "", "read text from file (- for stdin)")
	return cmd
}

func (c *CLI) printGrid(g *cipher.Grid) {
	printKeyValue(c.Out, "Length", strconv.Itoa(g.Len()))
	printKeyValue(c.Out, "Grid", fmt.Sprintf("%d rows × %d columns", g.Rows(), g.Columns()))
	fmt.Fprintln(c.Out, renderGrid(g))
	printKeyValue(c.Out, "Encrypted", g.ReadColumns())
}

// renderGrid draws g as a bordered table. Unfilled cells show a dim dot.
func renderGrid(g *cipher.Grid) string {
	rows := make([][]string, g.Rows())
	for r := range rows {
		rows[r] = make([]string, g.Columns())
		for col := range rows[r] {
			if ch, ok := g.Cell(r, col); ok {
				rows[r][col] = string(ch)
			} else {
				rows[r][col] = iconEmpty
			}
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		BorderColumn(true).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if _, ok := g.Cell(row, col); ok {
				return styleCell
			}
			return styleEmptyCell
		}).
		Rows(rows...).
		String()
}
