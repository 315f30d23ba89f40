package cli

import (
	"fmt"

	"github.com/alexanderramin/xpcalc/internal/cli/formatter"
	"github.com/alexanderramin/xpcalc/internal/contract"
	"github.com/spf13/cobra"
)

func newLevelsCmd(app *App) *cobra.Command {
	var highlight int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "levels",
		Short: "Show the cumulative XP required for each level",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := app.Calc.Levels(cmd.Context())
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), rows)
			}
			if !cmd.Flags().Changed("highlight") {
				highlight = app.Defaults.CurrentLevel
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLevelTable(rows, highlight))
			return nil
		},
	}

	cmd.Flags().IntVar(&highlight, "highlight", 0, "Mark a level in the table (default: configured current level)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the table as JSON")

	return cmd
}

func newRatesCmd(app *App) *cobra.Command {
	var category string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Show the XP awarded per activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := app.Calc.Rates(cmd.Context())
			if category != "" {
				cat, err := contract.ResolveCategory(category)
				if err != nil {
					return err
				}
				filtered := rows[:0:0]
				for _, row := range rows {
					if row.Category == cat {
						filtered = append(filtered, row)
					}
				}
				rows = filtered
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), rows)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRateTable(rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only show one category")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the table as JSON")

	return cmd
}
