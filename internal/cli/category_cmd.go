package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/xpcalc/internal/cli/formatter"
	"github.com/alexanderramin/xpcalc/internal/contract"
	"github.com/alexanderramin/xpcalc/internal/domain"
	"github.com/spf13/cobra"
)

type categoryCommand struct {
	use      string
	aliases  []string
	category domain.Category
}

// categoryCommands are the single-category calculators, one per category.
var categoryCommands = []categoryCommand{
	{"catch", []string{"catching"}, domain.CategoryCatching},
	{"evolve", []string{"evolution"}, domain.CategoryEvolution},
	{"hatch", []string{"hatching"}, domain.CategoryHatching},
	{"raid", []string{"raids"}, domain.CategoryRaids},
	{"max-battle", []string{"max-battles"}, domain.CategoryMaxBattle},
	{"max-moves", nil, domain.CategoryMaxMoves},
	{"friendship", []string{"friends"}, domain.CategoryFriendship},
}

func activityKeys(c domain.Category) []string {
	defs := domain.ActivitiesIn(c)
	keys := make([]string, len(defs))
	for i, def := range defs {
		keys[i] = string(def.Key)
	}
	return keys
}

func newCategoryCmd(app *App, def categoryCommand) *cobra.Command {
	var luckyEgg, asJSON bool

	cmd := &cobra.Command{
		Use:     def.use + " [name=value...]",
		Aliases: def.aliases,
		Short:   fmt.Sprintf("XP from %s activities", strings.ToLower(def.category.Label())),
		Long: fmt.Sprintf("XP from %s activities.\n\nActivities: %s",
			strings.ToLower(def.category.Label()), strings.Join(activityKeys(def.category), ", ")),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			keys := activityKeys(def.category)
			for i := range keys {
				keys[i] += "="
			}
			return keys, cobra.ShellCompDirectiveNoSpace
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := parseAssignments(args)
			if err != nil {
				return err
			}

			req := contract.CategoryRequest{
				Category: def.category,
				Counts:   counts,
				LuckyEgg: app.Defaults.LuckyEgg,
			}
			if cmd.Flags().Changed("lucky-egg") {
				req.LuckyEgg = luckyEgg
			}

			resp, err := app.Calc.CalculateCategory(cmd.Context(), req)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCategory(resp))
			return nil
		},
	}

	cmd.Flags().BoolVar(&luckyEgg, "lucky-egg", false, "Apply the Lucky Egg double-XP booster")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")

	return cmd
}
