package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alexanderramin/xpcalc/internal/cli/formatter"
	"github.com/alexanderramin/xpcalc/internal/contract"
	"github.com/alexanderramin/xpcalc/internal/domain"
	"github.com/spf13/cobra"
)

func newCalcCmd(app *App) *cobra.Command {
	counts := newCountsFlag()
	var (
		luckyEgg     bool
		currentLevel int
		currentXP    int64
		targetLevel  int
		targetDate   string
		targetDays   int64
		noTimeline   bool
		asJSON       bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate daily XP, the level it reaches and the pace to a target level",
		Example: `  xpcalc calc --count normal_catches=30 --count curve_balls=20 --lucky-egg
  xpcalc calc --count km_10_eggs=2 --current-level 30 --target-level 40 --target-days 60`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.baseRequest()
			req.Counts = counts.counts

			flags := cmd.Flags()
			if flags.Changed("lucky-egg") {
				req.LuckyEgg = luckyEgg
			}
			if flags.Changed("current-level") {
				req.CurrentLevel = currentLevel
			}
			if flags.Changed("current-xp") {
				req.CurrentXP = currentXP
			}
			if flags.Changed("target-level") {
				req.TargetLevel = targetLevel
			}
			if flags.Changed("target-date") {
				if _, err := contract.ParseTargetDate(targetDate, req.Now.Location()); err != nil {
					return err
				}
				req.TargetMode = domain.TargetByDate
				req.TargetDate = targetDate
			}
			if flags.Changed("target-days") {
				req.TargetMode = domain.TargetByDays
				req.TargetDays = targetDays
			}
			if noTimeline {
				req.UseTimeline = false
			}

			resp, err := app.Calc.Calculate(cmd.Context(), req)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCalculation(resp))
			return nil
		},
	}

	cmd.Flags().VarP(counts, "count", "c", "Activity count as name=value (repeatable)")
	cmd.Flags().BoolVar(&luckyEgg, "lucky-egg", false, "Apply the Lucky Egg double-XP booster")
	cmd.Flags().IntVar(&currentLevel, "current-level", 0, "Current trainer level (1-50)")
	cmd.Flags().Int64Var(&currentXP, "current-xp", 0, "XP earned past the current level")
	cmd.Flags().IntVar(&targetLevel, "target-level", 0, "Target trainer level (1-50)")
	cmd.Flags().StringVar(&targetDate, "target-date", "", "Deadline as YYYY-MM-DD")
	cmd.Flags().Int64Var(&targetDays, "target-days", 0, "Deadline as a number of days from today")
	cmd.Flags().BoolVar(&noTimeline, "no-timeline", false, "Skip the deadline requirement")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	cmd.MarkFlagsMutuallyExclusive("target-date", "target-days")

	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
