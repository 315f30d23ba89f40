package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/alexanderramin/xpcalc/internal/cli/formatter"
	"github.com/alexanderramin/xpcalc/internal/contract"
	"github.com/alexanderramin/xpcalc/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// errNotInteractive is returned by commands that need a terminal.
var errNotInteractive = errors.New("this command needs an interactive terminal; use 'xpcalc calc' instead")

// wizardTheme styles the wizard with the formatter palette. The focused
// group gets yellow titles and blue controls; blurred groups are dimmed.
func wizardTheme() *huh.Theme {
	fg := func(c lipgloss.TerminalColor) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}
	t := huh.ThemeBase()

	f := &t.Focused
	f.Title = fg(formatter.ColorYellow).Bold(true)
	f.Description = fg(formatter.ColorDim).Italic(true)
	f.ErrorIndicator = fg(formatter.ColorRed)
	f.ErrorMessage = fg(formatter.ColorRed)
	f.SelectSelector = fg(formatter.ColorBlue)
	f.Option = fg(formatter.ColorFg)
	f.FocusedButton = fg(formatter.ColorFg).Background(formatter.ColorBlue).Bold(true).Padding(0, 2)
	f.BlurredButton = fg(formatter.ColorDim).Padding(0, 2)
	f.TextInput.Cursor = fg(formatter.ColorYellow)
	f.TextInput.Prompt = fg(formatter.ColorBlue)
	f.TextInput.Text = fg(formatter.ColorFg)
	f.TextInput.Placeholder = fg(formatter.ColorDim).Italic(true)

	dim := fg(formatter.ColorDim)
	b := &t.Blurred
	b.Title, b.Description, b.SelectSelector, b.Option = dim, dim, dim, dim
	b.TextInput.Prompt, b.TextInput.Text = dim, dim

	return t
}

// wizardValues holds the raw text of every wizard field. huh binds to the
// pointers, so the count map is allocated up front.
type wizardValues struct {
	LuckyEgg     bool
	CurrentLevel string
	CurrentXP    string
	TargetLevel  string
	Counts       map[domain.Activity]*string
	UseTimeline  bool
	TargetMode   domain.TargetMode
	TargetDate   string
	TargetDays   string
}

func newWizardValues(base contract.CalculateRequest) *wizardValues {
	v := &wizardValues{
		LuckyEgg:     base.LuckyEgg,
		CurrentLevel: strconv.Itoa(domain.ClampLevel(base.CurrentLevel, domain.MinLevel)),
		TargetLevel:  strconv.Itoa(domain.ClampLevel(base.TargetLevel, domain.MaxLevel)),
		Counts:       make(map[domain.Activity]*string, len(domain.Catalog)),
		UseTimeline:  base.UseTimeline,
		TargetMode:   base.TargetMode,
		TargetDate:   base.TargetDate,
	}
	if base.TargetDays > 0 {
		v.TargetDays = strconv.FormatInt(base.TargetDays, 10)
	}
	if v.TargetDate == "" && base.Now != nil {
		v.TargetDate = contract.DefaultTargetDate(*base.Now).Format(contract.DateLayout)
	}
	for _, def := range domain.Catalog {
		s := ""
		v.Counts[def.Key] = &s
	}
	return v
}

// request overlays the entered values onto base.
func (v *wizardValues) request(base contract.CalculateRequest) contract.CalculateRequest {
	req := base
	raw := make(map[string]string, len(v.Counts))
	for a, s := range v.Counts {
		if *s != "" {
			raw[string(a)] = *s
		}
	}
	req.Counts = contract.CountsFromStrings(raw)
	req.LuckyEgg = v.LuckyEgg
	req.CurrentLevel = contract.CoerceLevel(v.CurrentLevel)
	req.CurrentXP = contract.CoerceCount(v.CurrentXP)
	req.TargetLevel = contract.CoerceLevel(v.TargetLevel)
	req.UseTimeline = v.UseTimeline
	req.TargetMode = v.TargetMode
	req.TargetDate = v.TargetDate
	req.TargetDays = contract.CoerceCount(v.TargetDays)
	return req
}

// wizardForm builds the multi-page calculator form bound to v.
func wizardForm(v *wizardValues) *huh.Form {
	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewConfirm().
				Title("Lucky Egg active?").
				Affirmative("Yes").
				Negative("No").
				Value(&v.LuckyEgg),
			huh.NewInput().
				Title("Current level").
				Placeholder("1").
				Value(&v.CurrentLevel).
				Validate(validateLevel),
			huh.NewInput().
				Title("XP into current level").
				Placeholder("0").
				Value(&v.CurrentXP).
				Validate(validateNonNegativeInt),
			huh.NewInput().
				Title("Target level").
				Placeholder("50").
				Value(&v.TargetLevel).
				Validate(validateLevel),
		).Title("Trainer"),
	}

	for _, cat := range domain.Categories {
		fields := make([]huh.Field, 0, 8)
		for _, def := range domain.ActivitiesIn(cat) {
			fields = append(fields, huh.NewInput().
				Title(def.Label).
				Placeholder("0").
				Value(v.Counts[def.Key]).
				Validate(validateNonNegativeInt))
		}
		title := cat.Label() + " (per day)"
		if !cat.IsDaily() {
			title = cat.Label() + " (one-time)"
		}
		groups = append(groups, huh.NewGroup(fields...).Title(title))
	}

	groups = append(groups,
		huh.NewGroup(
			huh.NewConfirm().
				Title("Work out the XP needed per day?").
				Affirmative("Yes").
				Negative("No").
				Value(&v.UseTimeline),
			huh.NewSelect[domain.TargetMode]().
				Title("Deadline").
				Options(
					huh.NewOption("By date", domain.TargetByDate),
					huh.NewOption("In a number of days", domain.TargetByDays),
				).
				Value(&v.TargetMode),
		).Title("Deadline"),
		huh.NewGroup(
			huh.NewInput().
				Title("Target date (YYYY-MM-DD)").
				Value(&v.TargetDate).
				Validate(validateOptionalDate),
		).WithHideFunc(func() bool {
			return !v.UseTimeline || v.TargetMode != domain.TargetByDate
		}),
		huh.NewGroup(
			huh.NewInput().
				Title("Days until the deadline").
				Value(&v.TargetDays).
				Validate(validatePositiveInt),
		).WithHideFunc(func() bool {
			return !v.UseTimeline || v.TargetMode != domain.TargetByDays
		}),
	)

	return huh.NewForm(groups...).WithTheme(wizardTheme()).WithShowHelp(true)
}

func newWizardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Enter activities step by step and calculate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errNotInteractive
			}
			base := app.baseRequest()
			values := newWizardValues(base)
			if err := wizardForm(values).RunWithContext(cmd.Context()); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					return nil
				}
				return fmt.Errorf("wizard: %w", err)
			}

			resp, err := app.Calc.Calculate(cmd.Context(), values.request(base))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCalculation(resp))
			return nil
		},
	}
}

// validatePositiveInt accepts empty or a positive integer.
func validatePositiveInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// validateNonNegativeInt accepts empty or a non-negative integer.
func validateNonNegativeInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

// validateLevel accepts empty or a level between 1 and 50.
func validateLevel(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < domain.MinLevel || v > domain.MaxLevel {
		return fmt.Errorf("enter a level from %d to %d", domain.MinLevel, domain.MaxLevel)
	}
	return nil
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := contract.ParseTargetDate(s, nil); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}
