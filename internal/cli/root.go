package cli

import (
	"time"

	"github.com/alexanderramin/xpcalc/internal/config"
	"github.com/alexanderramin/xpcalc/internal/contract"
	"github.com/alexanderramin/xpcalc/internal/domain"
	"github.com/alexanderramin/xpcalc/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// BootstrapOptions carries the persistent flag values into App.Bootstrap.
type BootstrapOptions struct {
	ConfigPath string
	Verbose    bool
}

// App holds the calculator service and the defaults used by CLI commands.
type App struct {
	Calc     service.CalculatorService
	Defaults config.DefaultsConfig
	Logger   zerolog.Logger
	Version  string

	// Now defaults to time.Now.
	Now func() time.Time

	// IsInteractive reports whether stdin is a terminal. The wizard and live
	// screen refuse to start when it returns false.
	IsInteractive func() bool

	// Bootstrap, when set, runs once before any command with the persistent
	// flag values. It loads configuration and fills in the fields above.
	Bootstrap func(app *App, opts BootstrapOptions) error
}

func (app *App) now() time.Time {
	if app.Now != nil {
		return app.Now()
	}
	return time.Now()
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}

// baseRequest is a CalculateRequest seeded from the configured defaults.
func (app *App) baseRequest() contract.CalculateRequest {
	d := app.Defaults
	req := contract.NewCalculateRequest()
	req.LuckyEgg = d.LuckyEgg
	req.CurrentLevel = d.CurrentLevel
	req.TargetLevel = d.TargetLevel
	req.TargetMode = domain.TargetMode(domain.CoalesceStr(d.TargetMode, string(domain.TargetByDate)))
	req.TargetDays = d.TargetDays
	req.TargetDate = d.TargetDate
	now := app.now()
	req.Now = &now
	return req
}

// NewRootCmd creates the top-level "xpcalc" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var opts BootstrapOptions

	root := &cobra.Command{
		Use:           "xpcalc",
		Short:         "XP and level progression calculator",
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Bootstrap == nil {
				return nil
			}
			return app.Bootstrap(app, opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "Path to a TOML config file (default $XPCALC_CONFIG)")
	root.PersistentFlags().BoolVar(&opts.Verbose, "verbose", false, "Log at debug level")

	root.AddCommand(
		newCalcCmd(app),
		newLevelsCmd(app),
		newRatesCmd(app),
		newWizardCmd(app),
		newLiveCmd(app),
		newMCPCmd(app),
	)
	for _, def := range categoryCommands {
		root.AddCommand(newCategoryCmd(app, def))
	}

	return root
}
