package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexanderramin/xpcalc/internal/cli"
	"github.com/alexanderramin/xpcalc/internal/config"
	"github.com/alexanderramin/xpcalc/internal/logging"
	"github.com/alexanderramin/xpcalc/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var logCloser io.Closer
	defer func() {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	}()

	app := &cli.App{
		Version: version,
		Now:     time.Now,
	}

	// Detect interactive terminal for the wizard and live screen.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	app.Bootstrap = func(app *cli.App, opts cli.BootstrapOptions) error {
		cfg, err := config.Load(opts.ConfigPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		level, err := cfg.LogLevel()
		if err != nil {
			return err
		}
		if opts.Verbose {
			level = zerolog.DebugLevel
		}
		logCloser, err = logging.Init(logging.Options{
			Level:   level,
			Console: os.Stderr,
			Dir:     cfg.Log.Dir,
			File:    cfg.Log.File,
		})
		if err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}

		rates, err := cfg.RateTable()
		if err != nil {
			return err
		}
		thresholds, err := cfg.ThresholdTable()
		if err != nil {
			return err
		}

		// Wire services
		app.Calc = service.NewCalculatorService(rates, thresholds, service.NewLogUseCaseObserver(log.Logger))
		app.Defaults = cfg.Defaults
		app.Logger = log.Logger

		log.Debug().
			Str("config", cfg.Path).
			Str("version", version).
			Msg("xpcalc configured")
		return nil
	}

	// Execute root command
	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
