// Package main provides nlogcolor, a demo CLI that prints sample records at
// every level through the color console handler, using the native logger,
// log/slog or zap as the front end.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/philipp01105/nlogcolor/config"
	"github.com/philipp01105/nlogcolor/console"
	"github.com/philipp01105/nlogcolor/logger"
)

// Front ends accepted by --frontend.
const (
	frontendNlog = "nlog"
	frontendSlog = "slog"
	frontendZap  = "zap"
)

// ErrUnknownFrontend is returned for a --frontend other than nlog, slog or zap.
var ErrUnknownFrontend = errors.New("unknown frontend")

type options struct {
	ConfigPath string
	Frontend   string
	Name       string
	Watch      bool
	Interval   time.Duration

	flagged config.Config
	flags   config.Flags
	overlay config.Overlay
}

func main() {
	opts := &options{
		Frontend: frontendNlog,
		Name:     "demo",
		Interval: 2 * time.Second,
		flagged:  config.Default(),
		flags:    config.DefaultFlags(),
	}

	rootCmd := &cobra.Command{
		Use:   "nlogcolor [flags]",
		Short: "Print sample log records through the color console handler",
		Long: `nlogcolor writes one sample record per level to the console, coloring
the level the way the configured pattern marks it. Settings come from an
optional TOML file, overridden by flags. With --watch it keeps logging and
re-applies the file whenever it changes.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			opts.overlay = opts.flags.Overlay(cmd.Flags(), opts.flagged)
			cfg = opts.overlay(cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, opts, cfg, nil)
		},
	}

	fs := rootCmd.Flags()
	fs.StringVarP(&opts.ConfigPath, "config", "c", "", "path to a TOML config file")
	fs.StringVar(&opts.Frontend, "frontend", opts.Frontend,
		fmt.Sprintf("logging front end, one of: %s, %s, %s", frontendNlog, frontendSlog, frontendZap))
	fs.StringVar(&opts.Name, "name", opts.Name, "logger name shown by the %n pattern flag")
	fs.BoolVarP(&opts.Watch, "watch", "w", false, "keep logging and reload the config file on change")
	fs.DurationVar(&opts.Interval, "interval", opts.Interval, "delay between records in watch mode")
	opts.flags.RegisterFlags(fs, &opts.flagged)

	completionErr := opts.flags.RegisterCompletions(rootCmd)
	if completionErr == nil {
		completionErr = rootCmd.RegisterFlagCompletionFunc("frontend",
			cobra.FixedCompletions([]string{frontendNlog, frontendSlog, frontendZap}, cobra.ShellCompDirectiveNoFileComp))
	}
	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// run emits the demo records. dev overrides the configured target when
// non-nil.
func run(ctx context.Context, opts *options, cfg config.Config, dev console.Device) error {
	var err error
	if dev == nil {
		dev, err = cfg.Device()
		if err != nil {
			return err
		}
	}
	h, err := cfg.NewHandlerFor(dev, nil)
	if err != nil {
		return err
	}
	defer h.Close()

	fe, err := newFrontend(opts.Frontend, opts.Name, h, cfg)
	if err != nil {
		return err
	}
	defer fe.sync()

	fe.emitAll(0)
	if !opts.Watch {
		return nil
	}

	if opts.ConfigPath != "" {
		go func() {
			if err := config.Watch(ctx, opts.ConfigPath, h, opts.overlay, fe.diagnostics()); err != nil {
				fe.diagnostics().Error("config watch stopped", logger.Err(err))
			}
		}()
	}

	ticker := time.NewTicker(opts.Interval)
	defer ticker.Stop()
	for round := 1; ; round++ {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			fe.emitAll(round)
		}
	}
}
