package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	cblog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"coinmind/internal/api"
	"coinmind/internal/config"
	"coinmind/internal/currency"
	"coinmind/internal/eventbus"
	"coinmind/internal/logging"
	"coinmind/internal/session"
	"coinmind/internal/ui"
	"coinmind/internal/ui/commands"
)

type options struct {
	configPath string
	baseURL    string
	logFile    string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "coinmind",
		Short:         "Keep your coins in mind from the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to config.toml")
	root.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "backend URL, overrides the config file")
	root.PersistentFlags().StringVar(&opts.logFile, "log", "", "log file (logging is off when empty)")

	root.AddCommand(&cobra.Command{
		Use:   "logout",
		Short: "Delete the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cleanup, err := logging.SetupLogging(opts.logFile)
			if err != nil {
				return fmt.Errorf("failed to set up logging: %w", err)
			}
			defer cleanup()

			cfg, _, err := loadConfig(opts, nil)
			if err != nil {
				return err
			}
			if err := session.NewStore(cfg.SessionFile, nil).Delete(); err != nil {
				return fmt.Errorf("failed to delete session: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	})
	return root
}

// loadConfig reads the config file, writing the defaults on first run
func loadConfig(opts *options, bus eventbus.EventBus) (*config.Config, config.ConfigService, error) {
	configSvc := config.NewConfigServiceWithBus(opts.configPath, bus)
	_, statErr := os.Stat(configSvc.Path())

	cfg, err := configSvc.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if os.IsNotExist(statErr) {
		if err := configSvc.Save(cfg); err != nil {
			cblog.Warn("Failed to write default config", "err", err)
		} else {
			cblog.Info("Wrote default config", "path", configSvc.Path())
		}
	}

	if opts.baseURL != "" {
		cfg.BaseURL = opts.baseURL
		if err := cfg.Validate(); err != nil {
			return nil, nil, err
		}
	}
	return cfg, configSvc, nil
}

func run(opts *options) error {
	cleanup, err := logging.SetupLogging(opts.logFile)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer cleanup()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	cfg, _, err := loadConfig(opts, bus)
	if err != nil {
		return err
	}
	cblog.Info("Using backend", "url", cfg.BaseURL)

	store := session.NewStore(cfg.SessionFile, bus)
	backend := api.NewClient(cfg.BaseURL, cfg.Timeout(), store)
	rates := currency.NewClient(cfg.CurrencyAPIURL, cfg.Timeout())

	audioDir, err := os.Getwd()
	if err != nil {
		audioDir = "."
	}
	exec := commands.NewExecutor(commands.CommandContext{
		Backend:  backend,
		Rates:    rates,
		Sessions: store,
		Bus:      bus,
		Timeout:  cfg.Timeout(),
		AudioDir: audioDir,
	})

	model, err := ui.NewModel(ui.Options{
		Config:   cfg,
		Bus:      bus,
		Exec:     exec,
		Sessions: store,
	})
	if err != nil {
		return fmt.Errorf("failed to create UI: %w", err)
	}
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	// Forward domain events to the UI
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventSessionCreated,
		eventbus.EventSessionDeleted,
		eventbus.EventTransactionCreated,
		eventbus.EventTransactionUpdated,
		eventbus.EventTransactionDeleted,
		eventbus.EventError,
	} {
		unsubscribe := bus.Subscribe(t, forward)
		defer unsubscribe()
	}

	cblog.Info("Starting UI")
	if _, err := p.Run(); err != nil {
		cblog.Error("Error running program", "err", err)
		return fmt.Errorf("error running program: %w", err)
	}
	cblog.Info("UI exited normally")
	return nil
}
