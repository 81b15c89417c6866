package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gridboard/internal/config"
	"gridboard/internal/engine"
	"gridboard/internal/layout"
	"gridboard/internal/store"
	"gridboard/internal/telemetry"
	"gridboard/internal/ui"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string
	cmd := &cobra.Command{
		Use:   "gridboard",
		Short: "A persisted, customizable dashboard layout board",
		Long: "gridboard renders a breakpoint-aware dashboard layout as a column board.\n" +
			"Layout customizations (item order, column structure) persist across runs\n" +
			"and survive upgrades of the built-in default layout.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			return run(cfgFile, cfg)
		},
	}
	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default gridboard.yaml)")
	cmd.Flags().String("layout-name", "dashboard", "storage key of the layout")
	cmd.Flags().String("store-dir", "", "directory for persisted layouts (default ~/.gridboard)")
	cmd.Flags().Int("initial-width", 0, "viewport width before the first resize event")
	cmd.Flags().String("log-file", "", "write logs to this file")
	return cmd
}

func run(cfgFile string, cfg *config.Config) error {
	logger, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx := context.Background()
	tp, err := telemetry.Setup(ctx)
	if err != nil {
		return fmt.Errorf("telemetry setup: %w", err)
	}
	defer tp.Shutdown(ctx)

	storeDir := cfg.StoreDir
	if storeDir == "" {
		storeDir, err = store.ResolveBaseDir()
		if err != nil {
			return fmt.Errorf("resolve store dir: %w", err)
		}
	}
	gw := store.NewGateway(store.NewFileStore(storeDir), logger)

	updates := make(chan layout.Layout, 8)
	eng, err := engine.New(defaultLayout(cfg.LayoutName), gw, engine.Options{
		Thresholds:   cfg.Breakpoints.Thresholds(),
		InitialWidth: cfg.InitialWidth,
		Logger:       logger,
		OnChange: func(l layout.Layout) {
			// Non-blocking; the UI refreshes itself after events it
			// originates, so a dropped push is harmless.
			select {
			case updates <- l:
			default:
			}
		},
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(ui.New(eng, updates), tea.WithAltScreen())

	if path := config.FindConfigFile(cfgFile); path != "" {
		w, err := config.Watch(path, logger, func(c *config.Config) {
			p.Send(ui.ConfigReloadedMsg{Thresholds: c.Breakpoints.Thresholds()})
		})
		if err != nil {
			logger.Warn("config watch unavailable", zap.Error(err))
		} else {
			defer w.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		// Logging to the terminal would fight the TUI for the screen.
		return zap.NewNop(), nil
	}
	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	return zc.Build()
}
