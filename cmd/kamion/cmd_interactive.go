package main

import (
	"context"
	"fmt"
	"kamion-client/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runInteractive(cmd *cobra.Command, args []string) error {
	st, err := newStore()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	app := ui.New(ctx, st, ui.Options{
		SplashDelay:   cfg.UI.SplashDelay,
		DebounceDelay: cfg.Search.DebounceDelay,
	})

	logger.Info("starting interactive client")
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	_, runErr := p.Run()

	// In-flight requests are abandoned before waiting on them.
	cancel()
	app.Close()

	if runErr != nil {
		logger.Error("interactive client failed", zap.Error(runErr))
		return fmt.Errorf("interactive client: %w", runErr)
	}
	return nil
}
