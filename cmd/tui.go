package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Alturino/inventory/internal/api"
	"github.com/Alturino/inventory/internal/config"
	"github.com/Alturino/inventory/internal/constants"
	"github.com/Alturino/inventory/internal/log"
	"github.com/Alturino/inventory/internal/otel"
	"github.com/Alturino/inventory/internal/store"
	"github.com/Alturino/inventory/internal/ui"
)

func newTuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive terminal client",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTui(cmd.Context())
		},
	}
}

func runTui(c context.Context) error {
	cfg := config.InitConfig(c, "inventory")

	logger := log.InitLogger(cfg.Application.LogFile, cfg.Application.Env, false).
		With().
		Str(log.KeyAppName, constants.AppInventoryClient).
		Str(log.KeyTag, "main runTui").
		Logger()
	c = logger.WithContext(c)

	logger = logger.With().Str(log.KeyProcess, "initializing otel sdk").Logger()
	logger.Info().Msg("initializing otel sdk")
	shutdownFuncs, err := otel.InitOtelSdk(c, cfg.Otel)
	if err != nil {
		err = fmt.Errorf("failed initializing otel sdk with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("initialized otel sdk")
	defer func() {
		logger.Info().Msg("shutting down otel")
		if err := otel.ShutdownOtel(c, shutdownFuncs); err != nil {
			err = fmt.Errorf("failed shutting down otel with error=%w", err)
			logger.Error().Err(err).Msg(err.Error())
			return
		}
		logger.Info().Msg("shutdown otel")
	}()

	logger = logger.With().Str(log.KeyProcess, "initializing product store").Logger()
	logger.Info().Str("baseUrl", cfg.Api.BaseUrl).Msg("initializing product store")
	client := api.NewClient(cfg.Api.BaseUrl)
	productStore := store.NewProductStore(client)
	logger.Info().Msg("initialized product store")

	logger = logger.With().Str(log.KeyProcess, "running tui").Logger()
	logger.Info().Msg("running tui")
	program := tea.NewProgram(
		ui.NewModel(c, productStore),
		tea.WithAltScreen(),
		tea.WithContext(c),
	)
	if _, err := program.Run(); err != nil {
		err = fmt.Errorf("failed running tui with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("tui exited")

	return nil
}
