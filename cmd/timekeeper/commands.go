package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-timekeeper/internal/clock"
)

// createRootCommand создает корневую команду с настроенными подкомандами
func (app *Application) createRootCommand(ctx context.Context) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "timekeeper",
		Short:        "Countdown timers with HH:MM:SS durations",
		Long:         `A command line tool to convert durations between seconds and clock strings and run countdown timers.`,
		SilenceUsage: true,
	}

	// Добавляем команды, передавая в них экземпляр приложения и контекст
	rootCmd.AddCommand(app.createFormatCommand())
	rootCmd.AddCommand(app.createParseCommand())
	rootCmd.AddCommand(app.createStartCommand(ctx))
	rootCmd.AddCommand(app.createProbeCommand(ctx))
	rootCmd.AddCommand(app.createHistoryCommand())
	rootCmd.AddCommand(app.createRenameCommand())
	rootCmd.AddCommand(app.createDeleteCommand())
	rootCmd.AddCommand(app.createArchiveCommand(ctx))
	rootCmd.AddCommand(app.createTUICommand())

	return rootCmd
}

// layoutFlag возвращает формат из флага или из конфигурации
func (app *Application) layoutFlag(cmd *cobra.Command) (clock.Layout, error) {
	name, _ := cmd.Flags().GetString("layout")
	if name == "" {
		return app.Config.ClockLayout(), nil
	}
	return clock.ParseLayout(name)
}
