package main

import (
	"github.com/spf13/cobra"

	"github.com/hazadus/go-timekeeper/internal/timer"
	"github.com/hazadus/go-timekeeper/internal/tui"
	"github.com/hazadus/go-timekeeper/internal/tui/countdown"
)

// createTUICommand создает команду tui с привязкой к экземпляру приложения
func (app *Application) createTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch TUI (Terminal User Interface)",
		Long:  `Launch interactive terminal user interface for running timers and browsing history.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.launchTUI()
		},
	}
}

func (app *Application) launchTUI() error {
	options := countdown.Options{
		Layout:     app.Config.ClockLayout(),
		Animations: !app.Config.DisableAnimations,
	}
	if app.chime != nil {
		options.Chime = app.chime
	}

	// Логи в stderr ломают полноэкранный режим
	t := timer.New(timer.WithSpeed(app.Config.Speed()))
	tuiApp := tui.NewApp(app.History, t, options, app.saveHistory)
	return tuiApp.Run()
}
