// Package tui содержит компоненты для текстового пользовательского интерфейса
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-timekeeper/internal/data"
	"github.com/hazadus/go-timekeeper/internal/timer"
	"github.com/hazadus/go-timekeeper/internal/tui/app"
	"github.com/hazadus/go-timekeeper/internal/tui/countdown"
)

// App представляет основное TUI приложение
type App struct {
	history  *data.History
	timer    *timer.Timer
	options  countdown.Options
	saveFunc func() error // Функция для сохранения истории
}

// NewApp создает новый экземпляр TUI приложения
func NewApp(history *data.History, t *timer.Timer, options countdown.Options, saveFunc func() error) *App {
	return &App{
		history:  history,
		timer:    t,
		options:  options,
		saveFunc: saveFunc,
	}
}

// Run запускает TUI приложение
func (tuiApp *App) Run() error {
	model := newMainModel(tuiApp)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()

	// Останавливаем таймер после завершения программы
	if closeErr := model.Close(); err == nil {
		err = closeErr
	}
	return err
}

func newMainModel(tuiApp *App) *app.MainModel {
	return app.NewMainModel(tuiApp.history, tuiApp.timer, tuiApp.options, tuiApp.saveFunc)
}
