package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/hazadus/go-timekeeper/internal/chime"
	"github.com/hazadus/go-timekeeper/internal/clock"
	"github.com/hazadus/go-timekeeper/internal/config"
	"github.com/hazadus/go-timekeeper/internal/data"
	"github.com/hazadus/go-timekeeper/internal/logging"
	"github.com/hazadus/go-timekeeper/internal/media"
)

const (
	defaultConfigPath = "~/.timekeeper"
)

// sourceResolver определяет длительность по файлу или ссылке
type sourceResolver interface {
	Resolve(ctx context.Context, ref string) (*media.Info, error)
}

// ringer проигрывает сигнал завершения
type ringer interface {
	Ring(ctx context.Context) error
}

// Application содержит состояние приложения, общее для всех команд
type Application struct {
	Config    *config.Config
	History   *data.History
	Log       *logging.Logger
	Formatter *clock.Formatter

	resolver    sourceResolver
	chime       ringer // nil, если сигнал отключен
	interactive bool   // stdin - терминал, можно читать клавиши
}

// NewApplication создает приложение с зависимостями по умолчанию
func NewApplication(cfg *config.Config, history *data.History, log *logging.Logger) *Application {
	app := &Application{
		Config:      cfg,
		History:     history,
		Log:         log,
		Formatter:   clock.New(clock.WithLogger(log)),
		resolver:    media.NewResolver(),
		interactive: isatty.IsTerminal(os.Stdin.Fd()),
	}
	if cfg.ChimeEnabled() {
		app.chime = chime.NewPlayer()
	}
	return app
}

// saveHistory сохраняет историю в файл из конфигурации
func (app *Application) saveHistory() error {
	return app.History.Save(app.Config.HistoryFile)
}

func main() {
	cfg, err := config.LoadConfig(defaultConfigPath)
	if err != nil {
		logging.Error("failed to load config, using defaults", "path", defaultConfigPath, "error", err)
		cfg = config.Default()
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)
	logging.SetDefault(logger)

	history := data.NewHistory()
	if err := history.Load(cfg.HistoryFile); err != nil {
		logger.Error("failed to load history", "path", cfg.HistoryFile, "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := NewApplication(cfg, history, logger)
	if err := app.createRootCommand(ctx).Execute(); err != nil {
		stop()
		os.Exit(1)
	}
}
