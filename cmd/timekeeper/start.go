package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-timekeeper/internal/clock"
	"github.com/hazadus/go-timekeeper/internal/data"
	"github.com/hazadus/go-timekeeper/internal/timer"
	"github.com/hazadus/go-timekeeper/internal/utils"
)

// chimeTimeout ограничивает время проигрывания сигнала
const chimeTimeout = 5 * time.Second

// createStartCommand создает команду start с привязкой к экземпляру приложения
func (app *Application) createStartCommand(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start [duration]",
		Short: "Run a countdown timer",
		Long: `Run a countdown in the console. The duration is HH:MM:SS with optional leading fields,
or is taken from an mp3 file or a YouTube video given with --from.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			label, _ := cmd.Flags().GetString("label")
			source, _ := cmd.Flags().GetString("from")

			session, err := app.newSession(ctx, args, label, source)
			if err != nil {
				return err
			}
			return app.runCountdown(ctx, session)
		},
	}
	cmd.Flags().String("label", "", "session label")
	cmd.Flags().String("from", "", "mp3 file or YouTube URL to take the duration from")
	return cmd
}

// newSession определяет длительность из аргумента или источника
func (app *Application) newSession(ctx context.Context, args []string, label, source string) (data.Session, error) {
	session := data.Session{Label: label, Source: source}

	switch {
	case len(args) == 1 && source != "":
		return session, errors.New("укажите либо длительность, либо --from")

	case len(args) == 1:
		seconds, err := app.Formatter.ParseHMS(args[0])
		if err != nil {
			return session, err
		}
		session.Duration = clock.Seconds(seconds)

	case source != "":
		info, err := app.resolver.Resolve(ctx, source)
		if err != nil {
			return session, fmt.Errorf("ошибка определения длительности: %w", err)
		}
		seconds, err := clock.FromDuration(info.Duration)
		if err != nil {
			return session, err
		}
		session.Duration = clock.Seconds(seconds)
		if session.Label == "" {
			session.Label = info.Name()
		}

	default:
		return session, errors.New("укажите длительность или --from")
	}

	if session.Duration <= 0 {
		return session, &clock.DurationError{Value: session.Duration.String()}
	}
	return session, nil
}

// runCountdown ведет отсчет в консоли и записывает сеанс в историю
func (app *Application) runCountdown(ctx context.Context, session data.Session) error {
	layout := app.Config.ClockLayout()

	t := timer.New(timer.WithSpeed(app.Config.Speed()), timer.WithLogger(app.Log))
	defer t.Close()

	session.StartedAt = time.Now()
	if err := t.Start(int(session.Duration)); err != nil {
		return fmt.Errorf("ошибка запуска таймера: %w", err)
	}

	fmt.Printf("⏱️  Таймер: %s\n", utils.OrDefault(session.Label, "Без названия"))
	fmt.Printf("   Длительность: %s\n", formatClock(int(session.Duration), layout))
	if session.Source != "" {
		fmt.Printf("   Источник: %s\n", session.Source)
	}
	fmt.Println()

	if app.interactive {
		fmt.Printf("🎮 Управление:\n")
		fmt.Printf("   [Пробел] - пауза/продолжить\n")
		fmt.Printf("   [Ctrl+C] - остановить и выйти\n")
		fmt.Println()

		enableRawMode()
		defer disableRawMode()
		go readPauseKeys(t)
	}

	for {
		select {
		case status := <-t.Progress():
			displayProgress(status, layout)

		case <-t.Done():
			session.Elapsed = session.Duration
			session.Completed = true
			fmt.Println("\n✅ Время вышло")
			if err := app.recordSession(session); err != nil {
				return err
			}
			app.ring(ctx)
			return nil

		case <-ctx.Done():
			t.Stop()
			session.Elapsed = clock.Seconds(t.Snapshot().Elapsed)
			fmt.Println("\n⏹️  Таймер остановлен пользователем")
			if session.Elapsed > 0 {
				return app.recordSession(session)
			}
			return nil
		}
	}
}

// recordSession добавляет сеанс в историю и сохраняет её
func (app *Application) recordSession(session data.Session) error {
	recorded := app.History.AddSession(session)
	if err := app.saveHistory(); err != nil {
		return fmt.Errorf("ошибка сохранения истории: %w", err)
	}
	app.Log.Debug("session recorded", "id", recorded.ID, "completed", recorded.Completed)
	return nil
}

// ring проигрывает сигнал; ошибка не прерывает команду
func (app *Application) ring(ctx context.Context) {
	if app.chime == nil {
		return
	}
	ringCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), chimeTimeout)
	defer cancel()

	if err := app.chime.Ring(ringCtx); err != nil {
		app.Log.Error("chime failed", "error", err)
	}
}

// readPauseKeys переключает паузу по пробелу или Enter
func readPauseKeys(t *timer.Timer) {
	for {
		char, err := readSingleChar()
		if err != nil {
			return
		}
		if char == ' ' || char == '\n' || char == '\r' {
			t.Pause()
		}
	}
}

// displayProgress отображает состояние отсчета в одной строке
func displayProgress(status timer.Status, layout clock.Layout) {
	statusIcon := "⏱️"
	statusText := "Идет отсчет"
	if status.Paused {
		statusIcon = "⏸️"
		statusText = "На паузе"
	}

	fmt.Printf("\r\033[K%s  %.1f%% | %s / %s | Осталось: %s | %s",
		statusIcon,
		status.Fraction()*100,
		formatClock(status.Elapsed, layout),
		formatClock(status.Total, layout),
		formatClock(status.Remaining, layout),
		statusText)
}

// formatClock форматирует секунды, подставляя прочерк при ошибке
func formatClock(seconds int, layout clock.Layout) string {
	s, err := clock.Format(seconds, layout)
	if err != nil {
		return "--:--"
	}
	return s
}

// enableRawMode включает режим raw для терминала (без буферизации и echo)
func enableRawMode() {
	cmd := exec.Command("stty", "-echo", "-icanon")
	cmd.Stdin = os.Stdin
	_ = cmd.Run() // Не критично для отсчета
}

// disableRawMode восстанавливает нормальный режим терминала
func disableRawMode() {
	cmd := exec.Command("stty", "echo", "icanon")
	cmd.Stdin = os.Stdin
	_ = cmd.Run()
}

// readSingleChar читает одиночный символ без ожидания Enter
func readSingleChar() (byte, error) {
	buffer := make([]byte, 1)
	_, err := os.Stdin.Read(buffer)
	return buffer[0], err
}
