package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-timekeeper/internal/utils"
)

// createHistoryCommand создает команду history с привязкой к экземпляру приложения
func (app *Application) createHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List past timer sessions",
		Long:  `Display all timer sessions stored in the history file.`,
		Run: func(_ *cobra.Command, _ []string) {
			app.listSessions()
		},
	}
}

// createRenameCommand создает команду rename с привязкой к экземпляру приложения
func (app *Application) createRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename [id] [label]",
		Short: "Change the label of a session",
		Long:  `Set a new label for a timer session stored in the history.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("неверный ID '%s': ID должен быть числом", args[0])
			}
			return app.renameSession(id, args[1])
		},
	}
}

// createDeleteCommand создает команду delete с привязкой к экземпляру приложения
func (app *Application) createDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a session by ID",
		Long:  `Delete a timer session from the history by its ID.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("неверный ID '%s': ID должен быть числом", args[0])
			}
			return app.deleteSession(id)
		},
	}
}

func (app *Application) listSessions() {
	if len(app.History.Sessions) == 0 {
		fmt.Println("📚 История пуста. Запустите таймер командой 'start'.")
		return
	}

	layout := app.Config.ClockLayout()
	fmt.Printf("📚 Найдено сеансов: %d\n\n", len(app.History.Sessions))

	fmt.Printf("%-4s %-30s %-12s %-12s %-12s %-17s %s\n",
		"ID", "Название", "Длительность", "Прошло", "Осталось", "Начат", "Готово")
	fmt.Println(strings.Repeat("-", 103))

	for _, s := range app.History.Sessions {
		started := "N/A"
		if !s.StartedAt.IsZero() {
			started = s.StartedAt.Local().Format("2006-01-02 15:04")
		}
		done := ""
		if s.Completed {
			done = "✓"
		}

		fmt.Printf("%-4d %-30s %-12s %-12s %-12s %-17s %s\n",
			s.ID,
			utils.TruncateString(utils.OrDefault(s.Label, "—"), 28),
			formatClock(int(s.Duration), layout),
			formatClock(int(s.Elapsed), layout),
			formatClock(int(s.Remaining()), layout),
			started,
			done)
	}

	fmt.Println()
	fmt.Printf("⏱️  Всего: %s\n", formatClock(int(app.History.TotalElapsed()), layout))
}

func (app *Application) renameSession(id int, label string) error {
	existing, err := app.History.SessionByID(id)
	if err != nil {
		return err
	}

	session := *existing
	session.Label = strings.TrimSpace(label)
	if err := app.History.UpdateSession(session); err != nil {
		return err
	}
	if err := app.saveHistory(); err != nil {
		return fmt.Errorf("ошибка сохранения истории: %w", err)
	}

	fmt.Printf("✏️  Сеанс %d переименован: %s\n", id, utils.OrDefault(session.Label, "—"))
	return nil
}

func (app *Application) deleteSession(id int) error {
	if err := app.History.DeleteSessionByID(id); err != nil {
		return err
	}
	if err := app.saveHistory(); err != nil {
		return fmt.Errorf("ошибка сохранения истории: %w", err)
	}

	fmt.Printf("🗑️  Сеанс %d удален\n", id)
	return nil
}
