// Package data содержит историю сеансов таймера и её хранение в YAML
package data

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hazadus/go-timekeeper/internal/clock"
	"github.com/hazadus/go-timekeeper/internal/utils"
)

// ErrSessionNotFound возвращается, если сеанса с указанным ID нет в истории
var ErrSessionNotFound = errors.New("сеанс не найден")

// Session описывает один запуск таймера
type Session struct {
	ID        int           `yaml:"id"`
	Label     string        `yaml:"label"`
	Duration  clock.Seconds `yaml:"duration"`         // Заданная длительность
	Elapsed   clock.Seconds `yaml:"elapsed"`          // Фактически прошедшее время
	StartedAt time.Time     `yaml:"started_at"`       // Время запуска
	Completed bool          `yaml:"completed"`        // Таймер дошел до нуля
	Source    string        `yaml:"source,omitempty"` // Файл или URL, по которому определена длительность
}

// Remaining возвращает оставшееся время сеанса
func (s Session) Remaining() clock.Seconds {
	if s.Elapsed >= s.Duration {
		return 0
	}
	return s.Duration - s.Elapsed
}

// History хранит все сеансы
type History struct {
	Sessions []Session `yaml:"sessions"`
}

// NewHistory создает пустую историю
func NewHistory() *History {
	return &History{
		Sessions: make([]Session, 0),
	}
}

// Load загружает историю из файла
func (h *History) Load(filePath string) error {
	path, err := utils.ExpandHome(filePath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// Если файл не найден, инициализируем пустыми данными
		if os.IsNotExist(err) {
			*h = *NewHistory()
			return nil
		}
		return fmt.Errorf("ошибка чтения файла истории: %w", err)
	}
	if len(data) == 0 {
		*h = *NewHistory()
		return nil
	}

	loaded := NewHistory()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("ошибка разбора истории: %w", err)
	}
	*h = *loaded
	return nil
}

// Save сохраняет историю в файл
func (h *History) Save(filePath string) error {
	path, err := utils.ExpandHome(filePath)
	if err != nil {
		return err
	}

	data, err := h.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("ошибка записи файла истории: %w", err)
	}
	return nil
}

// Marshal сериализует историю в YAML
func (h *History) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(h)
	if err != nil {
		return nil, fmt.Errorf("ошибка сериализации истории: %w", err)
	}
	return data, nil
}

// AddSession добавляет сеанс и возвращает его с присвоенным ID
func (h *History) AddSession(session Session) Session {
	// Найдем максимальный ID и присваиваем следующий
	maxID := 0
	for _, s := range h.Sessions {
		if s.ID > maxID {
			maxID = s.ID
		}
	}
	session.ID = maxID + 1

	h.Sessions = append(h.Sessions, session)
	return session
}

// SessionByID возвращает сеанс по ID
func (h *History) SessionByID(id int) (*Session, error) {
	for i := range h.Sessions {
		if h.Sessions[i].ID == id {
			return &h.Sessions[i], nil
		}
	}
	return nil, fmt.Errorf("%w: ID %d", ErrSessionNotFound, id)
}

// UpdateSession заменяет сеанс с тем же ID
func (h *History) UpdateSession(session Session) error {
	existing, err := h.SessionByID(session.ID)
	if err != nil {
		return err
	}
	*existing = session
	return nil
}

// DeleteSessionByID удаляет сеанс по ID
func (h *History) DeleteSessionByID(id int) error {
	for i := range h.Sessions {
		if h.Sessions[i].ID == id {
			h.Sessions = append(h.Sessions[:i], h.Sessions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: ID %d", ErrSessionNotFound, id)
}

// TotalElapsed возвращает суммарное время всех сеансов
func (h *History) TotalElapsed() clock.Seconds {
	var total clock.Seconds
	for _, s := range h.Sessions {
		total += s.Elapsed
	}
	return total
}
