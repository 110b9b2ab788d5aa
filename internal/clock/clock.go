// Package clock преобразует длительность в секундах в строку вида HH:MM:SS или MM:SS и обратно
package clock

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Layout определяет формат строки времени
type Layout int

const (
	// LayoutHMS - формат HH:MM:SS
	LayoutHMS Layout = iota
	// LayoutMS - формат MM:SS, минуты не ограничены сверху
	LayoutMS
)

var (
	errFieldCount = errors.New("неверное количество полей")
	errNotNumber  = errors.New("ожидалось неотрицательное целое число")
)

var fieldNames = [...]string{"hours", "minutes", "seconds"}

// ParseLayout возвращает Layout по его названию: "hms" или "ms"
func ParseLayout(name string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hms", "hh:mm:ss", "":
		return LayoutHMS, nil
	case "ms", "mm:ss":
		return LayoutMS, nil
	default:
		return LayoutHMS, fmt.Errorf("неизвестный формат времени: %q", name)
	}
}

func (l Layout) String() string {
	if l == LayoutMS {
		return "ms"
	}
	return "hms"
}

// FormatHMS форматирует продолжительность в секундах в формат HH:MM:SS
func FormatHMS(seconds int) (string, error) {
	return defaultFormatter.FormatHMS(seconds)
}

// FormatMS форматирует продолжительность в секундах в формат MM:SS
func FormatMS(seconds int) (string, error) {
	return defaultFormatter.FormatMS(seconds)
}

// Format форматирует продолжительность в секундах в указанном формате
func Format(seconds int, layout Layout) (string, error) {
	return defaultFormatter.Format(seconds, layout)
}

// ParseHMS разбирает строку HH:MM:SS, недостающие старшие поля считаются нулевыми
func ParseHMS(s string) (int, error) {
	return defaultFormatter.ParseHMS(s)
}

// ParseMS разбирает строку MM:SS, оба поля обязательны
func ParseMS(s string) (int, error) {
	return defaultFormatter.ParseMS(s)
}

// Parse разбирает строку времени в указанном формате
func Parse(s string, layout Layout) (int, error) {
	return defaultFormatter.Parse(s, layout)
}

// FormatDuration форматирует time.Duration для отображения прогресса.
// Доли секунды отбрасываются, отрицательные значения выводятся как ноль.
func FormatDuration(d time.Duration, layout Layout) string {
	seconds := int(d / time.Second)
	if seconds < 0 {
		seconds = 0
	}
	if layout == LayoutMS {
		return formatMS(seconds)
	}
	return formatHMS(seconds)
}

// FromDuration переводит time.Duration в целое число секунд
func FromDuration(d time.Duration) (int, error) {
	if d < 0 {
		return 0, &DurationError{Value: d.String()}
	}
	return int(d / time.Second), nil
}

// FromFloat переводит дробное число секунд в целое, отбрасывая дробную часть
func FromFloat(seconds float64) (int, error) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 || seconds >= math.MaxInt64 {
		return 0, &DurationError{Value: strconv.FormatFloat(seconds, 'g', -1, 64)}
	}
	return int(seconds), nil
}

func formatHMS(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}

func formatMS(seconds int) string {
	minutes := seconds / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

func checkSeconds(seconds int) error {
	if seconds < 0 {
		return &DurationError{Value: strconv.Itoa(seconds)}
	}
	return nil
}

func parseHMS(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, &ParseError{Input: s, Err: errFieldCount}
	}

	// Недостающие поля дополняются слева: "45" - секунды, "2:30" - минуты и секунды
	fields := [3]string{"00", "00", "00"}
	copy(fields[3-len(parts):], parts)

	var values [3]int
	for i, field := range fields {
		v, err := parseField(s, fieldNames[i], field)
		if err != nil {
			return 0, err
		}
		values[i] = v
	}

	return sum(s, values[0], values[1], values[2])
}

func parseMS(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, &ParseError{Input: s, Err: errFieldCount}
	}

	minutes, err := parseField(s, "minutes", parts[0])
	if err != nil {
		return 0, err
	}
	seconds, err := parseField(s, "seconds", parts[1])
	if err != nil {
		return 0, err
	}

	return sum(s, 0, minutes, seconds)
}

func parseField(input, name, field string) (int, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return 0, &ParseError{Input: input, Field: name, Err: errNotNumber}
	}
	for _, r := range field {
		if r < '0' || r > '9' {
			return 0, &ParseError{Input: input, Field: name, Err: errNotNumber}
		}
	}

	v, err := strconv.Atoi(field)
	if err != nil {
		// Переполнение int
		return 0, &ParseError{Input: input, Field: name, Err: err}
	}
	return v, nil
}

func sum(input string, hours, minutes, seconds int) (int, error) {
	if hours > math.MaxInt/3600 {
		return 0, &ParseError{Input: input, Err: strconv.ErrRange}
	}
	total := hours * 3600
	// Каждое слагаемое сверяем с оставшимся запасом до MaxInt
	if minutes > (math.MaxInt-total)/60 {
		return 0, &ParseError{Input: input, Err: strconv.ErrRange}
	}
	total += minutes * 60
	if seconds > math.MaxInt-total {
		return 0, &ParseError{Input: input, Err: strconv.ErrRange}
	}
	return total + seconds, nil
}
