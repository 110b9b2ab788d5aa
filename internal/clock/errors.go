package clock

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDuration возвращается для отрицательной или нечисловой длительности
	ErrInvalidDuration = errors.New("недопустимая длительность")
	// ErrParse возвращается, если строку времени не удалось разобрать
	ErrParse = errors.New("ошибка разбора времени")
)

// DurationError описывает недопустимое значение длительности
type DurationError struct {
	Value string
}

func (e *DurationError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalidDuration, e.Value)
}

func (e *DurationError) Unwrap() error {
	return ErrInvalidDuration
}

// ParseError описывает ошибку разбора строки времени
type ParseError struct {
	Input string // Исходная строка
	Field string // Поле, которое не удалось разобрать; пусто, если неверно число полей
	Err   error  // Причина
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v %q: %v", ErrParse, e.Input, e.Err)
	}
	return fmt.Sprintf("%v %q: поле %s: %v", ErrParse, e.Input, e.Field, e.Err)
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrParse)
func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// IsParseError проверяет, является ли ошибка ошибкой разбора
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// IsInvalidDuration проверяет, является ли ошибка ошибкой недопустимой длительности
func IsInvalidDuration(err error) bool {
	return errors.Is(err, ErrInvalidDuration)
}
