// Package timer содержит движок обратного отсчета
package timer

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/hazadus/go-timekeeper/internal/clock"
	"github.com/hazadus/go-timekeeper/internal/logging"
)

// Status представляет текущее состояние таймера
type Status struct {
	Total     int  // Заданная длительность в секундах
	Elapsed   int  // Прошло секунд
	Remaining int  // Осталось секунд
	Paused    bool // Таймер на паузе
}

// Fraction возвращает долю прошедшего времени от 0 до 1
func (s Status) Fraction() float64 {
	if s.Total <= 0 {
		return 0
	}
	return float64(s.Elapsed) / float64(s.Total)
}

// Timer управляет обратным отсчетом
type Timer struct {
	// Каналы для обратной связи
	progressChan chan Status
	doneChan     chan bool

	// Настройки
	speed    int
	interval time.Duration
	log      *logging.Logger

	// Внутреннее состояние
	mutex    sync.RWMutex
	total    int
	elapsed  int
	isPaused bool
	running  bool
	closed   bool
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// Option настраивает Timer
type Option func(*Timer)

// WithSpeed задает число условных секунд в одной реальной секунде
func WithSpeed(speed int) Option {
	return func(t *Timer) {
		if speed > 0 {
			t.speed = speed
		}
	}
}

// WithInterval задает реальный интервал между тиками, переопределяя скорость
func WithInterval(interval time.Duration) Option {
	return func(t *Timer) {
		if interval > 0 {
			t.interval = interval
		}
	}
}

// WithLogger задает регистратор
func WithLogger(l *logging.Logger) Option {
	return func(t *Timer) {
		if l != nil {
			t.log = l
		}
	}
}

// New создает новый таймер
func New(opts ...Option) *Timer {
	t := &Timer{
		progressChan: make(chan Status, 1),
		doneChan:     make(chan bool, 1),
		speed:        1,
		log:          logging.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.interval == 0 {
		t.interval = time.Second / time.Duration(t.speed)
	}
	// time.NewTicker не принимает нулевой интервал
	if t.interval <= 0 {
		t.interval = time.Nanosecond
	}
	return t
}

// Progress возвращает канал для получения обновлений состояния
func (t *Timer) Progress() <-chan Status {
	return t.progressChan
}

// Done возвращает канал, в который приходит сигнал о завершении отсчета
func (t *Timer) Done() <-chan bool {
	return t.doneChan
}

// Start запускает обратный отсчет на указанное число секунд.
// Если таймер уже идет, текущий отсчет заменяется новым.
func (t *Timer) Start(seconds int) error {
	if seconds <= 0 {
		return &clock.DurationError{Value: strconv.Itoa(seconds)}
	}

	t.stop()

	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.closed {
		return errClosed
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	t.total = seconds
	t.elapsed = 0
	t.isPaused = false
	t.running = true

	// Сбрасываем сигнал завершения предыдущего отсчета
	select {
	case <-t.doneChan:
	default:
	}

	t.log.Debug("timer started", "total", clock.Seconds(seconds).String(), "interval", t.interval.String())

	t.wg.Add(1)
	go t.run(ctx)

	return nil
}

// Pause приостанавливает или возобновляет отсчет
func (t *Timer) Pause() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if !t.running {
		return
	}
	t.isPaused = !t.isPaused
	t.log.Debug("timer pause toggled", "paused", t.isPaused)
	t.publish(t.statusLocked())
}

// Stop останавливает отсчет
func (t *Timer) Stop() {
	t.stop()
}

// Close останавливает таймер и закрывает каналы
func (t *Timer) Close() error {
	t.stop()

	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true
	close(t.progressChan)
	close(t.doneChan)
	return nil
}

// Snapshot возвращает текущее состояние
func (t *Timer) Snapshot() Status {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return t.statusLocked()
}

// IsRunning возвращает true, если отсчет идет (в том числе на паузе)
func (t *Timer) IsRunning() bool {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return t.running
}

// IsPaused возвращает true, если отсчет на паузе
func (t *Timer) IsPaused() bool {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return t.running && t.isPaused
}

// stop отменяет текущий отсчет и дожидается завершения горутины
func (t *Timer) stop() {
	t.mutex.Lock()
	cancel := t.cancel
	t.cancel = nil
	wasRunning := t.running
	t.running = false
	t.isPaused = false
	t.mutex.Unlock()

	if cancel != nil {
		cancel()
	}
	t.wg.Wait()

	if wasRunning {
		t.log.Debug("timer stopped")
	}
}

// run отсчитывает секунды до нуля
func (t *Timer) run(ctx context.Context) {
	defer t.wg.Done()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.mutex.Lock()
			if t.isPaused {
				t.mutex.Unlock()
				continue
			}

			t.elapsed++
			status := t.statusLocked()
			finished := t.elapsed >= t.total
			if finished {
				t.running = false
			}
			t.publish(status)
			t.mutex.Unlock()

			if finished {
				t.log.Debug("timer finished", "total", clock.Seconds(status.Total).String())
				// Уведомляем о завершении отсчета
				select {
				case t.doneChan <- true:
				default:
				}
				return
			}
		}
	}
}

// publish отправляет состояние без блокировки (должен вызываться под мьютексом)
func (t *Timer) publish(status Status) {
	if t.closed {
		return
	}
	select {
	case t.progressChan <- status:
	default:
		// Если канал заполнен, заменяем устаревшее состояние свежим
		select {
		case <-t.progressChan:
		default:
		}
		select {
		case t.progressChan <- status:
		default:
		}
	}
}

// statusLocked собирает состояние (должен вызываться под мьютексом)
func (t *Timer) statusLocked() Status {
	remaining := t.total - t.elapsed
	if remaining < 0 {
		remaining = 0
	}
	return Status{
		Total:     t.total,
		Elapsed:   t.elapsed,
		Remaining: remaining,
		Paused:    t.running && t.isPaused,
	}
}
