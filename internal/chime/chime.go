// Package chime проигрывает звуковой сигнал по завершении таймера
package chime

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// DefaultSampleRate - частота дискретизации сигнала
const DefaultSampleRate = beep.SampleRate(44100)

// note описывает одну ноту сигнала
type note struct {
	freq   float64
	length time.Duration
}

// melody - два коротких тона с паузой между ними
var melody = []note{
	{freq: 880, length: 180 * time.Millisecond},
	{freq: 0, length: 80 * time.Millisecond},
	{freq: 1318.5, length: 320 * time.Millisecond},
}

// Tone возвращает синусоидальный тон заданной частоты и длины
func Tone(sr beep.SampleRate, freq float64, length time.Duration) (beep.Streamer, error) {
	tone, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, fmt.Errorf("ошибка генерации тона %.1f Гц: %w", freq, err)
	}
	return beep.Take(sr.N(length), tone), nil
}

// Melody собирает сигнал из нот; нулевая частота означает паузу
func Melody(sr beep.SampleRate) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(melody))
	for _, n := range melody {
		if n.freq == 0 {
			parts = append(parts, beep.Silence(sr.N(n.length)))
			continue
		}
		tone, err := Tone(sr, n.freq, n.length)
		if err != nil {
			return nil, err
		}
		parts = append(parts, tone)
	}

	// Приглушаем сигнал, чтобы он не был резким
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   -1.5,
	}, nil
}

// Player проигрывает сигнал через динамики
type Player struct {
	mutex       sync.Mutex
	sampleRate  beep.SampleRate
	initialized bool

	// Функции работы с динамиками; подменяются в тестах
	initSpeaker  func(sr beep.SampleRate, bufferSize int) error
	playSpeaker  func(s ...beep.Streamer)
	clearSpeaker func()
}

// NewPlayer создает новый экземпляр Player
func NewPlayer() *Player {
	return &Player{
		sampleRate:   DefaultSampleRate,
		initSpeaker:  speaker.Init,
		playSpeaker:  speaker.Play,
		clearSpeaker: speaker.Clear,
	}
}

// Ring проигрывает сигнал и ждет его окончания или отмены контекста
func (p *Player) Ring(ctx context.Context) error {
	if err := p.init(); err != nil {
		return err
	}

	streamer, err := Melody(p.sampleRate)
	if err != nil {
		return err
	}

	done := make(chan struct{})
	p.playSpeaker(beep.Seq(streamer, beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		p.clearSpeaker()
		return ctx.Err()
	}
}

// init инициализирует динамики (только один раз)
func (p *Player) init() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.initialized {
		return nil
	}
	if err := p.initSpeaker(p.sampleRate, p.sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("ошибка инициализации динамиков: %w", err)
	}
	p.initialized = true
	return nil
}
