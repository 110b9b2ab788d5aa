package chime

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain читает поток до конца и возвращает число сэмплов
func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestTone(t *testing.T) {
	sr := beep.SampleRate(8000)

	tone, err := Tone(sr, 440, 250*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, sr.N(250*time.Millisecond), drain(tone))
}

func TestMelodyLength(t *testing.T) {
	sr := beep.SampleRate(8000)

	var want int
	for _, n := range melody {
		want += sr.N(n.length)
	}

	m, err := Melody(sr)
	require.NoError(t, err)
	assert.Equal(t, want, drain(m))
}

// newTestPlayer создает Player, который вместо динамиков читает поток в горутине
func newTestPlayer(initErr error) (*Player, *int) {
	inits := 0
	p := NewPlayer()
	p.sampleRate = beep.SampleRate(8000)
	p.initSpeaker = func(beep.SampleRate, int) error {
		inits++
		return initErr
	}
	p.playSpeaker = func(s ...beep.Streamer) {
		go drain(beep.Seq(s...))
	}
	p.clearSpeaker = func() {}
	return p, &inits
}

func TestRing(t *testing.T) {
	p, inits := newTestPlayer(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, p.Ring(ctx))
	require.NoError(t, p.Ring(ctx))
	assert.Equal(t, 1, *inits, "динамики инициализируются один раз")
}

func TestRingCanceled(t *testing.T) {
	p, _ := newTestPlayer(nil)
	cleared := false
	p.playSpeaker = func(...beep.Streamer) {}
	p.clearSpeaker = func() { cleared = true }

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, p.Ring(ctx), context.Canceled)
	assert.True(t, cleared)
}

func TestRingInitError(t *testing.T) {
	p, _ := newTestPlayer(errors.New("no audio device"))

	err := p.Ring(context.Background())
	assert.ErrorContains(t, err, "ошибка инициализации динамиков")
}
