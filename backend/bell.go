package backend

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Bell signals an event audibly
type Bell interface {
	Ring()
	Close()
}

// SilentBell does nothing
type SilentBell struct{}

// Ring implements Bell
func (SilentBell) Ring() {}

// Close implements Bell
func (SilentBell) Close() {}

// ToneBell plays a short sine tone through the default audio device
type ToneBell struct {
	sampleRate beep.SampleRate
	freq       float64
	duration   time.Duration
	volume     float64
}

// NewToneBell initialises the speaker for a tone of freq Hz lasting d
func NewToneBell(freq float64, d time.Duration) (*ToneBell, error) {
	sampleRate := beep.SampleRate(44100)
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("initialising speaker: %w", err)
	}
	return &ToneBell{sampleRate: sampleRate, freq: freq, duration: d, volume: -2}, nil
}

// Ring implements Bell
func (b *ToneBell) Ring() {
	sine, err := generators.SineTone(b.sampleRate, b.freq)
	if err != nil {
		return
	}
	tone := beep.Take(b.sampleRate.N(b.duration), sine)
	speaker.Play(&effects.Volume{Streamer: tone, Base: 2, Volume: b.volume})
}

// Close implements Bell
func (b *ToneBell) Close() {
	speaker.Close()
}

// OpenBell returns a ToneBell when enabled and the speaker is available, else a SilentBell
// The error reports why audio was unavailable; the returned bell is always usable
func OpenBell(enabled bool) (Bell, error) {
	if !enabled {
		return SilentBell{}, nil
	}
	b, err := NewToneBell(880, 50*time.Millisecond)
	if err != nil {
		return SilentBell{}, err
	}
	return b, nil
}
