// Package audio plays short sine ticks while sand is being poured.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	tickLength = 15 * time.Millisecond
	minGap     = 60 * time.Millisecond
	baseFreq   = 660
	freqSpread = 220
)

// Pourer plays a short tick for every successful placement, throttled so a
// held mouse button produces a patter rather than a tone.
type Pourer struct {
	gate  gate
	pitch int
}

// New initializes the speaker. The returned Pourer is usable even when the
// error is non-nil; it just stays silent.
func New() (*Pourer, error) {
	p := &Pourer{gate: gate{gap: minGap, now: time.Now}}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return p, fmt.Errorf("init speaker: %w", err)
	}
	p.gate.enabled = true
	return p, nil
}

// Pour plays a tick unless one played too recently.
func (p *Pourer) Pour() {
	if p == nil || !p.gate.open() {
		return
	}
	p.pitch = (p.pitch + 7) % freqSpread
	tone, err := generators.SineTone(sampleRate, float64(baseFreq+p.pitch))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(tickLength), tone))
}

// Close stops playback.
func (p *Pourer) Close() {
	if p == nil || !p.gate.enabled {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.gate.enabled = false
}

// gate lets at most one event through per gap.
type gate struct {
	enabled bool
	gap     time.Duration
	last    time.Time
	now     func() time.Time
}

func (g *gate) open() bool {
	if !g.enabled {
		return false
	}
	now := g.now()
	if !g.last.IsZero() && now.Sub(g.last) < g.gap {
		return false
	}
	g.last = now
	return true
}
