package audio

import (
	"math"

	"github.com/gopxl/beep"
)

const (
	sampleRate = beep.SampleRate(48000)

	// toneAttackS is the onset ramp in seconds, long enough to kill clicks
	toneAttackS = 0.005

	toneBaseAmplitude     = 0.6
	toneOvertoneAmplitude = 0.2
)

// ToneGenerator produces a steady chip-style tone at a fixed frequency
type ToneGenerator struct {
	sr   beep.SampleRate
	freq float64
	gain float64
	pos  int
}

// NewToneGenerator creates a tone generator
func NewToneGenerator(sr beep.SampleRate, freq, gain float64) *ToneGenerator {
	return &ToneGenerator{
		sr:   sr,
		freq: freq,
		gain: gain,
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fundamental plus third harmonic for a square-ish chip voice
		sample := toneBaseAmplitude * math.Sin(2*math.Pi*g.freq*t)
		sample += toneOvertoneAmplitude * math.Sin(2*math.Pi*g.freq*3*t)

		// Envelope to soften the onset
		envelope := math.Min(t/toneAttackS, 1.0)
		sample *= envelope * g.gain

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}
