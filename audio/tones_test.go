package audio

import (
	"math"
	"testing"
)

func streamSamples(g *ToneGenerator, n int) [][2]float64 {
	buf := make([][2]float64, n)
	got, ok := g.Stream(buf)
	if got != n || !ok {
		panic("generator refused to fill buffer")
	}
	return buf
}

func peak(samples [][2]float64) float64 {
	max := 0.0
	for _, s := range samples {
		if a := math.Abs(s[0]); a > max {
			max = a
		}
	}
	return max
}

// TestToneGeneratorSampleBounds verifies output never clips and stays mono-symmetric
func TestToneGeneratorSampleBounds(t *testing.T) {
	g := NewToneGenerator(sampleRate, 600, 1.0)
	samples := streamSamples(g, 4800)

	for i, s := range samples {
		if s[0] < -1.0 || s[0] > 1.0 {
			t.Fatalf("Sample %d out of range: %f", i, s[0])
		}
		if s[0] != s[1] {
			t.Fatalf("Sample %d differs between channels: %f vs %f", i, s[0], s[1])
		}
	}
}

// TestToneGeneratorAttackEnvelope verifies the onset ramps instead of popping
func TestToneGeneratorAttackEnvelope(t *testing.T) {
	g := NewToneGenerator(sampleRate, 600, 1.0)

	attackSamples := int(toneAttackS * float64(sampleRate))
	early := streamSamples(g, attackSamples/4)
	late := streamSamples(g, 4800)

	if peak(early) >= peak(late) {
		t.Errorf("Early peak %f should stay below settled peak %f", peak(early), peak(late))
	}
	if early[0][0] != 0 {
		t.Errorf("First sample should be silent, got %f", early[0][0])
	}
}

// TestToneGeneratorGainScales verifies gain controls output amplitude
func TestToneGeneratorGainScales(t *testing.T) {
	full := peak(streamSamples(NewToneGenerator(sampleRate, 600, 1.0), 9600))
	half := peak(streamSamples(NewToneGenerator(sampleRate, 600, 0.5), 9600))
	mute := peak(streamSamples(NewToneGenerator(sampleRate, 600, 0), 9600))

	if mute != 0 {
		t.Errorf("Zero gain should silence output, got peak %f", mute)
	}
	if math.Abs(half-full/2) > 0.01 {
		t.Errorf("Half gain peak %f should be about half of %f", half, full)
	}
}

// TestToneGeneratorErr verifies the streamer never reports errors
func TestToneGeneratorErr(t *testing.T) {
	g := NewToneGenerator(sampleRate, 600, 1.0)
	streamSamples(g, 128)

	if err := g.Err(); err != nil {
		t.Errorf("Unexpected generator error: %v", err)
	}
}
