package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/drift-clock/core"
)

// drain streams s to completion and returns every sample
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			return out
		}
	}
}

func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	samples := drain(osc)
	if len(samples) != rate.N(100*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(100*time.Millisecond), len(samples))
	}
	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
			t.Fatalf("Sample %d invalid: %v", i, s)
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(220, 20*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	for i, s := range drain(osc) {
		if s[0] != -1 && s[0] != 1 {
			t.Fatalf("Square sample %d should be -1 or 1, got %f", i, s[0])
		}
	}
}

func TestOscillatorTriangle(t *testing.T) {
	osc := NewOscillator(100, 20*time.Millisecond, WaveTriangle, beep.SampleRate(44100))
	samples := drain(osc)
	// Phase 0 starts at the trough
	if samples[0][0] != -1 {
		t.Errorf("Expected first triangle sample -1, got %f", samples[0][0])
	}
	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 {
			t.Fatalf("Triangle sample %d out of range: %f", i, s[0])
		}
	}
}

func TestDecayFadesOut(t *testing.T) {
	rate := beep.SampleRate(44100)
	dur := 50 * time.Millisecond
	osc := NewOscillator(0, dur, WaveSquare, rate) // constant 1.0 at zero frequency
	samples := drain(NewDecay(osc, dur, 5*time.Millisecond, rate))

	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	peak := rate.N(5 * time.Millisecond)
	if math.Abs(samples[peak][0]-1) > 0.01 {
		t.Errorf("Expected full level after attack, got %f", samples[peak][0])
	}
	last := samples[len(samples)-1][0]
	if last > 0.01 {
		t.Errorf("Expected near silence at the end, got %f", last)
	}
}

func TestToneDurations(t *testing.T) {
	rate := beep.SampleRate(44100)
	bounce := len(drain(Tone(core.SoundBounce, rate)))
	ban := len(drain(Tone(core.SoundBan, rate)))
	if bounce == 0 || ban <= bounce {
		t.Errorf("Expected ban cue longer than bounce cue, got bounce=%d ban=%d", bounce, ban)
	}
}

func TestChimeSilentUntilInitialized(t *testing.T) {
	c := NewChime()
	if c.Enabled() {
		t.Error("Expected chime disabled before Initialize")
	}
	// Must not touch the speaker
	c.Play(core.SoundBounce)
	c.SetEnabled(true)
	if c.Enabled() {
		t.Error("Expected chime to stay disabled without a device")
	}
	c.Close()
}
