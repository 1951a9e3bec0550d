package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/drift-clock/core"
	"github.com/lixenwraith/drift-clock/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a wave of freq Hz lasting duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay fades a stream linearly to silence after a short attack
type decay struct {
	streamer beep.Streamer
	position int
	attack   int
	total    int
}

// NewDecay shapes s with a linear attack then a linear fade over duration
func NewDecay(s beep.Streamer, duration, attack time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, attack: rate.N(attack), total: rate.N(duration)}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if d.position >= d.total {
			return i, i > 0
		}

		vol := float64(d.total-d.position) / float64(max(d.total-d.attack, 1))
		if d.position < d.attack {
			vol = float64(d.position) / float64(d.attack)
		}
		vol = math.Min(math.Max(vol, 0), 1)

		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume wraps s with a linear gain; math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Tone builds the streamer for a sound cue
func Tone(sound core.SoundType, rate beep.SampleRate) beep.Streamer {
	switch sound {
	case core.SoundBan:
		osc := NewOscillator(parameter.BanFrequency, parameter.BanDuration, WaveTriangle, rate)
		return newVolume(NewDecay(osc, parameter.BanDuration, 5*time.Millisecond, rate), parameter.BanVolume)
	default:
		osc := NewOscillator(parameter.BounceFrequency, parameter.BounceDuration, WaveSine, rate)
		return newVolume(NewDecay(osc, parameter.BounceDuration, 2*time.Millisecond, rate), parameter.BounceVolume)
	}
}
