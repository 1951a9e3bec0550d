// Package audio plays the short cues for bounces and color bans.
package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/drift-clock/core"
	"github.com/lixenwraith/drift-clock/parameter"
)

// Player is what the loop needs from the chime; tests substitute a recorder
type Player interface {
	Play(sound core.SoundType)
}

// Chime mixes cues into a single speaker stream
type Chime struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	initialized bool
	enabled     bool
}

// NewChime creates a chime; no device is opened until Initialize
func NewChime() *Chime {
	return &Chime{
		mixer: &beep.Mixer{},
		rate:  beep.SampleRate(parameter.AudioSampleRate),
	}
}

// Initialize opens the speaker; failure leaves the chime silent
func (c *Chime) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(c.rate, c.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("failed to open speaker: %w", err)
	}
	speaker.Play(c.mixer)
	c.initialized = true
	c.enabled = true
	log.Printf("audio: speaker opened at %d Hz", c.rate)
	return nil
}

// SetEnabled mutes or unmutes cues without closing the device
func (c *Chime) SetEnabled(on bool) {
	c.mu.Lock()
	c.enabled = on
	c.mu.Unlock()
}

// Enabled reports whether cues will be heard
func (c *Chime) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized && c.enabled
}

// Play queues a cue; a no-op while muted or uninitialized
func (c *Chime) Play(sound core.SoundType) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || !c.enabled {
		return
	}
	speaker.Lock()
	c.mixer.Add(Tone(sound, c.rate))
	speaker.Unlock()
}

// Close stops all cues and releases the speaker
func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.initialized = false
}
