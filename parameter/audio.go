package parameter

import "time"

// Bounce chime
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 100 * time.Millisecond

	BounceFrequency = 880.0
	BounceDuration  = 60 * time.Millisecond
	BounceVolume    = 0.3

	BanFrequency = 220.0
	BanDuration  = 120 * time.Millisecond
	BanVolume    = 0.4
)
