package parameter

import "time"

// Loop timing
const (
	// TickInterval drives both motion and time text (~30 FPS)
	TickInterval = 33 * time.Millisecond

	// EventQueueSize is the buffered capacity of the terminal event channel
	EventQueueSize = 64
)
