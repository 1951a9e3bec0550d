package core

// SoundType represents the clock's sound cues
type SoundType int

const (
	SoundBounce SoundType = iota // Wall collision
	SoundBan                     // Color banned
	SoundTypeCount
)
