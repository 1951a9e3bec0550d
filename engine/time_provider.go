package engine

import "time"

// TimeProvider supplies the instant shown by the clock
type TimeProvider interface {
	Now() time.Time
}

// SystemTimeProvider reads the wall clock with its monotonic component
type SystemTimeProvider struct{}

// NewSystemTimeProvider creates the real time source
func NewSystemTimeProvider() *SystemTimeProvider {
	return &SystemTimeProvider{}
}

// Now returns time.Now()
func (p *SystemTimeProvider) Now() time.Time {
	return time.Now()
}
