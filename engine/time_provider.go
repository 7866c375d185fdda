package engine

import "time"

// TimeProvider supplies wall-clock readings to the session clock
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads time.Now, which carries a monotonic component
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

func (MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
