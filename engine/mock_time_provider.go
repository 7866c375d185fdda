package engine

import "time"

// MockTimeProvider is a manually advanced time source for tests
type MockTimeProvider struct {
	current time.Time
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{current: start}
}

func (m *MockTimeProvider) Now() time.Time {
	return m.current
}

func (m *MockTimeProvider) SetTime(t time.Time) {
	m.current = t
}

// Advance moves the mocked time forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}
