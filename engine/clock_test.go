package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, got t1=%v, t2=%v", t1, t2)
	}
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if !mock.Now().Equal(start) {
		t.Errorf("Expected initial time %v, got %v", start, mock.Now())
	}

	mock.Advance(90 * time.Second)
	if want := start.Add(90 * time.Second); !mock.Now().Equal(want) {
		t.Errorf("Expected %v after Advance, got %v", want, mock.Now())
	}

	later := start.Add(time.Hour)
	mock.SetTime(later)
	if !mock.Now().Equal(later) {
		t.Errorf("Expected %v after SetTime, got %v", later, mock.Now())
	}
}

func TestClockElapsed(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(1000, 0))
	clock := NewClock(mock)

	if got := clock.Elapsed(); got != 0 {
		t.Fatalf("Expected zero elapsed at start, got %v", got)
	}

	mock.Advance(250 * time.Millisecond)
	if got := clock.Elapsed(); got != 250*time.Millisecond {
		t.Errorf("Expected 250ms elapsed, got %v", got)
	}
}

func TestClockPauseExcludesPausedTime(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(1000, 0))
	clock := NewClock(mock)

	mock.Advance(time.Second)
	clock.Pause()
	if !clock.IsPaused() {
		t.Fatal("Expected clock to be paused")
	}

	mock.Advance(5 * time.Second)
	if got := clock.Elapsed(); got != time.Second {
		t.Errorf("Expected elapsed frozen at 1s while paused, got %v", got)
	}
	if got := clock.TotalPaused(); got != 5*time.Second {
		t.Errorf("Expected 5s of pause in progress, got %v", got)
	}

	// double pause is a no-op
	clock.Pause()
	clock.Resume()
	mock.Advance(2 * time.Second)
	if got := clock.Elapsed(); got != 3*time.Second {
		t.Errorf("Expected 3s elapsed after resume, got %v", got)
	}

	clock.Resume()
	if got := clock.TotalPaused(); got != 5*time.Second {
		t.Errorf("Expected total pause to stay 5s, got %v", got)
	}
}

func TestClockReset(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(1000, 0))
	clock := NewClock(mock)

	mock.Advance(time.Minute)
	clock.Pause()
	mock.Advance(time.Minute)
	clock.Reset()

	if clock.IsPaused() {
		t.Error("Expected reset clock to run")
	}
	if got := clock.Elapsed(); got != 0 {
		t.Errorf("Expected zero elapsed after reset, got %v", got)
	}
	mock.Advance(time.Second)
	if got := clock.Elapsed(); got != time.Second {
		t.Errorf("Expected 1s after reset, got %v", got)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("Default config should validate: %v", err)
	}

	bad := []func(*Config){
		func(c *Config) { c.Rows = 1 },
		func(c *Config) { c.Cols = 0 },
		func(c *Config) { c.Density = -1 },
		func(c *Config) { c.Density = 150 },
		func(c *Config) { c.Factories = -2 },
		func(c *Config) { c.RatDamage = -1 },
		func(c *Config) { c.FPS = 0 },
	}
	for i, mutate := range bad {
		cfg := DefaultConfig()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("case %d: expected validation error for %+v", i, cfg)
		}
	}
}
