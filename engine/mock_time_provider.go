package engine

import (
	"context"
	"sync"
	"time"
)

// MockTimeProvider is a manual clock for tests
// It is also a Sleeper: sleeping records the duration and moves the clock, never blocking
type MockTimeProvider struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

var (
	_ TimeProvider = (*MockTimeProvider)(nil)
	_ Sleeper      = (*MockTimeProvider)(nil)
)

// NewMockTimeProvider creates a clock reading start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// SetTime jumps the clock to t
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

// Advance moves the clock forward by d without recording a sleep
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// Sleep records d and advances the clock by it
func (m *MockTimeProvider) Sleep(_ context.Context, d time.Duration) {
	m.mu.Lock()
	m.sleeps = append(m.sleeps, d)
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// Sleeps returns a copy of every recorded sleep
func (m *MockTimeProvider) Sleeps() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.sleeps...)
}
