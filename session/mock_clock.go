package session

import (
	"sync"
	"time"
)

// MockClock provides a controllable time source for testing. Sleep
// advances the clock instead of blocking, so timed loops run instantly.
type MockClock struct {
	mu  sync.RWMutex
	now time.Time

	// OnSleep, when set, is invoked after each Sleep with the new time.
	// Tests use it to inject events at a chosen elapsed offset.
	OnSleep func(now time.Time)
}

// NewMockClock creates a mock clock starting at the given time
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{now: start}
}

// Now returns the current mocked time
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Sleep advances the mocked time by d
func (m *MockClock) Sleep(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	now := m.now
	m.mu.Unlock()

	if m.OnSleep != nil {
		m.OnSleep(now)
	}
}

// Advance moves the clock forward without sleeping semantics
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
