package mqtt

import (
	"fmt"
	"sync"

	"github.com/hamburgroadsurfer-create/LRP/core/model"
)

// MockNotifier records notified assessments for tests.
type MockNotifier struct {
	mu       sync.Mutex
	Notified [][]model.Assessment
	Fail     bool
	Closed   bool
}

// NewMockNotifier creates a new MockNotifier.
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

// NotifyAtRisk records the batch or returns an error if configured to fail.
func (m *MockNotifier) NotifyAtRisk(assessments []model.Assessment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail {
		return fmt.Errorf("notify failed")
	}
	m.Notified = append(m.Notified, assessments)
	return nil
}

// Close marks the notifier closed.
func (m *MockNotifier) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return nil
}
