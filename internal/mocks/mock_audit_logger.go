package mocks

import "github.com/Guhan-3/inflate/domain"

// MockAuditLogger implements domain.AuditLogger for testing, recording
// every event it receives.
type MockAuditLogger struct {
	Events []*domain.AuditEvent
}

// NewMockAuditLogger creates a new MockAuditLogger
func NewMockAuditLogger() *MockAuditLogger {
	return &MockAuditLogger{}
}

// LogEvent records the event
func (m *MockAuditLogger) LogEvent(event *domain.AuditEvent) {
	m.Events = append(m.Events, event)
}

// HasEvent reports whether an event of the given type was logged
func (m *MockAuditLogger) HasEvent(eventType domain.AuditEventType) bool {
	for _, ev := range m.Events {
		if ev.EventType == eventType {
			return true
		}
	}
	return false
}

// Compile-time interface compliance verification
var _ domain.AuditLogger = (*MockAuditLogger)(nil)
