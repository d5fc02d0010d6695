package services

import (
	"log"

	"github.com/Guhan-3/inflate/domain"
)

// LogAuditLogger implements domain.AuditLogger on the process log
type LogAuditLogger struct{}

// NewLogAuditLogger creates a new log-backed audit logger
func NewLogAuditLogger() domain.AuditLogger {
	return &LogAuditLogger{}
}

// LogEvent implements domain.AuditLogger
func (l *LogAuditLogger) LogEvent(event *domain.AuditEvent) {
	if event.Success {
		log.Printf("%s: account_id=%s email=%s timestamp=%s",
			event.EventType, event.AccountID, event.Email, event.Timestamp.Format("2006-01-02T15:04:05Z07:00"))
		return
	}
	log.Printf("%s: account_id=%s email=%s error=%q timestamp=%s",
		event.EventType, event.AccountID, event.Email, event.ErrorMsg, event.Timestamp.Format("2006-01-02T15:04:05Z07:00"))
}

// Compile-time interface compliance verification
var _ domain.AuditLogger = (*LogAuditLogger)(nil)
