package domain

import "time"

// AuditEventType defines the type of audit event
type AuditEventType string

const (
	// Signup lifecycle events
	AccountRegisteredEvent AuditEventType = "ACCOUNT_REGISTERED"
	AccountVerifiedEvent   AuditEventType = "ACCOUNT_VERIFIED"
	SignupOTPResentEvent   AuditEventType = "SIGNUP_OTP_RESENT"

	// Authentication events
	LoginEvent        AuditEventType = "LOGIN"
	LoginFailureEvent AuditEventType = "LOGIN_FAILED"

	// Password reset events
	ResetRequestedEvent AuditEventType = "PASSWORD_RESET_REQUESTED"
	ResetVerifiedEvent  AuditEventType = "PASSWORD_RESET_VERIFIED"
	ResetCompletedEvent AuditEventType = "PASSWORD_RESET_COMPLETED"

	// Notification events
	MailFailureEvent AuditEventType = "MAIL_SEND_FAILED"
)

// AuditEvent represents a business event that occurred in the system
type AuditEvent struct {
	EventType AuditEventType `json:"event_type"`
	AccountID string         `json:"account_id,omitempty"`
	Email     string         `json:"email,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	ErrorMsg  string         `json:"error_msg,omitempty"`
	Success   bool           `json:"success"`
}

// AuditLogger records business events to an operational log. Logging is
// best-effort and never influences the outcome of the operation it records.
type AuditLogger interface {
	LogEvent(event *AuditEvent)
}

// NewAuditEvent creates a new audit event with common fields populated
func NewAuditEvent(eventType AuditEventType, accountID string) *AuditEvent {
	return &AuditEvent{
		EventType: eventType,
		AccountID: accountID,
		Timestamp: time.Now().UTC(),
		Success:   true,
	}
}

// WithError sets error information on the audit event
func (e *AuditEvent) WithError(err error) *AuditEvent {
	e.Success = false
	if err != nil {
		e.ErrorMsg = err.Error()
	}
	return e
}

// WithEmail sets the email field
func (e *AuditEvent) WithEmail(email string) *AuditEvent {
	e.Email = email
	return e
}
