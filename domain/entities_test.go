package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestAccount_PublicView(t *testing.T) {
	issued := time.Now()
	account := &Account{
		ID:                 "8f7d2c1a-0000-4000-8000-000000000001",
		Username:           "alice",
		Email:              "a@x.com",
		PasswordHash:       "aa11bb22",
		IsVerified:         true,
		SignupOTP:          "123456",
		SignupOTPCreatedAt: &issued,
		AccessToken:        "header.payload.sig",
		RefreshToken:       "header.payload.sig2",
	}

	view := account.PublicView()

	if view.ID != account.ID {
		t.Errorf("expected id %q, got %q", account.ID, view.ID)
	}
	if view.Username != "alice" {
		t.Errorf("expected username alice, got %q", view.Username)
	}
	if view.Email != "a@x.com" {
		t.Errorf("expected email a@x.com, got %q", view.Email)
	}
	if !view.IsVerified {
		t.Error("expected verified view")
	}
}

func TestPublicAccount_NeverLeaksSecrets(t *testing.T) {
	account := &Account{
		ID:           "8f7d2c1a-0000-4000-8000-000000000002",
		Username:     "bob",
		Email:        "b@x.com",
		PasswordHash: "deadbeef",
		SignupOTP:    "654321",
	}

	raw, err := json.Marshal(account.PublicView())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	for _, secret := range []string{"deadbeef", "654321"} {
		if strings.Contains(string(raw), secret) {
			t.Errorf("public view leaked secret %q: %s", secret, raw)
		}
	}
}

func TestAuditEvent_Builders(t *testing.T) {
	ev := NewAuditEvent(LoginFailureEvent, "").
		WithEmail("a@x.com").
		WithError(ErrInvalidCredentials)

	if ev.Success {
		t.Error("event with error should not be marked success")
	}
	if ev.Email != "a@x.com" {
		t.Errorf("expected email a@x.com, got %q", ev.Email)
	}
	if ev.ErrorMsg != ErrInvalidCredentials.Error() {
		t.Errorf("unexpected error message %q", ev.ErrorMsg)
	}
	if ev.Timestamp.IsZero() {
		t.Error("timestamp should be populated")
	}
}
