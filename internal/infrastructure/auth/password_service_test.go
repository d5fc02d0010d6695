package auth

import (
	"strings"
	"testing"
)

func TestPasswordService_HashAndVerify(t *testing.T) {
	svc := NewPasswordService()

	tests := []struct {
		name      string
		password  string
		candidate string
		want      bool
	}{
		{
			name:      "correct password verifies",
			password:  "pw1",
			candidate: "pw1",
			want:      true,
		},
		{
			name:      "wrong password fails",
			password:  "pw1",
			candidate: "pw2",
			want:      false,
		},
		{
			name:      "empty candidate fails against real hash",
			password:  "pw1",
			candidate: "",
			want:      false,
		},
		{
			name:      "long unicode password round trips",
			password:  "pässwörd-日本語-🔑-with-some-length-to-it",
			candidate: "pässwörd-日本語-🔑-with-some-length-to-it",
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stored, err := svc.Hash(tt.password)
			if err != nil {
				t.Fatalf("Hash() error = %v", err)
			}
			if got := svc.Verify(stored, tt.candidate); got != tt.want {
				t.Errorf("Verify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPasswordService_StoredForm(t *testing.T) {
	svc := NewPasswordService()

	stored, err := svc.Hash("pw1")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	// hex(16-byte salt) + hex(32-byte key)
	if len(stored) != 96 {
		t.Errorf("expected 96 hex chars, got %d", len(stored))
	}
	if strings.Contains(stored, "pw1") {
		t.Error("stored credential must not contain the plaintext")
	}
}

func TestPasswordService_RandomSalt(t *testing.T) {
	svc := NewPasswordService()

	first, err := svc.Hash("pw1")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	second, err := svc.Hash("pw1")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if first == second {
		t.Error("hashing the same password twice should yield different stored values")
	}
	if !svc.Verify(first, "pw1") || !svc.Verify(second, "pw1") {
		t.Error("both stored values should verify the original password")
	}
}

func TestPasswordService_VerifyFailsClosed(t *testing.T) {
	svc := NewPasswordService()

	tests := []struct {
		name   string
		stored string
	}{
		{name: "empty stored value", stored: ""},
		{name: "truncated stored value", stored: "abcd"},
		{name: "non-hex salt", stored: strings.Repeat("zz", 48)},
		{name: "non-hex key", stored: strings.Repeat("ab", 16) + strings.Repeat("zz", 32)},
		{name: "overlong stored value", stored: strings.Repeat("ab", 64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if svc.Verify(tt.stored, "whatever") {
				t.Error("Verify() should fail closed on malformed stored value")
			}
		})
	}
}
