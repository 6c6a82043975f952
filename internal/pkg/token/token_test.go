package token

import (
	"testing"
	"time"
)

func TestGenerateVerifyRoundTrip(t *testing.T) {
	m := NewManager("test-secret", "zabudowy-service", "zabudowy-admin", time.Hour)

	signed, jti, err := m.Generate("user-1", "admin@zabudowy.pl", "ADMIN")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if jti == "" {
		t.Fatal("empty jti")
	}

	claims, err := m.Verify(signed)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "admin@zabudowy.pl" || claims.Role != "ADMIN" {
		t.Errorf("claims = %+v, want original identity", claims)
	}
	if claims.ID != jti {
		t.Errorf("claims.ID = %q, want jti %q", claims.ID, jti)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signer := NewManager("secret-a", "zabudowy-service", "zabudowy-admin", time.Hour)
	verifier := NewManager("secret-b", "zabudowy-service", "zabudowy-admin", time.Hour)

	signed, _, err := signer.Generate("user-1", "a@b.pl", "ADMIN")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := verifier.Verify(signed); err == nil {
		t.Fatal("token signed with a different secret verified")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m := NewManager("test-secret", "zabudowy-service", "zabudowy-admin", -time.Minute)

	signed, _, err := m.Generate("user-1", "a@b.pl", "ADMIN")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := m.Verify(signed); err == nil {
		t.Fatal("expired token verified")
	}
}

func TestVerifyRejectsWrongAudience(t *testing.T) {
	signer := NewManager("test-secret", "zabudowy-service", "other-audience", time.Hour)
	verifier := NewManager("test-secret", "zabudowy-service", "zabudowy-admin", time.Hour)

	signed, _, err := signer.Generate("user-1", "a@b.pl", "ADMIN")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := verifier.Verify(signed); err == nil {
		t.Fatal("token with wrong audience verified")
	}
}

func TestGenerateRequiresSecret(t *testing.T) {
	m := NewManager("", "zabudowy-service", "zabudowy-admin", time.Hour)

	if _, _, err := m.Generate("user-1", "a@b.pl", "ADMIN"); err == nil {
		t.Fatal("token generated with empty secret")
	}
}
