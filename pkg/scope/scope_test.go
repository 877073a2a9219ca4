package scope

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCreateAndVerifyToken(t *testing.T) {
	m, err := New("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	token, err := m.CreateToken("alice", "admin")
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	payload, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if payload.Subject != "alice" || payload.Role != "admin" {
		t.Errorf("unexpected payload %+v", payload)
	}
	if payload.ID == "" {
		t.Error("expected a token id")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer, _ := New("secret-a", time.Hour)
	verifier, _ := New("secret-b", time.Hour)

	token, _ := issuer.CreateToken("bob", "user")
	if _, err := verifier.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	mi, _ := New("secret", time.Minute)
	m := mi.(*manager)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := m.CreateToken("carol", "user")
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	m.now = time.Now
	if _, err := m.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m, _ := New("secret", time.Hour)
	if _, err := m.Verify("not.a.jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestNewRequiresSecret(t *testing.T) {
	if _, err := New("", time.Hour); !errors.Is(err, ErrMissingSecret) {
		t.Errorf("expected ErrMissingSecret, got %v", err)
	}
}

func TestScopeContext(t *testing.T) {
	ctx := SetScopeToContext(context.Background(), Scope{Subject: "dave", Role: "user"})
	sc, ok := GetScopeFromContext(ctx)
	if !ok || sc.Subject != "dave" {
		t.Errorf("unexpected scope %+v (ok=%v)", sc, ok)
	}
	if _, ok := GetScopeFromContext(context.Background()); ok {
		t.Error("expected no scope on empty context")
	}
}
