package errors_test

import (
	"errors"
	"net/http"
	"testing"

	pkgErrors "item-service/pkg/errors"
)

func TestHTTPError(t *testing.T) {
	err := pkgErrors.NewHTTPError(http.StatusConflict, "conflict")
	if err.Error() != "conflict" {
		t.Errorf("expected message 'conflict', got %q", err.Error())
	}

	withFields := err.WithFields(map[string]string{"email": "invalid"})
	if withFields.Fields["email"] != "invalid" {
		t.Errorf("expected field detail, got %v", withFields.Fields)
	}
	if err.Fields != nil {
		t.Errorf("WithFields must not mutate the receiver")
	}

	var target *pkgErrors.HTTPError
	if !errors.As(error(withFields), &target) || target.Code != http.StatusConflict {
		t.Errorf("expected errors.As to find HTTPError with 409")
	}
}

func TestWrapf(t *testing.T) {
	base := errors.New("boom")
	wrapped := pkgErrors.Wrapf(base, "op %d", 7)
	if !errors.Is(wrapped, base) {
		t.Fatalf("expected wrapped error to match base")
	}
	if wrapped.Error() != "op 7: boom" {
		t.Errorf("unexpected message %q", wrapped.Error())
	}
	if pkgErrors.Wrapf(nil, "x") != nil {
		t.Errorf("expected nil for nil error")
	}
}
