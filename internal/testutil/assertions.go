package testutil

import (
	"errors"
	"testing"

	apperrors "catalog/internal/errors"
)

// AssertAppError checks that err matches the sentinel by error code, so
// wrapped copies and custom messages still count.
func AssertAppError(t *testing.T, err error, want *apperrors.AppError) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected %s, got nil", want.Code)
	}
	if !errors.Is(err, want) {
		got, _ := apperrors.From(err)
		t.Errorf("expected error code %q, got %q (%v)", want.Code, got.Code, err)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
