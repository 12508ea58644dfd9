package testutil

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	apperrors "figimap/internal/errors"
	"figimap/internal/mapping"
	"figimap/internal/models"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertLoggedJobs rebuilds the jobs held by entries and compares them, in
// order, with want.
func AssertLoggedJobs(t *testing.T, entries []models.JobLog, want []mapping.MappingJob) {
	t.Helper()

	got := make([]mapping.MappingJob, len(entries))
	for i, e := range entries {
		got[i] = e.Job()
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("logged jobs mismatch (-want +got):\n%s", diff)
	}
}
