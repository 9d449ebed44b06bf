package assert

import (
	"errors"
	"testing"
)

// Equal fails if actual is not equal to expected.
func Equal[T comparable](t *testing.T, expected, actual T, msg ...any) {
	t.Helper()

	if expected == actual {
		return
	}

	t.Errorf("expected: %v, actual: %v", expected, actual)
	fail(t, msg)
}

// True fails if condition is false.
func True(t *testing.T, condition bool, msg ...any) {
	t.Helper()

	if condition {
		return
	}

	t.Errorf("condition is false")
	fail(t, msg)
}

// False fails if condition is true.
func False(t *testing.T, condition bool, msg ...any) {
	t.Helper()

	if !condition {
		return
	}

	t.Errorf("condition is true")
	fail(t, msg)
}

// NoError fails if err is non-nil.
func NoError(t *testing.T, err error, msg ...any) {
	t.Helper()

	if err == nil {
		return
	}

	t.Errorf("unexpected error: %v", err)
	fail(t, msg)
}

// ErrorIs fails if err does not match the target error.
func ErrorIs(t *testing.T, err, target error, msg ...any) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Errorf("expected error: %v, actual: %v", target, err)
	fail(t, msg)
}

func fail(t *testing.T, msg []any) {
	t.Helper()

	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}

	t.FailNow()
}
