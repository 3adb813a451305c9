package assert

import (
	"errors"
	"reflect"
	"testing"
)

// Equal errors if actual is not equal to expected.
func Equal(t *testing.T, expected, actual any, msg ...any) {
	t.Helper()

	if reflect.DeepEqual(expected, actual) {
		return
	}

	t.Errorf("expected: %v, actual: %v", expected, actual)

	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}

	t.FailNow()
}

// True errors unless the condition holds.
func True(t *testing.T, cond bool, msg ...any) {
	t.Helper()

	if cond {
		return
	}

	if len(msg) != 0 {
		t.Fatalf(msg[0].(string), msg[1:]...)
	}

	t.Fatal("condition does not hold")
}

// NoError errors if err is non-nil.
func NoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// IsError errors unless err matches the target in the sense of errors.Is.
func IsError(t *testing.T, target, err error) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected error %v, got nil", target)
	}

	if !errors.Is(err, target) {
		t.Fatalf("expected error %v, got %v", target, err)
	}
}
