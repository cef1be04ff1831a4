package assert

import (
	"errors"
	"maps"
	"testing"
)

func Equal[T comparable](t *testing.T, actual, expected T) {
	t.Helper()

	if actual != expected {
		t.Errorf("got: %v; want: %v", actual, expected)
	}
}

func SliceEqual[T comparable](t *testing.T, actual, expected []T) {
	t.Helper()

	if len(actual) != len(expected) {
		t.Errorf("different sizes. got: (%v, len: %d), want: (%v, len: %d)", actual, len(actual), expected, len(expected))
		return
	}

	for i := 0; i < len(actual); i++ {
		Equal(t, actual[i], expected[i])
	}
}

func MapEqual[S, T comparable](t *testing.T, actual, expected map[S]T) {
	t.Helper()

	if !maps.Equal(actual, expected) {
		t.Errorf("got: %v, want: %v", actual, expected)
	}
}

func ErrorStatus(t *testing.T, err error, expectError bool) bool {
	t.Helper()

	if err != nil {
		if !expectError {
			t.Errorf("got unexpected error: %s", err.Error())
		}
		return false
	}

	if expectError {
		t.Error("did not get expected error")
		return false
	}

	return true
}

// ErrorAs fails unless err holds an error of type E somewhere in its chain.
func ErrorAs[E error](t *testing.T, err error) {
	t.Helper()

	var target E
	if !errors.As(err, &target) {
		t.Errorf("got error: %v; want error of type %T", err, target)
	}
}
