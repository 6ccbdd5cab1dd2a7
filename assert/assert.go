// Package assert includes some helper methods used for testing
package assert

import (
	"errors"
	"testing"
)

// Errors checks the validity of the expected error and returns false if the assertion failed
func Errors(t *testing.T, expectError bool, err error, fields Fields) bool {
	t.Helper()

	if expectError && err == nil {
		t.Errorf("Expected an error, but received 'nil' (%s)", fields.String())
	}

	if !expectError && err != nil {
		t.Errorf("No error was expected, but received '%v' (%s)", err, fields.String())
	}

	return !expectError
}

// ErrorsIs checks that err matches the target error and returns false if the assertion failed
func ErrorsIs(t *testing.T, err, target error, fields Fields) bool {
	t.Helper()

	if !errors.Is(err, target) {
		t.Errorf("Expected error '%v', but received '%v' (%s)", target, err, fields.String())
		return false
	}
	return true
}

// Equals checks that the actual value equals the expected one and returns false if the assertion failed
func Equals(t *testing.T, expected, actual interface{}, fields Fields) bool {
	t.Helper()

	if expected != actual {
		t.Errorf("Expected '%v', but received '%v' (%s)", expected, actual, fields.String())
		return false
	}
	return true
}
