package rterror

import "testing"

func TestErrorWithMessage(t *testing.T) {
	err := New(VariableNotFound, "x", 12)
	expected := "VARIABLE_NOT_FOUND at line 12: x"
	if err.Error() != expected {
		t.Errorf("got %q, expected %q", err.Error(), expected)
	}
}

func TestErrorWithoutMessage(t *testing.T) {
	err := New(IndexOutOfRange, "", 3)
	expected := "INDEX_OUT_RANGE at line 3"
	if err.Error() != expected {
		t.Errorf("got %q, expected %q", err.Error(), expected)
	}
}

func TestErrorImplementsErrorInterface(t *testing.T) {
	var err error = New(NotAFunction, "foo", 1)
	if err.Error() == "" {
		t.Error("expected a non-empty error message")
	}
}
