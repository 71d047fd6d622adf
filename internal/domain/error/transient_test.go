package error

import (
	"errors"
	"testing"
)

func TestTransientError(t *testing.T) {
	cause := errors.New("serialization conflict")
	err := NewTransientError(cause)

	if !IsTransient(err) {
		t.Error("expected IsTransient to hold")
	}
	if !errors.Is(err, ErrTransientStore) {
		t.Error("expected errors.Is(err, ErrTransientStore) to hold")
	}
	if !errors.Is(err, cause) {
		t.Error("expected the underlying cause to stay reachable through errors.Is")
	}
}

func TestIsTransientRejectsPlainErrors(t *testing.T) {
	if IsTransient(errors.New("record not found")) {
		t.Error("expected a plain error not to be transient")
	}
	if IsTransient(nil) {
		t.Error("expected nil not to be transient")
	}
}
