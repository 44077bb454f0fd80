package state

import (
	"errors"
	"fmt"
	"testing"
)

func TestChooseError(t *testing.T) {
	validation := &ValueError{Msg: "value may not be negative"}
	validation2 := &ValueError{Msg: "task label may not be empty"}
	unexpected := errors.New("disk on fire")

	cases := []struct {
		name    string
		current error
		next    error
		want    error
	}{
		{"empty slot adopts next", nil, validation, validation},
		{"empty slot stays empty", nil, nil, nil},
		{"empty slot adopts unexpected", nil, unexpected, unexpected},
		{"unexpected error sticks over validation", unexpected, validation, unexpected},
		{"unexpected error sticks over nil", unexpected, nil, unexpected},
		{"validation replaced by validation", validation, validation2, validation2},
		{"validation cleared by passing result", validation, nil, nil},
		{"validation replaced by unexpected", validation, unexpected, unexpected},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ChooseError(tc.current, tc.next); got != tc.want {
				t.Fatalf("ChooseError(%v, %v) = %v, want %v", tc.current, tc.next, got, tc.want)
			}
		})
	}
}

func TestChooseErrorTreatsWrappedValidationAsValidation(t *testing.T) {
	wrapped := fmt.Errorf("add task: %w", &ValueError{Msg: "task label may not be empty"})
	if got := ChooseError(wrapped, nil); got != nil {
		t.Fatalf("wrapped validation error was not cleared: %v", got)
	}
}

func TestIsValueError(t *testing.T) {
	if !IsValueError(&ValueError{Msg: "bad"}) {
		t.Fatalf("direct ValueError not recognized")
	}
	if !IsValueError(fmt.Errorf("ctx: %w", &ValueError{Msg: "bad"})) {
		t.Fatalf("wrapped ValueError not recognized")
	}
	if IsValueError(errors.New("bad")) {
		t.Fatalf("plain error recognized as ValueError")
	}
	if IsValueError(nil) {
		t.Fatalf("nil recognized as ValueError")
	}
}

func TestValueErrorText(t *testing.T) {
	err := &ValueError{Msg: "value may not be negative"}
	if err.Error() != "value may not be negative" {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestValidationConstructors(t *testing.T) {
	if v := Valid(); !v.Valid || v.Err != nil {
		t.Fatalf("Valid() = %+v", v)
	}
	cause := &ValueError{Msg: "bad"}
	if v := Invalid(cause); v.Valid || v.Err != cause {
		t.Fatalf("Invalid() = %+v", v)
	}
}
