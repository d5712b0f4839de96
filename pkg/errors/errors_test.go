package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeUnregisteredType, "no factory for %q", "card")

	if err.Code != ErrCodeUnregisteredType {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeUnregisteredType)
	}

	if err.Message != `no factory for "card"` {
		t.Errorf("Message = %v, want %v", err.Message, `no factory for "card"`)
	}

	expected := `UNREGISTERED_TYPE: no factory for "card"`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInvalidScenario, cause, "decode scenario")

	if err.Code != ErrCodeInvalidScenario {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidScenario)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidSize, "test"),
			code:     ErrCodeInvalidSize,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidSize, "test"),
			code:     ErrCodeInvalidConfig,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeInvalidConfig, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeInvalidConfig,
			expected: true,
		},
		{
			name:     "fmt wrapped",
			err:      fmt.Errorf("tile: %w", New(ErrCodeUnregisteredType, "inner")),
			code:     ErrCodeUnregisteredType,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeDelegateForbidden, "test"),
			expected: ErrCodeDelegateForbidden,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidInput, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsProgrammerError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"unregistered type", New(ErrCodeUnregisteredType, "x"), true},
		{"delegate forbidden", New(ErrCodeDelegateForbidden, "x"), true},
		{"invalid size", New(ErrCodeInvalidSize, "x"), false},
		{"plain", errors.New("x"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsProgrammerError(tt.err); got != tt.want {
				t.Errorf("IsProgrammerError() = %v, want %v", got, tt.want)
			}
		})
	}
}
