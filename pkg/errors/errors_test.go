package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidProfile, "unknown profile: %s", "retro")

	if err.Code != ErrCodeInvalidProfile {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidProfile)
	}

	if err.Message != "unknown profile: retro" {
		t.Errorf("Message = %v, want %v", err.Message, "unknown profile: retro")
	}

	expected := "INVALID_PROFILE: unknown profile: retro"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("decoder exploded")
	err := Wrap(ErrCodeEncodeFailed, cause, "encode webp")

	if err.Code != ErrCodeEncodeFailed {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeEncodeFailed)
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
			err:      New(ErrCodeRenderFailed, "test"),
			code:     ErrCodeRenderFailed,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeRenderFailed, "test"),
			code:     ErrCodeEncodeFailed,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeEncodeFailed, New(ErrCodeUnsupported, "inner"), "outer"),
			code:     ErrCodeEncodeFailed,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInternal,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInternal,
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
			err:      New(ErrCodeAssemblyFailed, "test"),
			expected: ErrCodeAssemblyFailed,
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
			err:      New(ErrCodeRenderFailed, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "Error with cause",
			err:      Wrap(ErrCodeEncodeFailed, errors.New("boom"), "encode png"),
			expected: "encode png: boom",
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

func TestRecovered(t *testing.T) {
	t.Run("nil value", func(t *testing.T) {
		if err := Recovered(nil); err != nil {
			t.Errorf("Recovered(nil) = %v, want nil", err)
		}
	})

	t.Run("string value", func(t *testing.T) {
		err := Recovered("theme exploded")
		if !Is(err, ErrCodeInternal) {
			t.Errorf("Recovered() code = %v, want %v", GetCode(err), ErrCodeInternal)
		}
		if got := UserMessage(err); got != "unexpected failure: theme exploded" {
			t.Errorf("UserMessage() = %q", got)
		}
	})

	t.Run("error value", func(t *testing.T) {
		cause := errors.New("index out of range")
		err := Recovered(cause)
		var pe *PanicError
		if !errors.As(err, &pe) {
			t.Fatal("Recovered() should wrap a *PanicError")
		}
		if pe.Error() != cause.Error() {
			t.Errorf("PanicError.Error() = %q, want %q", pe.Error(), cause.Error())
		}
		if pe.Code() != ErrCodeInternal {
			t.Errorf("Code() = %v, want %v", pe.Code(), ErrCodeInternal)
		}
	})
}
