// Package apperrors provides tests for application error types.
package apperrors

import (
	"context"
	"errors"
	"strconv"
	"testing"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	err := NewConfigError("invalid value %q for flag %s", "xyz", "--jobs")
	if want := `invalid value "xyz" for flag --jobs`; err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}

	var configErr ConfigError
	if !errors.As(err, &configErr) {
		t.Error("expected error to be ConfigError type")
	}
	if configErr.Message != err.Error() {
		t.Errorf("Message = %q", configErr.Message)
	}
}

func TestInputError(t *testing.T) {
	t.Parallel()
	_, cause := strconv.ParseInt("12x34", 10, 64)
	if cause == nil {
		t.Fatal("strconv accepted garbage")
	}
	err := InputError{Token: "12x34", Cause: cause}

	if got := err.Error(); got != `cannot parse "12x34" as an integer: `+cause.Error() {
		t.Errorf("Error() = %q", got)
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the original cause")
	}
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Error("errors.Is should find strconv.ErrSyntax in the chain")
	}

	var inputErr InputError
	wrapped := WrapError(err, "line 3")
	if !errors.As(wrapped, &inputErr) {
		t.Error("errors.As should find InputError through WrapError")
	}
	if inputErr.Token != "12x34" {
		t.Errorf("Token = %q", inputErr.Token)
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      ValidationError
		expected string
	}{
		{
			name:     "jobs field",
			err:      ValidationError{Field: "jobs", Message: "must be at least 1"},
			expected: `validation error for "jobs": must be at least 1`,
		},
		{
			name:     "sample field",
			err:      ValidationError{Field: "sample", Message: "must fit in uint64"},
			expected: `validation error for "sample": must fit in uint64`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var err error = tt.err
			if err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, err.Error())
			}
			var validationErr ValidationError
			if !errors.As(err, &validationErr) {
				t.Error("expected error to be ValidationError type")
			}
			if validationErr.Field != tt.err.Field || validationErr.Message != tt.err.Message {
				t.Errorf("round trip lost fields: %+v", validationErr)
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		original    error
		format      string
		args        []any
		expectedMsg string
		expectNil   bool
		checkIs     error
	}{
		{
			name:        "wraps error with context",
			original:    errors.New("file not found"),
			format:      "failed to load config",
			expectedMsg: "failed to load config: file not found",
		},
		{
			name:        "preserves error chain",
			original:    context.DeadlineExceeded,
			format:      "stream aborted",
			expectedMsg: "stream aborted: context deadline exceeded",
			checkIs:     context.DeadlineExceeded,
		},
		{
			name:      "returns nil for nil error",
			original:  nil,
			format:    "some context",
			expectNil: true,
		},
		{
			name:        "supports format arguments",
			original:    errors.New("bad digit"),
			format:      "line %d of %s",
			args:        []any{7, "stdin"},
			expectedMsg: "line 7 of stdin: bad digit",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wrapped := WrapError(tt.original, tt.format, tt.args...)

			if tt.expectNil {
				if wrapped != nil {
					t.Error("WrapError(nil, ...) should return nil")
				}
				return
			}
			if wrapped == nil {
				t.Fatal("wrapped error should not be nil")
			}
			if wrapped.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, wrapped.Error())
			}
			if tt.checkIs != nil && !errors.Is(wrapped, tt.checkIs) {
				t.Errorf("wrapped error should preserve %v in the chain", tt.checkIs)
			}
		})
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"context.Canceled", context.Canceled, true},
		{"context.DeadlineExceeded", context.DeadlineExceeded, true},
		{"wrapped context.Canceled", WrapError(context.Canceled, "stream canceled"), true},
		{"regular error", errors.New("some error"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.expected {
				t.Errorf("IsContextError(%v) = %v, expected %v", tt.err, got, tt.expected)
			}
		})
	}
}

func TestExitCodes(t *testing.T) {
	t.Parallel()
	codes := map[string]int{
		"ExitSuccess":       ExitSuccess,
		"ExitErrorGeneric":  ExitErrorGeneric,
		"ExitErrorInput":    ExitErrorInput,
		"ExitErrorLocale":   ExitErrorLocale,
		"ExitErrorConfig":   ExitErrorConfig,
		"ExitErrorCanceled": ExitErrorCanceled,
	}

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess should be 0, got %d", ExitSuccess)
	}
	if ExitErrorCanceled != 130 {
		t.Errorf("ExitErrorCanceled should be 130 (SIGINT convention), got %d", ExitErrorCanceled)
	}

	seen := make(map[int]string)
	for name, code := range codes {
		if existing, ok := seen[code]; ok {
			t.Errorf("duplicate exit code %d: %s and %s", code, existing, name)
		}
		seen[code] = name
	}
}
