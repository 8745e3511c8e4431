package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	cause := errors.New("unexpected EOF")
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"plain", New(ErrCodeInvalidEdge, "edge %d is empty", 2), "INVALID_EDGE: edge 2 is empty"},
		{"wrapped", Wrap(ErrCodeInvalidFormat, cause, "decode %s", "g.yaml"), "INVALID_FORMAT: decode g.yaml: unexpected EOF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(ErrCodeCache, cause, "get layout")

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false")
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap() did not return the cause")
	}
}

func TestCodeLookup(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"direct", New(ErrCodeInvalidRadius, "negative"), ErrCodeInvalidRadius},
		{"fmt wrapped", fmt.Errorf("load: %w", New(ErrCodeFileNotFound, "g.json")), ErrCodeFileNotFound},
		{"outermost wins", Wrap(ErrCodeTimeout, New(ErrCodeCache, "slow"), "layout"), ErrCodeTimeout},
		{"plain", errors.New("plain"), ""},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %q, want %q", got, tt.want)
			}
			if tt.want != "" && !Is(tt.err, tt.want) {
				t.Errorf("Is(err, %q) = false", tt.want)
			}
			if Is(tt.err, ErrCodeUnsupported) {
				t.Error("Is() matched an unrelated code")
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	err := fmt.Errorf("compute layout: %w", Wrap(ErrCodeInvalidEdge, errors.New("x"), "edge 3: vertex 9 out of range"))
	if got := UserMessage(err); got != "edge 3: vertex 9 out of range" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}

func TestIsInvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"invalid edge", New(ErrCodeInvalidEdge, "edge 0 is empty"), true},
		{"invalid radius", New(ErrCodeInvalidRadius, "negative"), true},
		{"invalid path", New(ErrCodeInvalidPath, "traversal"), true},
		{"wrapped invalid", Wrap(ErrCodeInvalidFormat, errors.New("eof"), "decode"), true},
		{"numeric", New(ErrCodeNumeric, "degenerate"), false},
		{"file not found", New(ErrCodeFileNotFound, "g.json"), false},
		{"internal", New(ErrCodeInternal, "boom"), false},
		{"plain error", errors.New("plain"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInvalidInput(tt.err); got != tt.expected {
				t.Errorf("IsInvalidInput() = %v, want %v", got, tt.expected)
			}
		})
	}
}
