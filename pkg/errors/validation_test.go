package errors

import (
	"math"
	"testing"
)

func TestValidateEdge(t *testing.T) {
	tests := []struct {
		name    string
		edge    []int
		wantErr bool
	}{
		{"singleton", []int{0}, false},
		{"pair", []int{3, 1}, false},
		{"full range", []int{0, 1, 2, 3, 4}, false},

		{"empty", []int{}, true},
		{"nil", nil, true},
		{"negative index", []int{-1, 2}, true},
		{"index equal to count", []int{0, 5}, true},
		{"duplicate", []int{1, 2, 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEdge(0, tt.edge, 5)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEdge(%v) error = %v, wantErr %v", tt.edge, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidEdge) {
				t.Errorf("ValidateEdge(%v) returned wrong error code: %v", tt.edge, err)
			}
		})
	}
}

func TestValidateRadii(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		wantErr bool
	}{
		{"empty", nil, false},
		{"zeros allowed", []float64{0, 0}, false},
		{"positive", []float64{0.1, 2}, false},

		{"negative", []float64{0.1, -0.1}, true},
		{"nan", []float64{math.NaN()}, true},
		{"inf", []float64{math.Inf(1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRadii("vertex size", tt.values)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRadii(%v) error = %v, wantErr %v", tt.values, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidRadius) {
				t.Errorf("ValidateRadii(%v) returned wrong error code: %v", tt.values, err)
			}
		})
	}
}

func TestValidateIncrement(t *testing.T) {
	for _, v := range []float64{0, 0.3, 10} {
		if err := ValidateIncrement(v); err != nil {
			t.Errorf("ValidateIncrement(%v) = %v, want nil", v, err)
		}
	}
	for _, v := range []float64{-0.1, math.NaN(), math.Inf(1)} {
		if err := ValidateIncrement(v); !Is(err, ErrCodeInvalidRadius) {
			t.Errorf("ValidateIncrement(%v) = %v, want %s", v, err, ErrCodeInvalidRadius)
		}
	}
}

func TestValidateCoordinate(t *testing.T) {
	if err := ValidateCoordinate(0, 1, -2); err != nil {
		t.Errorf("ValidateCoordinate() = %v, want nil", err)
	}
	if err := ValidateCoordinate(3, math.NaN(), 0); !Is(err, ErrCodeInvalidPosition) {
		t.Errorf("ValidateCoordinate(NaN) = %v, want %s", err, ErrCodeInvalidPosition)
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "out/layout.json", false},
		{"valid absolute", "/tmp/layout.json", false},
		{"valid filename only", "graph.layout.json", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
		{"trailing space", "layout.json ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidatePath(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidEdge,
		ErrCodeInvalidRadius,
		ErrCodeInvalidPosition,
		ErrCodeInvalidFormat,
		ErrCodeInvalidPath,
		ErrCodeNumeric,
		ErrCodeFileNotFound,
		ErrCodeCache,
		ErrCodeTimeout,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
