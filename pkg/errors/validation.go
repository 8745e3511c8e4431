package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateEdge checks a single hyperedge against a vertex count.
//
// The validation rules are:
//   - The edge must contain at least one vertex
//   - Every index must lie in [0, vertexCount)
//   - No index may appear twice
//
// The edge index i is only used for error messages.
func ValidateEdge(i int, edge []int, vertexCount int) error {
	if len(edge) == 0 {
		return New(ErrCodeInvalidEdge, "edge %d is empty", i)
	}

	seen := make(map[int]struct{}, len(edge))
	for _, v := range edge {
		if v < 0 || v >= vertexCount {
			return New(ErrCodeInvalidEdge, "edge %d: vertex %d out of range [0, %d)", i, v, vertexCount)
		}
		if _, dup := seen[v]; dup {
			return New(ErrCodeInvalidEdge, "edge %d: duplicate vertex %d", i, v)
		}
		seen[v] = struct{}{}
	}
	return nil
}

// ValidateRadii checks that every radius is finite and non-negative.
// name identifies the slice in error messages (e.g. "vertex size").
func ValidateRadii(name string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return New(ErrCodeInvalidRadius, "%s %d is not finite", name, i)
		}
		if v < 0 {
			return New(ErrCodeInvalidRadius, "%s %d is negative: %v", name, i, v)
		}
	}
	return nil
}

// ValidateIncrement checks a radius increment factor.
func ValidateIncrement(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return New(ErrCodeInvalidRadius, "radius increment must be a finite non-negative number, got %v", v)
	}
	return nil
}

// ValidateCoordinate checks that a position component is finite.
func ValidateCoordinate(i int, x, y float64) error {
	for _, c := range []float64{x, y} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return New(ErrCodeInvalidPosition, "position %d is not finite: (%v, %v)", i, x, y)
		}
	}
	return nil
}

// ValidatePath validates an output file path supplied by a user.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.TrimSpace(path) != path {
		return New(ErrCodeInvalidPath, "path has leading or trailing whitespace")
	}

	return nil
}
