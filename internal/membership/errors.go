package membership

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is matched by every input validation failure.
var ErrInvalidInput = errors.New("invalid input")

// InputError describes a rejected crisp input.
type InputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input %s=%v: %s", e.Field, e.Value, e.Reason)
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// CheckFinite rejects NaN and infinite values.
func CheckFinite(field string, x float64) error {
	if math.IsNaN(x) {
		return &InputError{Field: field, Value: x, Reason: "not a number"}
	}
	if math.IsInf(x, 0) {
		return &InputError{Field: field, Value: x, Reason: "not finite"}
	}
	return nil
}
