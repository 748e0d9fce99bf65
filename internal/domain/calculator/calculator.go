package calculator

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument signals a violated precondition, e.g. a zero divisor.
var ErrInvalidArgument = errors.New("invalid argument")

// errDivisionByZero is returned by Divide when the divisor is zero.
var errDivisionByZero = fmt.Errorf("division by zero: %w", ErrInvalidArgument)

// Evaluator performs binary arithmetic over signed integers.
type Evaluator interface {
	Add(lhs, rhs int) int
	Subtract(lhs, rhs int) int
	Multiply(lhs, rhs int) int
	Divide(lhs, rhs int) (int, error)
}

// Calculator is the default Evaluator. It holds no state,
// so copies are interchangeable and concurrent use is safe.
type Calculator struct{}

// compile-time check.
var _ Evaluator = Calculator{}

// Add returns lhs + rhs. Overflow wraps around.
func (Calculator) Add(lhs, rhs int) int {
	return lhs + rhs
}

// Subtract returns lhs - rhs. Overflow wraps around.
func (Calculator) Subtract(lhs, rhs int) int {
	return lhs - rhs
}

// Multiply returns lhs * rhs. Overflow wraps around.
func (Calculator) Multiply(lhs, rhs int) int {
	return lhs * rhs
}

// Divide returns lhs / rhs truncated toward zero.
// A zero divisor yields an error matching ErrInvalidArgument.
func (Calculator) Divide(lhs, rhs int) (int, error) {
	if rhs == 0 {
		return 0, errDivisionByZero
	}

	return lhs / rhs, nil
}
