package calculator

import (
	"fmt"
	"strings"
)

// Operation names one of the four evaluator operations.
type Operation int

// Supported operations. The zero value is OperationUnknown.
const (
	OperationUnknown Operation = iota
	OperationAdd
	OperationSubtract
	OperationMultiply
	OperationDivide
)

// String returns the lowercase operation name.
func (o Operation) String() string {
	switch o {
	case OperationAdd:
		return "add"
	case OperationSubtract:
		return "subtract"
	case OperationMultiply:
		return "multiply"
	case OperationDivide:
		return "divide"
	default:
		return "unknown"
	}
}

// Symbol returns the infix symbol, e.g. "+".
func (o Operation) Symbol() string {
	switch o {
	case OperationAdd:
		return "+"
	case OperationSubtract:
		return "-"
	case OperationMultiply:
		return "*"
	case OperationDivide:
		return "/"
	default:
		return "?"
	}
}

// Verb returns the noun used in audit messages, e.g. "Addition".
func (o Operation) Verb() string {
	switch o {
	case OperationAdd:
		return "Addition"
	case OperationSubtract:
		return "Subtraction"
	case OperationMultiply:
		return "Multiplication"
	case OperationDivide:
		return "Division"
	default:
		return "Unknown"
	}
}

// ParseOperation accepts an operation name or symbol, case-insensitive.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "+":
		return OperationAdd, nil
	case "subtract", "sub", "-":
		return OperationSubtract, nil
	case "multiply", "mul", "*", "x":
		return OperationMultiply, nil
	case "divide", "div", "/":
		return OperationDivide, nil
	default:
		return OperationUnknown, fmt.Errorf("unknown operation %q: %w", s, ErrInvalidArgument)
	}
}

// Apply dispatches op to the evaluator.
func Apply(e Evaluator, op Operation, lhs, rhs int) (int, error) {
	switch op {
	case OperationAdd:
		return e.Add(lhs, rhs), nil
	case OperationSubtract:
		return e.Subtract(lhs, rhs), nil
	case OperationMultiply:
		return e.Multiply(lhs, rhs), nil
	case OperationDivide:
		return e.Divide(lhs, rhs)
	default:
		return 0, fmt.Errorf("unsupported operation %d: %w", int(op), ErrInvalidArgument)
	}
}
