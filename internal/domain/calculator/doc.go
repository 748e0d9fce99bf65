// Package calculator contains the stateless integer evaluator.
//
// It defines the Evaluator interface, the zero-size Calculator implementation
// and the Operation enum used by transports and the CLI to dispatch calls.
package calculator
