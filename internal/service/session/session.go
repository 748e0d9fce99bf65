package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/oshokin/ab-modules/internal/domain/alarm"
	"github.com/oshokin/ab-modules/internal/domain/calculator"
	"github.com/oshokin/ab-modules/internal/domain/recorder"
	"github.com/oshokin/ab-modules/internal/logger"
)

// Result is the outcome of one evaluated step.
type Result struct {
	// Operation is the evaluated operation.
	Operation calculator.Operation
	// LHS and RHS are the operands.
	LHS, RHS int
	// Value is the computed result.
	Value int
	// Triggered is the alarm state after the result was checked.
	Triggered bool
}

// String renders the result as an audit line, e.g. "Addition: 15 + 8 = 23".
func (r Result) String() string {
	return fmt.Sprintf("%s: %d %s %d = %d", r.Operation.Verb(), r.LHS, r.Operation.Symbol(), r.RHS, r.Value)
}

// AlarmStatus is a snapshot of the alarm.
type AlarmStatus struct {
	// Threshold is the configured threshold.
	Threshold int
	// State is the latch position.
	State alarm.State
}

// Triggered reports whether the snapshot is in the triggered state.
func (s AlarmStatus) Triggered() bool {
	return s.State == alarm.StateTriggered
}

// Session owns one evaluator, one recorder and one alarm.
type Session struct {
	// evaluator is stateless and used without locking.
	evaluator calculator.Evaluator
	// recorder keeps the audit lines.
	recorder *recorder.Recorder
	// alarm latches on large results.
	alarm *alarm.Alarm
	// mu guards recorder and alarm.
	mu sync.RWMutex
}

// Option configures a Session.
type Option func(*Session)

// WithEvaluator replaces the default calculator.
func WithEvaluator(e calculator.Evaluator) Option {
	return func(s *Session) {
		if e != nil {
			s.evaluator = e
		}
	}
}

// New creates a session whose alarm uses threshold.
func New(threshold int, opts ...Option) *Session {
	s := &Session{
		evaluator: calculator.Calculator{},
		recorder:  recorder.New(),
		alarm:     alarm.New(threshold),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Evaluator returns the evaluator used by the session.
//
//nolint:ireturn // Callers need the interface, not the concrete type.
func (s *Session) Evaluator() calculator.Evaluator {
	return s.evaluator
}

// Record appends a free-form line to the history.
func (s *Session) Record(ctx context.Context, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recorder.Record(message)

	logger.DebugKV(ctx, "Message recorded", "entry", message, "entries", s.recorder.Len())
}

// Check feeds value to the alarm and reports whether it is triggered afterwards.
func (s *Session) Check(ctx context.Context, value int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.checkLocked(ctx, value)
}

// Evaluate runs op, records the audit line and checks the result against the alarm.
// Failed evaluations are not recorded and leave the alarm untouched.
func (s *Session) Evaluate(ctx context.Context, op calculator.Operation, lhs, rhs int) (Result, error) {
	value, err := calculator.Apply(s.evaluator, op, lhs, rhs)
	if err != nil {
		logger.DebugKV(ctx, "Evaluation failed", "operation", op.String(), "lhs", lhs, "rhs", rhs, "error", err)

		return Result{}, fmt.Errorf("%s: %w", op, err)
	}

	result := Result{
		Operation: op,
		LHS:       lhs,
		RHS:       rhs,
		Value:     value,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.recorder.Record(result.String())
	result.Triggered = s.checkLocked(ctx, value)

	logger.DebugKV(ctx, "Evaluation recorded", "entry", result.String(), "triggered", result.Triggered)

	return result, nil
}

// History returns a copy of all recorded lines.
func (s *Session) History() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.recorder.History()
}

// Alarm returns a snapshot of the alarm.
func (s *Session) Alarm() AlarmStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return AlarmStatus{
		Threshold: s.alarm.Threshold(),
		State:     s.alarm.State(),
	}
}

// checkLocked must be called with mu held.
func (s *Session) checkLocked(ctx context.Context, value int) bool {
	wasTriggered := s.alarm.IsTriggered()

	s.alarm.Check(value)

	triggered := s.alarm.IsTriggered()
	if triggered && !wasTriggered {
		logger.InfoKV(ctx, "Alarm triggered", "value", value, "threshold", s.alarm.Threshold())
	}

	return triggered
}
