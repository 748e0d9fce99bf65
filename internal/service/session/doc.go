// Package session composes the evaluator, the recorder and the alarm.
//
// A Session is the caller that owns one instance of each component: it runs
// an operation, records a human-readable line for it and feeds the result to
// the alarm. It serializes access so that transports may share one Session.
package session
