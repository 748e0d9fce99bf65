// Package logger wraps zap for the ab-modules binaries.
//
// A global sugared logger with a console encoder is created at init time.
// Services carry a named logger in their context (ToContext, WithName, WithKV)
// and log through the level helpers (Infof, DebugKV, ErrorKV, ...).
package logger
