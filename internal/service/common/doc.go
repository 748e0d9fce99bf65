// Package common holds helpers shared by several services.
//
// It provides a gRPC client for the modules service with per-call timeouts.
// Divide-by-zero and other rejected requests come back as errors matching
// calculator.ErrInvalidArgument.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
