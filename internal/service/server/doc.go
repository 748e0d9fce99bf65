// Package server runs the ab-modules gRPC server.
//
// It loads settings, creates one shared session whose alarm uses the
// configured threshold, and serves the modules service until the context is
// canceled.
package server
