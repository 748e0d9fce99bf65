// Package client implements the calc, history and alarm commands.
//
// Calculations run either on the local evaluator or on a remote modules
// server; history and alarm always query a running server.
package client
