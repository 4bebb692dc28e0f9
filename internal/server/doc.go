// Package server runs the address book HTTP server.
//
// It owns the server lifecycle: startup, stop-signal handling and graceful
// shutdown that lets in-flight requests finish.
package server
