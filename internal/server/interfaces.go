package server

import "context"

// Server defines the common lifecycle contract for the servers managed by
// this package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

// HealthChecker reports whether the server's dependencies are usable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
