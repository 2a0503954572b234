// Package server wires and runs the sync server's listeners.
//
// It provides orchestration for the push, sync and query listeners and the
// metrics HTTP server, including startup, signal handling, and graceful
// shutdown of all enabled listeners and background workers.
package server
