package server

import "context"

// Server is the lifecycle of the blob server process.
type Server interface {
	// RunServer serves until ctx is cancelled or the listener fails. A
	// cancelled ctx triggers a graceful shutdown and a nil error.
	RunServer(ctx context.Context) error

	// Shutdown drains in-flight requests, giving up when ctx expires.
	Shutdown(ctx context.Context) error
}
