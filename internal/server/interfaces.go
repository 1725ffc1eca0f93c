package server

// Server defines the lifecycle contract of the application server.
//
// Implementations block in [RunServer] until a stop signal arrives or the
// listener fails, and release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// It returns nil after a signal-driven shutdown and the listener error
	// otherwise.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
