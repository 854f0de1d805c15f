package server

// Server runs the sync API until the process is asked to stop.
type Server interface {
	// RunServer blocks until a termination signal arrives or the listener
	// fails. In-flight exchanges are drained before it returns.
	RunServer()

	// Shutdown stops accepting exchanges and waits for running ones.
	Shutdown()
}
