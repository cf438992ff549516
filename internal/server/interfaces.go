package server

// Server is the lifecycle of the reference sync server.
type Server interface {
	// RunServer serves until a stop signal arrives, then shuts down.
	RunServer()

	// Shutdown stops the HTTP server, waiting for in-flight requests.
	Shutdown()
}
