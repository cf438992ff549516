// Package server runs the reference sync server.
//
// It owns the HTTP server and the background workers, starts them together
// and shuts them down gracefully on SIGINT, SIGTERM or SIGQUIT.
package server
