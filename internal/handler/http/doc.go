// Package http implements the HTTP transport of the reference sync server.
//
// It exposes the two WiscO endpoints, /v1/getZipFileName and /v1/dlZip,
// behind sync-key authorization, request tracing and access logging.
package http
