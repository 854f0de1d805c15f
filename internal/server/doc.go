// Package server runs the HTTP transport of the synchronization server,
// including signal handling and graceful shutdown.
package server
