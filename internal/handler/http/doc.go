// Package http exposes the synchronization service over HTTP.
//
// Nodes register with POST /api/nodes and send their envelopes with PATCH
// to {base}/{resource} or {base}/{resource}/{id}. A GET on {base}/{resource}
// returns the whole collection and restarts the node's versions from 0/0.
// Authentication, tracing, access logging, compression and body signatures
// are handled by middleware before a request reaches the service layer.
package http
