// Package utils holds small helpers shared across go-diffsync: typed context
// keys, node tokens, request body signatures, JSON responses and the HTTP
// client constructor.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so keys of other packages
// never collide with ours.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

var (
	// NodeIDCtxKey holds the id of the authenticated node.
	//
	//	ctx := context.WithValue(ctx, utils.NodeIDCtxKey, "0190c0de-...")
	NodeIDCtxKey = contextKey("nodeID")

	// TraceIDCtxKey holds the trace id of the current request.
	TraceIDCtxKey = contextKey("traceID")
)

// GetNodeIDFromContext returns the node id stored under [NodeIDCtxKey]. ok is
// false when it is missing, empty or not a string.
func GetNodeIDFromContext(ctx context.Context) (string, bool) {
	nodeID, ok := ctx.Value(NodeIDCtxKey).(string)
	return nodeID, ok && nodeID != ""
}

// GetTraceIDFromContext returns the trace id stored under [TraceIDCtxKey].
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}
