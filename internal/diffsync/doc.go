// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package diffsync implements the shadow side of Differential
// Synchronization.
//
// A [Sync] keeps a shadow of the remote node's last known state together
// with two counters: ServerVersion counts the diffs this node produced and
// ClientVersion counts the patches it accepted. Incoming versioned patches
// are checked against the shadow so that duplicates are skipped and a lost
// response is recovered from the backup shadow. Outgoing diffs are stamped
// with the version pair they were computed under.
//
//	s := diffsync.New[[]models.Todo](diffsync.ForNode(store, nodeID))
//	todos, err = s.Apply(ctx, todos, incoming...)
//	out, err := s.Diff(ctx, todos)
//
// Calls for the same key must be serialized by the caller.
package diffsync
