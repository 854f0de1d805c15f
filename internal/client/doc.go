// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It registers the node with the server, runs the background sync job and
// hands control to the terminal UI for the lifetime of the process.
package client
