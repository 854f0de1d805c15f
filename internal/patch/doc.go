// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package patch implements a JSON-Patch-like operation model over Go values.
//
// A [Patch] is an ordered list of [Operation] values: [Test], [Add],
// [Remove], [Replace], [Move] and [Copy]. Paths are slash-delimited
// segments naming struct fields (by json tag, falling back to the Go field
// name) or list indices, rooted at "". The segment "~" addresses the
// position after the last element of a list.
//
// Operations are resolved through reflection. [ApplyTo] runs a patch against
// a deep copy of its input, so a failed patch never leaves a value half
// modified.
//
//	p := patch.Patch{
//		patch.Test{Path: "/0/complete", Value: false},
//		patch.Replace{Path: "/0/complete", Value: true},
//		patch.Add{Path: "/~", Value: models.Todo{Description: "new"}},
//	}
//	todos, err = patch.ApplyTo(p, todos)
package patch
