// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	selectLocalTodos = `
		SELECT
			id,
			description,
			complete
		FROM todos
		ORDER BY position;`

	deleteLocalTodos = `DELETE FROM todos;`

	insertLocalTodo = `
		INSERT INTO todos (
			position,
			id,
			description,
			complete
		) VALUES (?, ?, ?, ?);`

	upsertCredentials = `
		INSERT INTO credentials (slot, node_id, token, updated_at)
		VALUES (1, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (slot) DO UPDATE SET
			node_id = excluded.node_id,
			token = excluded.token,
			updated_at = excluded.updated_at;`

	selectCredentials = `
		SELECT
			node_id,
			token
		FROM credentials
		WHERE slot = 1;`

	upsertPendingPatch = `
		INSERT INTO pending_patches (resource, server_version, client_version, patch)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (resource, server_version) DO UPDATE SET
			client_version = excluded.client_version,
			patch = excluded.patch;`

	selectPendingPatches = `
		SELECT
			server_version,
			client_version,
			patch
		FROM pending_patches
		WHERE resource = ?
		ORDER BY server_version;`

	deletePendingPatchesBelow = `DELETE FROM pending_patches WHERE resource = ? AND server_version < ?;`

	deletePendingPatches = `DELETE FROM pending_patches WHERE resource = ?;`
)
