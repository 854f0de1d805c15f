// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-diffsync/models"
)

const (
	todosTable   = "todos"
	nodesTable   = "nodes"
	shadowsTable = "shadows"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildSelectTodosQuery() (string, []any, error) {
	return psql.
		Select("id", "description", "complete").
		From(todosTable).
		OrderBy("id").
		ToSql()
}

func buildSelectTodoQuery(id int64) (string, []any, error) {
	return psql.
		Select("id", "description", "complete").
		From(todosTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertTodoQuery(todo models.Todo) (string, []any, error) {
	return psql.
		Insert(todosTable).
		Columns("description", "complete").
		Values(todo.Description, todo.Complete).
		Suffix("RETURNING id").
		ToSql()
}

func buildUpdateTodoQuery(todo models.Todo) (string, []any, error) {
	return psql.
		Update(todosTable).
		Set("description", todo.Description).
		Set("complete", todo.Complete).
		Where(sq.Eq{"id": todo.ID}).
		ToSql()
}

func buildDeleteTodosQuery(ids []int64) (string, []any, error) {
	return psql.
		Delete(todosTable).
		Where(sq.Eq{"id": ids}).
		ToSql()
}

func buildInsertNodeQuery(node models.Node) (string, []any, error) {
	return psql.
		Insert(nodesTable).
		Columns("node_id").
		Values(node.NodeID).
		Suffix("RETURNING registered_at").
		ToSql()
}

func buildSelectNodeQuery(nodeID string) (string, []any, error) {
	return psql.
		Select("node_id", "registered_at").
		From(nodesTable).
		Where(sq.Eq{"node_id": nodeID}).
		ToSql()
}

// Shadow queries run on both dialects, only the placeholder differs.

func buildSelectShadowQuery(ph sq.PlaceholderFormat, key string) (string, []any, error) {
	return sq.StatementBuilder.PlaceholderFormat(ph).
		Select("resource", "server_version", "client_version").
		From(shadowsTable).
		Where(sq.Eq{"shadow_key": key}).
		ToSql()
}

func buildUpsertShadowQuery(ph sq.PlaceholderFormat, key string, shadow models.StoredShadow) (string, []any, error) {
	return sq.StatementBuilder.PlaceholderFormat(ph).
		Insert(shadowsTable).
		Columns("shadow_key", "resource", "server_version", "client_version", "updated_at").
		Values(key, string(shadow.Resource), shadow.ServerVersion, shadow.ClientVersion, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix(`ON CONFLICT (shadow_key) DO UPDATE SET
			resource = excluded.resource,
			server_version = excluded.server_version,
			client_version = excluded.client_version,
			updated_at = excluded.updated_at`).
		ToSql()
}
