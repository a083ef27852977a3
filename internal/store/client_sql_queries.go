// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	answersTable = "answers"
	sessionTable = "session"

	// sessionRowID pins the session table to a single row.
	sessionRowID = 1
)

func upsertAnswersQuery(rows [][]any) sq.InsertBuilder {
	q := sq.Insert(answersTable).Columns("question_id", "value", "updated_at")
	for _, r := range rows {
		q = q.Values(r...)
	}
	return q.Suffix("ON CONFLICT(question_id) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at")
}

func selectAnswersQuery() sq.SelectBuilder {
	return sq.Select("question_id", "value").From(answersTable).OrderBy("question_id")
}

func deleteAnswersQuery() sq.DeleteBuilder {
	return sq.Delete(answersTable)
}

func upsertSessionQuery(userID string, updatedAt any) sq.InsertBuilder {
	return sq.Insert(sessionTable).
		Columns("id", "user_id", "updated_at").
		Values(sessionRowID, userID, updatedAt).
		Suffix("ON CONFLICT(id) DO UPDATE SET user_id = excluded.user_id, updated_at = excluded.updated_at")
}

func selectSessionQuery() sq.SelectBuilder {
	return sq.Select("user_id").From(sessionTable).Where(sq.Eq{"id": sessionRowID})
}

func deleteSessionQuery() sq.DeleteBuilder {
	return sq.Delete(sessionTable)
}
