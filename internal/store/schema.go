package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const (
	notesTable     = "notes"
	quizzesTable   = "quizzes"
	llmEventsTable = "llm_request_events"
)

// migrate creates every table and index the repositories need. It is
// idempotent and runs on every Open.
func migrate(ctx context.Context, drv *entsql.Driver) error {
	b := entsql.Dialect(dialect.SQLite)

	stmts := []entsql.Querier{
		b.CreateTable(notesTable).IfNotExists().
			Columns(
				entsql.Column("id").Type("integer").Attr("PRIMARY KEY AUTOINCREMENT"),
				entsql.Column("user_id").Type("integer").Attr("NOT NULL DEFAULT 1"),
				entsql.Column("title").Type("text").Attr("NOT NULL"),
				entsql.Column("content").Type("text").Attr("NOT NULL"),
				entsql.Column("created_at").Type("integer").Attr("NOT NULL"),
			),
		b.CreateTable(quizzesTable).IfNotExists().
			Columns(
				entsql.Column("id").Type("text").Attr("PRIMARY KEY"),
				entsql.Column("note_id").Type("integer").Attr("NOT NULL"),
				entsql.Column("position").Type("integer").Attr("NOT NULL"),
				entsql.Column("question").Type("text").Attr("NOT NULL"),
				entsql.Column("choices").Type("text").Attr("NOT NULL"),
				entsql.Column("answer").Type("text").Attr("NOT NULL"),
				entsql.Column("explanation").Type("text").Attr("NOT NULL DEFAULT ''"),
				entsql.Column("created_at").Type("integer").Attr("NOT NULL"),
			).
			ForeignKeys(
				entsql.ForeignKey().Columns("note_id").
					Reference(entsql.Reference().Table(notesTable).Columns("id")).
					OnDelete("CASCADE"),
			),
		b.CreateTable(llmEventsTable).IfNotExists().
			Columns(
				entsql.Column("id").Type("integer").Attr("PRIMARY KEY AUTOINCREMENT"),
				entsql.Column("timestamp").Type("integer").Attr("NOT NULL"),
				entsql.Column("provider").Type("text").Attr("NOT NULL"),
				entsql.Column("model").Type("text").Attr("NOT NULL"),
				entsql.Column("purpose").Type("text").Attr("NOT NULL"),
				entsql.Column("input_tokens").Type("integer").Attr("NOT NULL DEFAULT 0"),
				entsql.Column("output_tokens").Type("integer").Attr("NOT NULL DEFAULT 0"),
				entsql.Column("latency_ms").Type("integer").Attr("NOT NULL DEFAULT 0"),
				entsql.Column("success").Type("boolean").Attr("NOT NULL"),
				entsql.Column("error_message").Type("text").Attr("NOT NULL DEFAULT ''"),
				entsql.Column("request_body").Type("text").Attr("NOT NULL DEFAULT ''"),
				entsql.Column("response_body").Type("text").Attr("NOT NULL DEFAULT ''"),
				entsql.Column("request_id").Type("text").Attr("NOT NULL DEFAULT ''"),
			),
	}

	for _, st := range stmts {
		q, args := st.Query()
		if err := drv.Exec(ctx, q, args, nil); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}

	// Databases created before request tracing lack the column.
	if err := addColumnIfMissing(ctx, drv, llmEventsTable, "request_id", "text NOT NULL DEFAULT ''"); err != nil {
		return err
	}

	// Indexes are plain DDL so reruns stay idempotent.
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS quizzes_note_id ON quizzes (note_id, position)",
		"CREATE INDEX IF NOT EXISTS llm_request_events_purpose ON llm_request_events (purpose)",
		"CREATE INDEX IF NOT EXISTS llm_request_events_timestamp ON llm_request_events (timestamp)",
		"CREATE INDEX IF NOT EXISTS llm_request_events_request_id ON llm_request_events (request_id)",
	}
	for _, ix := range indexes {
		if err := drv.Exec(ctx, ix, []any{}, nil); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}

func addColumnIfMissing(ctx context.Context, drv *entsql.Driver, table, column, def string) error {
	var rows entsql.Rows
	if err := drv.Query(ctx, "SELECT name FROM pragma_table_info(?)", []any{table}, &rows); err != nil {
		return fmt.Errorf("inspect %s: %w", table, err)
	}
	found := false
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return fmt.Errorf("inspect %s: %w", table, err)
		}
		if name == column {
			found = true
		}
	}
	err := rows.Err()
	rows.Close()
	if err != nil {
		return fmt.Errorf("inspect %s: %w", table, err)
	}
	if found {
		return nil
	}
	q := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, def)
	if err := drv.Exec(ctx, q, []any{}, nil); err != nil {
		return fmt.Errorf("add column %s.%s: %w", table, column, err)
	}
	return nil
}
