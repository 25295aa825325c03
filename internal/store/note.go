package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/abhisek/notequiz/internal/quiz"
)

// noteRepo implements NoteRepo on top of ent's SQL builder.
type noteRepo struct {
	drv *entsql.Driver
}

func (r *noteRepo) Create(ctx context.Context, n NewNote) (*Note, error) {
	now := time.Now().UTC()
	q, args := entsql.Dialect(dialect.SQLite).
		Insert(notesTable).
		Columns("user_id", "title", "content", "created_at").
		Values(n.UserID, n.Title, n.Content, toMillis(now)).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, q, args, &res); err != nil {
		return nil, fmt.Errorf("save note: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("note id: %w", err)
	}

	return &Note{
		ID:        id,
		UserID:    n.UserID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: fromMillis(toMillis(now)),
	}, nil
}

func (r *noteRepo) AddQuizzes(ctx context.Context, noteID int64, items []quiz.Item) ([]Quiz, error) {
	if len(items) == 0 {
		return []Quiz{}, nil
	}

	tx, err := r.drv.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	now := fromMillis(toMillis(time.Now()))
	out := make([]Quiz, 0, len(items))
	for i, it := range items {
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		choices, err := json.Marshal(it.Choices)
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("marshal choices: %w", err)
		}

		q, args := entsql.Dialect(dialect.SQLite).
			Insert(quizzesTable).
			Columns("id", "note_id", "position", "question", "choices", "answer", "explanation", "created_at").
			Values(it.ID, noteID, i, it.Question, string(choices), it.Answer, it.Explanation, toMillis(now)).
			Query()
		if err := tx.Exec(ctx, q, args, nil); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("save quiz %d: %w", i, err)
		}
		out = append(out, Quiz{Item: it, NoteID: noteID, CreatedAt: now})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit quizzes: %w", err)
	}
	return out, nil
}

func (r *noteRepo) Get(ctx context.Context, id int64) (*Note, error) {
	q, args := entsql.Dialect(dialect.SQLite).
		Select("id", "user_id", "title", "content", "created_at").
		From(entsql.Table(notesTable)).
		Where(entsql.EQ("id", id)).
		Query()

	notes, err := r.scanNotes(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("query note: %w", err)
	}
	if len(notes) == 0 {
		return nil, nil
	}
	n := notes[0]

	quizzes, err := r.quizzesFor(ctx, id)
	if err != nil {
		return nil, err
	}
	n.Quizzes = quizzes
	n.QuizCount = len(quizzes)
	return &n, nil
}

func (r *noteRepo) List(ctx context.Context, opts QueryOpts) ([]Note, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select("id", "user_id", "title", "content", "created_at").
		From(entsql.Table(notesTable))
	q, args := applyQueryOpts(sel, "created_at", opts).Query()

	notes, err := r.scanNotes(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	if len(notes) == 0 {
		return notes, nil
	}

	ids := make([]any, len(notes))
	for i, n := range notes {
		ids[i] = n.ID
	}
	q, args = entsql.Dialect(dialect.SQLite).
		Select("note_id", entsql.Count("*")).
		From(entsql.Table(quizzesTable)).
		Where(entsql.In("note_id", ids...)).
		GroupBy("note_id").
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("count quizzes: %w", err)
	}
	defer rows.Close()

	counts := make(map[int64]int, len(notes))
	for rows.Next() {
		var (
			id int64
			n  int
		)
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("scan quiz count: %w", err)
		}
		counts[id] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count quizzes: %w", err)
	}
	for i := range notes {
		notes[i].QuizCount = counts[notes[i].ID]
	}
	return notes, nil
}

func (r *noteRepo) scanNotes(ctx context.Context, q string, args []any) ([]Note, error) {
	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []Note{}
	for rows.Next() {
		var (
			n       Note
			created int64
		)
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &created); err != nil {
			return nil, err
		}
		n.CreatedAt = fromMillis(created)
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *noteRepo) quizzesFor(ctx context.Context, noteID int64) ([]Quiz, error) {
	q, args := entsql.Dialect(dialect.SQLite).
		Select("id", "question", "choices", "answer", "explanation", "created_at").
		From(entsql.Table(quizzesTable)).
		Where(entsql.EQ("note_id", noteID)).
		OrderBy("position").
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("query quizzes: %w", err)
	}
	defer rows.Close()

	quizzes := []Quiz{}
	for rows.Next() {
		var (
			qz      Quiz
			choices string
			created int64
		)
		if err := rows.Scan(&qz.ID, &qz.Question, &choices, &qz.Answer, &qz.Explanation, &created); err != nil {
			return nil, fmt.Errorf("scan quiz: %w", err)
		}
		if err := json.Unmarshal([]byte(choices), &qz.Choices); err != nil {
			return nil, fmt.Errorf("unmarshal choices for quiz %s: %w", qz.ID, err)
		}
		qz.NoteID = noteID
		qz.CreatedAt = fromMillis(created)
		quizzes = append(quizzes, qz)
	}
	return quizzes, rows.Err()
}
