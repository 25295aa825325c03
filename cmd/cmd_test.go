package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/notequiz/internal/quiz"
	"github.com/abhisek/notequiz/internal/quizgen"
	"github.com/abhisek/notequiz/internal/store"
)

func TestPrintNotesEmpty(t *testing.T) {
	var buf bytes.Buffer
	printNotes(&buf, nil)
	assert.Equal(t, "No notes found.\n", buf.String())
}

func TestPrintNotes(t *testing.T) {
	var buf bytes.Buffer
	printNotes(&buf, []store.Note{{
		ID:        7,
		Title:     "HTTP",
		Content:   "GET is safe.\nPUT is idempotent.",
		CreatedAt: time.Now(),
		QuizCount: 3,
	}})
	out := buf.String()
	assert.Contains(t, out, "HTTP")
	assert.Contains(t, out, "GET is safe. PUT is idempotent.")
}

func TestPrintNoteMarksAnswer(t *testing.T) {
	var buf bytes.Buffer
	printNote(&buf, &store.Note{
		ID:      1,
		Title:   "t",
		Content: "c",
		Quizzes: []store.Quiz{{Item: quiz.Item{
			Question:    "q?",
			Choices:     []string{"x", "y", "z", "w"},
			Answer:      "y",
			Explanation: "because",
		}}},
	})
	out := buf.String()
	assert.Contains(t, out, "* B) y")
	assert.Contains(t, out, "  A) x")
	assert.Contains(t, out, "because")
}

func TestAskItems(t *testing.T) {
	items := quizgen.SampleQuizzes()
	var answers []string
	for _, it := range items {
		answers = append(answers, strings.ToLower(quiz.Label(it.AnswerIndex())))
	}
	answers[len(answers)-1] = "Z"

	var out bytes.Buffer
	got := askItems(strings.NewReader(strings.Join(answers, "\n")+"\n"), &out, items)

	assert.Equal(t, len(items)-1, got)
	assert.Contains(t, out.String(), "✗ Wrong.")
}

func TestAskItemsInputClosed(t *testing.T) {
	var out bytes.Buffer
	got := askItems(strings.NewReader(""), &out, quizgen.SampleQuizzes())
	assert.Equal(t, 0, got)
	assert.Contains(t, out.String(), "(input closed)")
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "새 노", truncate("새 노트", 3))
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "$0.0012", formatCost(0.0012))
	assert.Equal(t, "$1.50", formatCost(1.5))
}

func TestResetRequiresConfirmation(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "notequiz.db")
	st, err := store.Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, st.Close())

	rootCmd.SetArgs([]string{"reset", "--db", dbPath})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	require.Error(t, rootCmd.Execute())
	_, err = os.Stat(dbPath)
	require.NoError(t, err, "database must survive without --yes")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"reset", "--db", dbPath, "--yes"})
	require.NoError(t, rootCmd.Execute())
	_, err = os.Stat(dbPath)
	assert.True(t, os.IsNotExist(err))
	assert.Contains(t, out.String(), "Deleted")
}

func TestResolveServerURL(t *testing.T) {
	t.Setenv("NOTEQUIZ_SERVER_URL", "")
	assert.Equal(t, DefaultServerURL, resolveServerURL(pingCmd))

	t.Setenv("NOTEQUIZ_SERVER_URL", "http://example.test:9000")
	assert.Equal(t, "http://example.test:9000", resolveServerURL(pingCmd))
}

func TestFilterLLMEvents(t *testing.T) {
	ev := func(id int, purpose, req string) store.LLMEvent {
		e := store.LLMEvent{ID: id}
		e.Purpose = purpose
		e.RequestID = req
		return e
	}
	events := []store.LLMEvent{ev(3, quizgen.Purpose, "a"), ev(2, "other", "a"), ev(1, quizgen.Purpose, "b")}

	got := filterLLMEvents(append([]store.LLMEvent(nil), events...), quizgen.Purpose, "")
	require.Len(t, got, 2)

	got = filterLLMEvents(append([]store.LLMEvent(nil), events...), quizgen.Purpose, "a")
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].ID)

	assert.Len(t, filterLLMEvents(events, "", ""), 3)
}

func TestPrintLLMEventShowsRequestID(t *testing.T) {
	e := &store.LLMEvent{ID: 7, Timestamp: time.Now()}
	e.Provider, e.Model, e.Purpose, e.RequestID = "mock", "mock", quizgen.Purpose, "trace-1"

	var buf bytes.Buffer
	printLLMEvent(&buf, e)
	assert.Contains(t, buf.String(), "Request:   trace-1")
}
