package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/notequiz/internal/quiz"
	"github.com/abhisek/notequiz/internal/store"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Inspect stored notes and their quizzes",
}

var notesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		notes, err := s.NoteRepo().List(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("list notes: %w", err)
		}
		printNotes(cmd.OutOrStdout(), notes)
		return nil
	},
}

var notesViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show a note with its quizzes and answers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		n, err := s.NoteRepo().Get(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get note: %w", err)
		}
		if n == nil {
			return fmt.Errorf("note %d not found", id)
		}
		printNote(cmd.OutOrStdout(), n)
		return nil
	},
}

func printNotes(w io.Writer, notes []store.Note) {
	if len(notes) == 0 {
		fmt.Fprintln(w, "No notes found.")
		return
	}
	fmt.Fprintf(w, "%-5s  %-19s  %-24s  %-7s  %s\n", "ID", "Created", "Title", "Quizzes", "Preview")
	fmt.Fprintln(w, strings.Repeat("─", 90))
	for _, n := range notes {
		fmt.Fprintf(w, "%-5d  %-19s  %-24s  %-7d  %s\n",
			n.ID,
			n.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			truncate(n.Title, 24),
			n.QuizCount,
			truncate(oneLine(n.Content), 30),
		)
	}
}

func printNote(w io.Writer, n *store.Note) {
	sep := strings.Repeat("─", 60)

	fmt.Fprintf(w, "ID:       %d\n", n.ID)
	fmt.Fprintf(w, "Title:    %s\n", n.Title)
	fmt.Fprintf(w, "User:     %d\n", n.UserID)
	fmt.Fprintf(w, "Created:  %s\n", n.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, n.Content)
	fmt.Fprintln(w, sep)

	if len(n.Quizzes) == 0 {
		fmt.Fprintln(w, "(no quizzes)")
		return
	}
	for i, q := range n.Quizzes {
		fmt.Fprintf(w, "\n%d. %s\n", i+1, q.Question)
		for j, c := range q.Choices {
			mark := " "
			if c == q.Answer {
				mark = "*"
			}
			fmt.Fprintf(w, "  %s %s) %s\n", mark, quiz.Label(j), c)
		}
		if q.HasExplanation() {
			fmt.Fprintf(w, "     %s\n", q.Explanation)
		}
	}
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func init() {
	notesListCmd.Flags().IntP("limit", "n", 20, "Number of notes to show")

	notesCmd.AddCommand(notesListCmd)
	notesCmd.AddCommand(notesViewCmd)
}
