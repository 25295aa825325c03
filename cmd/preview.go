package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/notequiz/internal/quiz"
)

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Generate quizzes for a note and answer them here (no server, no database)",
	Long: `Generate quizzes for a note read from a file, or from stdin when no file
is given, and answer them interactively.

This is a stateless developer tool for judging prompt and model quality.
Nothing is stored and no LLM events are recorded.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Bool("sample", false, "Use the built-in sample quizzes instead of calling an LLM")
	previewCmd.Flags().Bool("no-quiz", false, "Print quizzes with answers instead of asking")
}

func runPreview(cmd *cobra.Command, args []string) error {
	log, err := newLogger(cmd, false)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	note, err := readNote(cmd, args)
	if err != nil {
		return err
	}

	sample, _ := cmd.Flags().GetBool("sample")
	gen, err := newQuizGenerator(cmd.Context(), nil, sample, log)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Generating quizzes...")
	items, err := gen.Generate(cmd.Context(), note)
	if err != nil {
		return fmt.Errorf("generate quizzes: %w", err)
	}

	if noQuiz, _ := cmd.Flags().GetBool("no-quiz"); noQuiz || len(args) == 0 {
		// stdin already held the note, so there is nobody to ask.
		for i, it := range items {
			printItem(out, i, len(items), it)
			fmt.Fprintf(out, "Answer: %s\n", it.Answer)
			if it.HasExplanation() {
				fmt.Fprintf(out, "Explanation: %s\n", it.Explanation)
			}
			fmt.Fprintln(out)
		}
		return nil
	}

	correct := askItems(cmd.InOrStdin(), out, items)
	fmt.Fprintf(out, "── Summary: %d/%d correct ──\n", correct, len(items))
	return nil
}

func readNote(cmd *cobra.Command, args []string) (string, error) {
	var (
		b   []byte
		err error
	)
	if len(args) == 1 {
		b, err = os.ReadFile(args[0])
	} else {
		b, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return "", fmt.Errorf("read note: %w", err)
	}
	note := strings.TrimSpace(string(b))
	if note == "" {
		return "", fmt.Errorf("note is empty")
	}
	return note, nil
}

func printItem(w io.Writer, i, n int, it quiz.Item) {
	fmt.Fprintf(w, "── Quiz %d/%d ──\n", i+1, n)
	fmt.Fprintln(w, it.Question)
	for j, c := range it.Choices {
		fmt.Fprintf(w, "  %s) %s\n", quiz.Label(j), c)
	}
}

// askItems asks every item on w, reads letter answers from r and returns
// the number answered correctly.
func askItems(r io.Reader, w io.Writer, items []quiz.Item) int {
	scanner := bufio.NewScanner(r)
	correct := 0
	for i, it := range items {
		printItem(w, i, len(items), it)

		fmt.Fprint(w, "\nYour answer: ")
		if !scanner.Scan() {
			fmt.Fprintln(w, "\n(input closed)")
			break
		}
		answer := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		switch {
		case answer == "":
			fmt.Fprintln(w, "(skipped)")
		case answer == quiz.Label(it.AnswerIndex()):
			correct++
			fmt.Fprintln(w, "✓ Correct!")
		default:
			fmt.Fprintf(w, "✗ Wrong. Answer: %s\n", it.Answer)
		}
		if it.HasExplanation() {
			fmt.Fprintf(w, "Explanation: %s\n", it.Explanation)
		}
		fmt.Fprintln(w)
	}
	return correct
}
