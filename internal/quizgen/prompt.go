package quizgen

import (
	"fmt"
	"strings"
)

const (
	noteStartMarker = "--- NOTE START ---"
	noteEndMarker   = "--- NOTE END ---"
)

const systemPrompt = `You are a study assistant that writes multiple-choice quizzes from a learner's notes.

Rules:
- Each quiz checks understanding of one important concept from the note.
- Every quiz has exactly 4 choices and exactly one correct choice.
- The answer is the exact text of the correct choice.
- Distractors are plausible but clearly wrong to someone who understood the note.
- The explanation says briefly why the answer is correct.
- Write in the same language as the note.
- Return JSON only. Never add prose outside the JSON.`

// buildUserMessage embeds content between markers and states the output
// contract.
func buildUserMessage(content string, cfg Config) string {
	if cfg.MaxNoteChars > 0 && len(content) > cfg.MaxNoteChars {
		content = truncateRunes(content, cfg.MaxNoteChars)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Read the study note below and write %d multiple-choice quizzes.\n\n", cfg.Count)
	b.WriteString("Return a JSON object of this shape:\n")
	b.WriteString(`{"quizzes":[{"question":"...","choices":["...","...","...","..."],"answer":"one of the choices","explanation":"..."}]}`)
	b.WriteString("\n\nConstraints:\n")
	fmt.Fprintf(&b, "- exactly %d items in quizzes\n", cfg.Count)
	fmt.Fprintf(&b, "- choices always has %d entries\n", ChoiceCount)
	b.WriteString("- answer is always one of the choices\n")
	b.WriteString("- no natural-language text outside the JSON\n\n")

	b.WriteString(noteStartMarker)
	b.WriteString("\n")
	b.WriteString(content)
	b.WriteString("\n")
	b.WriteString(noteEndMarker)

	return b.String()
}

// truncateRunes cuts s to at most n bytes without splitting a rune.
func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !isRuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
