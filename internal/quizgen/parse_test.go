package quizgen

import (
	"errors"
	"strings"
	"testing"
)

func TestParseCandidates(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{name: "wrapped", raw: `{"quizzes":[{"question":"q"}]}`, want: 1},
		{name: "prose around object", raw: "Sure! Here you go:\n{\"quizzes\":[{\"question\":\"q\"},{\"question\":\"r\"}]}\nGood luck.", want: 2},
		{name: "bare array", raw: `[{"question":"q"},{"question":"r"},{"question":"s"}]`, want: 3},
		{name: "json string payload", raw: `"{\"quizzes\":[{\"question\":\"q\"}]}"`, want: 1},
		{name: "empty list", raw: `{"quizzes":[]}`, want: 0},
		{name: "missing quizzes key", raw: `{"items":[]}`, wantErr: true},
		{name: "quizzes not a list", raw: `{"quizzes":"nope"}`, wantErr: true},
		{name: "no json", raw: "I cannot help with that.", wantErr: true},
		{name: "broken json", raw: `{"quizzes":[{"question":}]}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCandidates([]byte(tt.raw))
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedOutput) {
					t.Fatalf("expected ErrMalformedOutput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("got %d candidates, want %d", len(got), tt.want)
			}
		})
	}
}

func TestBuildUserMessage(t *testing.T) {
	msg := buildUserMessage("ACID means atomicity, consistency, isolation, durability.", DefaultConfig())

	for _, want := range []string{
		"write 3 multiple-choice quizzes",
		"choices always has 4 entries",
		noteStartMarker + "\nACID means",
		"durability.\n" + noteEndMarker,
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q", want)
		}
	}
}

func TestBuildUserMessage_Truncates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxNoteChars = 5
	msg := buildUserMessage("abcdéfgh", cfg)
	if !strings.Contains(msg, noteStartMarker+"\nabcd\n"+noteEndMarker) {
		t.Errorf("expected truncation at rune boundary, got:\n%s", msg)
	}
}
