package study

import (
	"time"

	sess "github.com/abhisek/notequiz/internal/study"
)

// generatedMsg carries a finished generation exchange back to Update.
type generatedMsg struct {
	Result sess.Result
}

// spinnerTickMsg animates the loading indicator.
type spinnerTickMsg time.Time
