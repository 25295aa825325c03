package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/notequiz/internal/app"
	"github.com/abhisek/notequiz/internal/notesapi"
)

// DefaultServerURL is used when neither --server nor NOTEQUIZ_SERVER_URL is set.
const DefaultServerURL = "http://localhost:8000"

func resolveServerURL(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("server"); u != "" {
		return u
	}
	if u := os.Getenv("NOTEQUIZ_SERVER_URL"); u != "" {
		return u
	}
	return DefaultServerURL
}

// runClient starts the terminal client against the generation server. The
// client draws on the terminal, so it only logs to a file.
func runClient(cmd *cobra.Command) error {
	log, err := newLogger(cmd, false)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	serverURL := resolveServerURL(cmd)
	skip, _ := cmd.Flags().GetBool("no-splash")
	log.Info("client starting", "server", serverURL, "version", version)

	return app.Run(app.Options{
		Generator:  notesapi.New(serverURL),
		Logger:     log,
		SkipSplash: skip,
	})
}
